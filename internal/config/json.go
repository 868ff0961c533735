package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Concurrency int      `json:"concurrency"`
		Delay       Duration `json:"delay"`
	} `json:"app,omitempty"`

	HIBP struct {
		BaseURL        string   `json:"base_url"`
		UserAgent      string   `json:"user_agent"`
		RequestTimeout Duration `json:"request_timeout"`
		AddPadding     bool     `json:"add_padding"`
		CachePrefixes  bool     `json:"cache_prefixes"`
	} `json:"hibp,omitempty"`

	Source struct {
		Binary     string `json:"op_binary"`
		Categories string `json:"op_categories"`
		Vault      string `json:"op_vault"`
	} `json:"source,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Concurrency: jsonCfg.App.Concurrency,
			Delay:       time.Duration(jsonCfg.App.Delay),
		},
		HIBP: HIBP{
			BaseURL:        jsonCfg.HIBP.BaseURL,
			UserAgent:      jsonCfg.HIBP.UserAgent,
			RequestTimeout: time.Duration(jsonCfg.HIBP.RequestTimeout),
			AddPadding:     jsonCfg.HIBP.AddPadding,
			CachePrefixes:  jsonCfg.HIBP.CachePrefixes,
		},
		Source: Source{
			Binary:     jsonCfg.Source.Binary,
			Categories: jsonCfg.Source.Categories,
			Vault:      jsonCfg.Source.Vault,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
