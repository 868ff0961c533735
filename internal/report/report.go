// Package report renders breach findings and the run summary to the
// terminal. Only the non-secret fields of a record ever cross into this
// package: identifiers, titles, emails, URLs, and counts.
package report

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-breach-audit/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	pwnedTagStyle = lipgloss.NewStyle().Bold(true)
	countStyle    = lipgloss.NewStyle().Bold(true)
	summaryStyle  = lipgloss.NewStyle().Faint(true)
)

// shortIDLen is how many characters of the opaque source identifier are shown.
const shortIDLen = 8

// Writer renders audit output to a single stream, normally stdout.
type Writer struct {
	out io.Writer
}

// NewWriter returns a Writer emitting to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Finding prints one breach finding line:
//
//	[PWNED] 3730471 | abcd1234 | GitHub | me@example.com | https://github.com
func (w *Writer) Finding(r models.BreachResult) {
	fmt.Fprintf(w.out, "%s %s | %s | %s | %s | %s\n",
		pwnedTagStyle.Render("[PWNED]"),
		countStyle.Render(fmt.Sprintf("%7d", r.Count)),
		shortID(r.ID),
		r.Title,
		r.Email,
		r.URL,
	)
}

// Summary prints the end-of-run totals.
func (w *Writer) Summary(s models.Summary) {
	line := fmt.Sprintf("Checked %d items. Found %d compromised passwords.", s.TotalChecked, s.TotalPwned)
	fmt.Fprintln(w.out, summaryStyle.Render(line))
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}
