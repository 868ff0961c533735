package models

import "encoding/json"

const redacted = "[REDACTED]"

// Secret is a string that refuses to print or serialize its value. All
// password material is carried in this type so it cannot leak through
// logging, formatting, or JSON encoding paths.
type Secret string

// Reveal returns the underlying value. The fingerprinting stage is the only
// intended caller.
func (s Secret) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer and always returns a placeholder.
func (s Secret) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not expose the value either.
func (s Secret) GoString() string {
	return redacted
}

// MarshalJSON always emits the redacted placeholder.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}
