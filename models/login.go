package models

// LoginRecord is the normalized form of a single credential entry returned
// by the external credential source. Records are constructed once per raw
// item and never mutated afterwards.
type LoginRecord struct {
	// ID is the opaque identifier assigned by the source system.
	ID string

	// Title is the human-readable name of the item.
	Title string

	// Email is the account identifier stored on the item. May be empty.
	Email string

	// URL is the primary website associated with the item. May be empty.
	URL string

	// Password is the secret to be audited. Records with an empty password
	// never reach the fingerprinting stage.
	Password Secret
}

// HasPassword reports whether the record is eligible for a breach check.
func (r LoginRecord) HasPassword() bool {
	return r.Password != ""
}
