package models

// Fingerprint is the one-way hash representation of a password, split for
// the k-anonymity range protocol: only Prefix is ever disclosed to the
// breach corpus, Remainder is matched locally and never leaves the process.
//
// Fingerprint values are held in memory for the duration of one breach
// check and must never be logged or persisted.
type Fingerprint struct {
	// Prefix is the first 5 characters of the uppercase hex digest.
	Prefix string

	// Remainder is the remaining 35 characters of the digest.
	Remainder string
}

// FullHash recombines the prefix and remainder into the full 40-character
// digest.
func (f Fingerprint) FullHash() string {
	return f.Prefix + f.Remainder
}
