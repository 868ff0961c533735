package models

// Candidate is a single (remainder, count) pair from a range query response.
// Count is how many times the corresponding password appears in the breach
// corpus and is always positive for a real entry.
type Candidate struct {
	Remainder string
	Count     int
}

// CandidateSet is the ordered corpus response for one prefix query. An empty
// set is a valid outcome meaning the corpus holds no entry for the prefix.
type CandidateSet []Candidate

// BreachResult is the outcome of checking one login record against the
// breach corpus. It carries only the non-secret fields of the originating
// record; the password and its fingerprint never cross this boundary.
type BreachResult struct {
	ID    string
	Title string
	Email string
	URL   string
	Pwned bool
	Count int
}

// Summary aggregates a whole audit run.
type Summary struct {
	// TotalChecked counts records with a non-empty password that entered
	// the checking pipeline, including records whose lookup failed.
	TotalChecked int

	// TotalPwned counts records confirmed present in the breach corpus.
	// Always <= TotalChecked.
	TotalPwned int
}
