// Package fingerprint computes the one-way representation of a password used
// by the k-anonymity range protocol: the SHA-1 digest of the UTF-8 password
// bytes, rendered as 40 uppercase hex characters and split into a 5-character
// prefix (disclosed to the breach corpus) and a 35-character remainder
// (matched locally, never transmitted).
//
// SHA-1 is fixed by the corpus protocol; it is used here as an identifier of
// breached passwords, not as a general-purpose password hash.
package fingerprint

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"github.com/MKhiriev/go-breach-audit/models"
)

// PrefixLen is the number of leading hex characters disclosed to the corpus.
const PrefixLen = 5

// New hashes password and splits the digest into prefix and remainder.
// The caller guarantees the password is non-empty: records without a
// password are filtered out before this stage. Deterministic, no state
// containing the raw password survives the call.
func New(password models.Secret) models.Fingerprint {
	sum := sha1.Sum([]byte(password.Reveal()))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))

	return models.Fingerprint{
		Prefix:    digest[:PrefixLen],
		Remainder: digest[PrefixLen:],
	}
}
