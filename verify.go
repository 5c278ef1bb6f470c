package balloon

import (
	"crypto/subtle"
)

// Verify recomputes the digest of password and salt and compares it with
// digest in constant time.
func (h *Hasher) Verify(password, salt, digest []byte) bool {
	return subtle.ConstantTimeCompare(h.Sum(password, salt), digest) == 1
}

// Verify reports whether digest is the Balloon digest of password and
// salt under config. It returns an error only for an invalid config.
func Verify(config Config, password, salt, digest []byte) (bool, error) {
	h, err := New(config)
	if err != nil {
		return false, err
	}
	return h.Verify(password, salt, digest), nil
}
