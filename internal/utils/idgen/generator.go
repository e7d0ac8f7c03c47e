// Package idgen produces the prefixed resource identifiers used across
// the API, such as "thread_gk3...", "msg_9ab..." and "evt_x01...".
package idgen

import (
	"crypto/rand"
	"fmt"
)

// Lowercase alphanumerics keep identifiers URL safe without escaping.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID returns a random identifier of the form "<prefix>_<n chars>",
// drawn from crypto/rand.
func NewID(prefix string, n int) (string, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	id := make([]byte, n)
	for i, b := range raw {
		id[i] = alphabet[int(b)%len(alphabet)]
	}
	return prefix + "_" + string(id), nil
}
