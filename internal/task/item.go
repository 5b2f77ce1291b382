package task

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// Item is the domain model for a single task entry.
type Item struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Order     int    `json:"order"`
}

// newID returns "t-<suffix>" where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newID() (string, error) {
	var b [5]byte // 40 bits -> 8 base32 chars
	if _, err := rand.Read(b[:]); err != nil {
		return "", fmt.Errorf("rand: %w", err)
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return "t-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}
