package token

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
)

const (
	// tokenLength is the length of the random part of generated tokens.
	tokenLength = 16
)

// New generates a random token prefixed by prefix. Tokens are used as opaque
// identifiers for objects stored in the registry DB.
func New(
	prefix string,
) string {
	buf := make([]byte, 2*tokenLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	str := base64.RawURLEncoding.EncodeToString(buf)
	str = strings.Map(func(r rune) rune {
		switch r {
		case '-', '_':
			return -1
		}
		return r
	}, str)
	return prefix + "_" + str[:tokenLength]
}
