// Package signed seals short cookie values with an HMAC-SHA256 tag.
//
// Sealed format: payload "." base64url(hmac(payload)). The payload itself is
// not encrypted; callers pick an encoding that survives in a cookie.
package signed

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalid = errors.New("invalid signed value")

type Signer struct {
	secret []byte
}

func New(secret []byte) Signer {
	return Signer{secret: append([]byte(nil), secret...)}
}

func (s Signer) Seal(payload string) string {
	return payload + "." + s.sign(payload)
}

// Open verifies v and returns its payload.
func (s Signer) Open(v string) (string, error) {
	i := strings.LastIndexByte(v, '.')
	if i <= 0 || i == len(v)-1 {
		return "", ErrInvalid
	}
	payload, sig := v[:i], v[i+1:]
	if !hmac.Equal([]byte(s.sign(payload)), []byte(sig)) {
		return "", ErrInvalid
	}
	return payload, nil
}

func (s Signer) sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
