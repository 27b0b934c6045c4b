package flash

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ihlutir.is/app/internal/http/signed"
	"ihlutir.is/app/pkg/view"
)

var ErrInvalid = errors.New("invalid flash cookie")

// Flash messages live for one redirect.
const maxAge = 2 * time.Minute

type Codec struct {
	signer     signed.Signer
	CookieName string
	Secure     bool
}

func NewCodec(secret []byte, cookieName string, secure bool) *Codec {
	return &Codec{signer: signed.New(secret), CookieName: cookieName, Secure: secure}
}

// value format: base64(json).base64(hmac)
func (c *Codec) Encode(f view.Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	return c.signer.Seal(base64.RawURLEncoding.EncodeToString(b)), nil
}

func (c *Codec) Decode(v string) (*view.Flash, error) {
	payload, err := c.signer.Open(v)
	if err != nil {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var f view.Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, ErrInvalid
	}
	if strings.TrimSpace(f.Message) == "" {
		return nil, ErrInvalid
	}
	return &f, nil
}

func (c *Codec) CookieMaxAge() int {
	return int(maxAge.Seconds())
}
