// Package buildcookie keeps the visitor's current build id in a signed cookie,
// so /build finds the last build again without an id in the URL.
package buildcookie

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ihlutir.is/app/internal/http/signed"
	"ihlutir.is/app/internal/modules/builds"
)

var ErrInvalid = errors.New("invalid build cookie")

const maxAge = 365 * 24 * time.Hour

type Codec struct {
	signer     signed.Signer
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{signer: signed.New(secret), CookieName: name, Secure: secure}
}

// value format: buildID.base64(hmac(buildID))
func (c *Codec) Encode(buildID string) string {
	return c.signer.Seal(buildID)
}

func (c *Codec) Decode(v string) (string, error) {
	id, err := c.signer.Open(v)
	if err != nil || builds.NormalizeID(id) == "" {
		return "", ErrInvalid
	}
	return id, nil
}

// BuildID returns the stored build id. A cookie that fails verification is
// cleared.
func (c *Codec) BuildID(ctx *gin.Context) (string, bool) {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return "", false
	}
	id, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return "", false
	}
	return id, true
}

func (c *Codec) Set(ctx *gin.Context, buildID string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, c.Encode(buildID), int(maxAge.Seconds()), "/", "", c.Secure, true)
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}
