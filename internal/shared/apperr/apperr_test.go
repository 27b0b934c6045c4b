package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{InvalidErr("x", nil), http.StatusBadRequest},
		{NotFoundErr("x"), http.StatusNotFound},
		{ConflictErr("x"), http.StatusConflict},
		{Wrap(errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
		{fmt.Errorf("handler: %w", NotFoundErr("x")), http.StatusNotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestPublicMessageHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.3:3306: connection refused")
	err := Wrap(cause)

	assert.Equal(t, defaultMessage, PublicMessage(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, defaultMessage, PublicMessage(errors.New("raw")))
}

func TestWithErr(t *testing.T) {
	cause := errors.New("record not found")
	err := NotFoundErr("Samsetning fannst ekki.").WithErr(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Samsetning fannst ekki.", PublicMessage(err))
	assert.Nil(t, Wrap(nil))
}
