package flash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ihlutir.is/app/pkg/view"
)

func TestEncodeDecode(t *testing.T) {
	c := NewCodec([]byte("0123456789abcdef0123456789abcdef"), "ihlutir_flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Íhlut bætt við"})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, view.FlashSuccess, f.Kind)
	assert.Equal(t, "Íhlut bætt við", f.Message)
	assert.Equal(t, 120, c.CookieMaxAge())
}

func TestDecodeRejectsEmptyAndForged(t *testing.T) {
	c := NewCodec([]byte("a"), "f", false)
	other := NewCodec([]byte("b"), "f", false)

	empty, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "  "})
	require.NoError(t, err)
	_, err = c.Decode(empty)
	assert.ErrorIs(t, err, ErrInvalid)

	forged, err := other.Encode(view.Flash{Kind: view.FlashInfo, Message: "hi"})
	require.NoError(t, err)
	_, err = c.Decode(forged)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = c.Decode("garbage")
	assert.ErrorIs(t, err, ErrInvalid)
}
