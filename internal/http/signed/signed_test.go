package signed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealOpen(t *testing.T) {
	s := New([]byte("0123456789abcdef0123456789abcdef"))

	v := s.Seal("abc123")
	got, err := s.Open(v)

	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestOpenRejectsTampering(t *testing.T) {
	s := New([]byte("secret-one"))
	other := New([]byte("secret-two"))
	v := s.Seal("abc123")

	for _, bad := range []string{"", "abc123", "abc123.", ".sig", "abd123" + v[6:], other.Seal("abc123")} {
		_, err := s.Open(bad)
		assert.ErrorIs(t, err, ErrInvalid, "value %q", bad)
	}
}

func TestPayloadMayContainDots(t *testing.T) {
	s := New([]byte("k"))

	got, err := s.Open(s.Seal("a.b.c"))

	require.NoError(t, err)
	assert.Equal(t, "a.b.c", got)
}
