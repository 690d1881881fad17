package flash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AlexIvan10/Romanian-Football-Shop-sub000/pkg/view"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), "flash", false)

	v, err := c.Encode(view.Flash{Kind: view.FlashSuccess, Message: "Order placed."})
	require.NoError(t, err)

	f, err := c.Decode(v)
	require.NoError(t, err)
	require.Equal(t, view.FlashSuccess, f.Kind)
	require.Equal(t, "Order placed.", f.Message)
}

func TestDecodeRejectsTamperedPayload(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), "flash", false)
	v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "hello"})
	require.NoError(t, err)

	parts := strings.SplitN(v, ".", 2)
	tampered := parts[0] + "x." + parts[1]
	_, err = c.Decode(tampered)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a := NewCodec([]byte("secret-a"), "flash", false)
	b := NewCodec([]byte("secret-b"), "flash", false)

	v, err := a.Encode(view.Flash{Kind: view.FlashInfo, Message: "hello"})
	require.NoError(t, err)

	_, err = b.Decode(v)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), "flash", false)
	for _, v := range []string{"", "no-dot", "a.b.c", "!.!"} {
		_, err := c.Decode(v)
		require.Error(t, err, "value %q", v)
	}
}

func TestDecodeRejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), "flash", false)
	v, err := c.Encode(view.Flash{Kind: view.FlashInfo, Message: "   "})
	require.NoError(t, err)

	_, err = c.Decode(v)
	require.ErrorIs(t, err, ErrInvalid)
}
