package cryptouri

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iqlusioninc/sear/crypto/stream"

	sear "github.com/iqlusioninc/sear"
)

func TestParse_RoundTrip(t *testing.T) {
	t.Parallel()

	material := bytes.Repeat([]byte{0x07}, 32)
	uri := "crypto:sec:key:hkdfsha256:aes256gcm:" + base64.RawURLEncoding.EncodeToString(material)

	key, err := Parse(uri)
	require.NoError(t, err)
	require.Equal(t, stream.AES256GCM, key.Algorithm)
	require.Equal(t, material, key.Material)
	require.Equal(t, uri, key.Encode())
}

func TestParse_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	material := bytes.Repeat([]byte{0x09}, 32)
	uri := "crypto:sec:key:hkdfsha256:chacha20poly1305:" + base64.RawURLEncoding.EncodeToString(material) + "\n"

	key, err := Parse(uri)
	require.NoError(t, err)
	require.Equal(t, stream.ChaCha20Poly1305, key.Algorithm)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	material := base64.RawURLEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, 32))

	cases := map[string]string{
		"wrong segment count": "crypto:sec:key:hkdfsha256:aes256gcm",
		"wrong scheme":         "crypto:pub:key:hkdfsha256:aes256gcm:" + material,
		"wrong profile":        "crypto:sec:key:bcrypt:aes256gcm:" + material,
		"unsupported algorithm": "crypto:sec:key:hkdfsha256:rot13:" + material,
		"invalid base64":       "crypto:sec:key:hkdfsha256:aes256gcm:not-valid-base64!!",
		"wrong key length":     "crypto:sec:key:hkdfsha256:aes256gcm:" + base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x02}),
	}

	for name, uri := range cases {
		uri := uri
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(uri)
			require.Error(t, err)
			require.True(t, errors.Is(err, sear.ErrParse))
		})
	}
}
