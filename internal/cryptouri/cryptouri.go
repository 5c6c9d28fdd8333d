// Package cryptouri parses the textual secret-key URI format used by key
// files: "crypto:sec:key:hkdfsha256:<algorithm>:<base64rawurl key>". No
// published Go CryptoURI package exists for this wire shape, so this is a
// from-scratch adapter modeled on the original Rust cryptouri crate's
// usage pattern (crypto:sec:key:hkdfsha256:..., derived_alg() restricted
// to the two supported AEAD suites).
package cryptouri

import (
	"encoding/base64"
	"strings"

	"github.com/iqlusioninc/sear/crypto/stream"

	sear "github.com/iqlusioninc/sear"
)

const (
	scheme  = "crypto:sec:key"
	profile = "hkdfsha256"
)

// keyMaterialSize is the exact decoded key length accepted for either
// supported derived algorithm.
const keyMaterialSize = 32

// SecretKey is a parsed CryptoURI secret key: the derived AEAD suite it
// declares and the raw key material to feed into HKDF as IKM.
type SecretKey struct {
	Algorithm stream.Suite
	Material  []byte
}

// Parse decodes a CryptoURI string of the form
// "crypto:sec:key:hkdfsha256:<algorithm>:<base64rawurl key>". The
// algorithm segment must be "aes256gcm" or "chacha20poly1305" and the key
// segment must base64url-decode (no padding) to exactly 32 bytes.
func Parse(uri string) (*SecretKey, error) {
	uri = strings.TrimSpace(uri)

	parts := strings.Split(uri, ":")
	if len(parts) != 6 {
		return nil, sear.Errorf(sear.ErrParse, "malformed cryptouri: expected 6 colon-separated segments, got %d", len(parts))
	}

	if got := strings.Join(parts[:3], ":"); got != scheme {
		return nil, sear.Errorf(sear.ErrParse, "malformed cryptouri: unsupported scheme %q", got)
	}
	if parts[3] != profile {
		return nil, sear.Errorf(sear.ErrParse, "malformed cryptouri: unsupported key profile %q", parts[3])
	}

	var algorithm stream.Suite
	switch parts[4] {
	case string(stream.AES256GCM):
		algorithm = stream.AES256GCM
	case string(stream.ChaCha20Poly1305):
		algorithm = stream.ChaCha20Poly1305
	default:
		return nil, sear.Errorf(sear.ErrParse, "unsupported derived algorithm %q", parts[4])
	}

	material, err := base64.RawURLEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, sear.NewError(sear.ErrParse, "invalid base64url key material", err)
	}
	if len(material) != keyMaterialSize {
		return nil, sear.Errorf(sear.ErrParse, "key material must be %d bytes, got %d", keyMaterialSize, len(material))
	}

	return &SecretKey{Algorithm: algorithm, Material: material}, nil
}

// Encode renders k back to its CryptoURI textual form.
func (k *SecretKey) Encode() string {
	return strings.Join([]string{
		scheme, profile, string(k.Algorithm), base64.RawURLEncoding.EncodeToString(k.Material),
	}, ":")
}
