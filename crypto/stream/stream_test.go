package stream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	sear "github.com/iqlusioninc/sear"
)

func testKey(suite Suite) []byte {
	key := bytes.Repeat([]byte{0x11}, 32)
	_ = suite
	return key
}

func TestNewAEAD_Suites(t *testing.T) {
	t.Parallel()

	for _, suite := range []Suite{AES256GCM, ChaCha20Poly1305} {
		suite := suite
		t.Run(string(suite), func(t *testing.T) {
			t.Parallel()

			aead, err := NewAEAD(suite, testKey(suite))
			require.NoError(t, err)
			require.Equal(t, NonceSize, aead.NonceSize())
			require.Equal(t, TagSize, aead.Overhead())
		})
	}
}

func TestNewAEAD_UnsupportedSuite(t *testing.T) {
	t.Parallel()

	_, err := NewAEAD(Suite("rot13"), testKey(AES256GCM))
	require.Error(t, err)
	require.True(t, errors.Is(err, sear.ErrParse))
}

func TestEncryptor_SealOpenRoundTrip(t *testing.T) {
	t.Parallel()

	for _, suite := range []Suite{AES256GCM, ChaCha20Poly1305} {
		suite := suite
		t.Run(string(suite), func(t *testing.T) {
			t.Parallel()

			aead, err := NewAEAD(suite, testKey(suite))
			require.NoError(t, err)

			enc := NewEncryptor(aead)
			dec := NewEncryptor(aead)

			aad := []byte("sear:0")
			plaintext := append([]byte(nil), []byte("hello, chunked world")...)

			sealed := enc.Seal(0, false, aad, append(plaintext, make([]byte, TagSize)...)[:len(plaintext)])
			opened, err := dec.Open(0, false, aad, sealed)
			require.NoError(t, err)
			require.Equal(t, plaintext, opened)
		})
	}
}

func TestEncryptor_LastBlockFlagChangesCiphertext(t *testing.T) {
	t.Parallel()

	aead, err := NewAEAD(AES256GCM, testKey(AES256GCM))
	require.NoError(t, err)

	plaintext := []byte("same position, different terminality")

	enc1 := NewEncryptor(aead)
	buf1 := append([]byte(nil), plaintext...)
	sealedNonLast := enc1.Seal(3, false, nil, append(buf1, make([]byte, TagSize)...)[:len(buf1)])

	enc2 := NewEncryptor(aead)
	buf2 := append([]byte(nil), plaintext...)
	sealedLast := enc2.Seal(3, true, nil, append(buf2, make([]byte, TagSize)...)[:len(buf2)])

	require.NotEqual(t, sealedNonLast, sealedLast)

	// Decrypting with the wrong last-block flag must fail: the flag bit is
	// bound into the nonce, so swapping it is equivalent to corrupting the
	// nonce.
	dec := NewEncryptor(aead)
	_, err = dec.Open(3, true, nil, sealedNonLast)
	require.Error(t, err)
	require.True(t, errors.Is(err, sear.ErrCrypto))
}

func TestEncryptor_PositionBoundToNonce(t *testing.T) {
	t.Parallel()

	aead, err := NewAEAD(AES256GCM, testKey(AES256GCM))
	require.NoError(t, err)

	enc := NewEncryptor(aead)
	a := append([]byte(nil), []byte("chunk A payload.")...)
	b := append([]byte(nil), []byte("chunk B payload.")...)

	sealedA := enc.Seal(0, false, nil, append(a, make([]byte, TagSize)...)[:len(a)])
	sealedB := enc.Seal(1, false, nil, append(b, make([]byte, TagSize)...)[:len(b)])

	// Swap the two ciphertexts' positions: decrypting chunk A's bytes as
	// if they were chunk 1 (and vice versa) must fail.
	dec := NewEncryptor(aead)
	_, err = dec.Open(1, false, nil, sealedA)
	require.Error(t, err)

	_, err = dec.Open(0, false, nil, sealedB)
	require.Error(t, err)
}

func TestEncryptor_CorruptedCiphertextFails(t *testing.T) {
	t.Parallel()

	aead, err := NewAEAD(AES256GCM, testKey(AES256GCM))
	require.NoError(t, err)

	enc := NewEncryptor(aead)
	plaintext := append([]byte(nil), []byte("integrity-protected payload")...)
	sealed := enc.Seal(0, true, nil, append(plaintext, make([]byte, TagSize)...)[:len(plaintext)])

	corrupted := append([]byte(nil), sealed...)
	corrupted[len(corrupted)-1] ^= 0xFF

	dec := NewEncryptor(aead)
	_, err = dec.Open(0, true, nil, corrupted)
	require.Error(t, err)
	require.True(t, errors.Is(err, sear.ErrCrypto))
}

func TestCheckedIncrement(t *testing.T) {
	t.Parallel()

	next, err := CheckedIncrement(0)
	require.NoError(t, err)
	require.Equal(t, uint32(1), next)

	_, err = CheckedIncrement(MaxCounter)
	require.Error(t, err)
	require.True(t, errors.Is(err, sear.ErrCrypto))
}
