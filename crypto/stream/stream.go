// Package stream implements the STREAM construction (Hoang, Reyhanitabar,
// Rogaway, Vizár) for segmented AEAD: a sequence of chunks, each bound to
// its position in the stream and to whether it is the terminal chunk, so
// that truncation, reordering, and duplication are all detectable on
// decryption.
package stream

import (
	"crypto/aes"
	"crypto/cipher"
	"math"

	"golang.org/x/crypto/chacha20poly1305"

	sear "github.com/iqlusioninc/sear"
)

// Suite names the AEAD ciphersuite backing a STREAM encryptor.
type Suite string

const (
	// AES256GCM selects AES-256 in Galois/Counter Mode.
	AES256GCM Suite = "aes256gcm"
	// ChaCha20Poly1305 selects the ChaCha20-Poly1305 AEAD construction.
	ChaCha20Poly1305 Suite = "chacha20poly1305"
)

// NonceSize is the fixed nonce length in bytes for both supported suites.
const NonceSize = 12

// TagSize is the AEAD authentication tag length in bytes.
const TagSize = 16

// noncePrefixSize is the length, in bytes, of the fixed portion of the
// nonce; the remaining NonceSize-noncePrefixSize bytes carry the
// little-endian chunk counter.
const noncePrefixSize = NonceSize - 4

// lastBlockFlagByte is the index, within the noncePrefixSize-byte prefix,
// whose low bit carries the last-block flag.
const lastBlockFlagByte = noncePrefixSize - 1

// NewAEAD constructs the stdlib cipher.AEAD for the given suite and
// 32-byte key. Both suites are unified behind this single interface so the
// Encryptor never branches per chunk — the ciphersuite choice happens once,
// here.
func NewAEAD(suite Suite, key []byte) (cipher.AEAD, error) {
	switch suite {
	case AES256GCM:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, sear.NewError(sear.ErrCrypto, "unable to construct aes cipher", err)
		}
		aead, err := cipher.NewGCM(block)
		if err != nil {
			return nil, sear.NewError(sear.ErrCrypto, "unable to construct gcm aead", err)
		}
		return aead, nil
	case ChaCha20Poly1305:
		aead, err := chacha20poly1305.New(key)
		if err != nil {
			return nil, sear.NewError(sear.ErrCrypto, "unable to construct chacha20poly1305 aead", err)
		}
		return aead, nil
	default:
		return nil, sear.Errorf(sear.ErrParse, "unsupported aead suite %q", suite)
	}
}

// Encryptor produces STREAM nonces for a single archive's chunk sequence.
// The prefix is the fixed, all-zero value: nonce uniqueness across
// archives comes entirely from the per-archive HKDF-derived key (itself
// salted by a random UUID), not from prefix randomness, so reusing an
// all-zero prefix under a fresh key every time is exactly STREAM's
// intended usage.
type Encryptor struct {
	aead   cipher.AEAD
	prefix [noncePrefixSize]byte
	nonce  [NonceSize]byte
}

// NewEncryptor builds a STREAM encryptor over aead with the all-zero nonce
// prefix, flag bit cleared.
func NewEncryptor(aead cipher.AEAD) *Encryptor {
	e := &Encryptor{aead: aead}
	e.prefix[lastBlockFlagByte] &^= 1
	return e
}

// nonceFor builds the 12-byte nonce for chunk counter, setting the
// last-block flag bit when last is true.
func (e *Encryptor) nonceFor(counter uint32, last bool) []byte {
	copy(e.nonce[:noncePrefixSize], e.prefix[:])
	e.nonce[noncePrefixSize+0] = byte(counter)
	e.nonce[noncePrefixSize+1] = byte(counter >> 8)
	e.nonce[noncePrefixSize+2] = byte(counter >> 16)
	e.nonce[noncePrefixSize+3] = byte(counter >> 24)

	if last {
		e.nonce[lastBlockFlagByte] |= 1
	}

	return e.nonce[:]
}

// Seal encrypts plaintext in place (appending the AEAD tag) for the chunk
// identified by counter, binding aad and whether this is the terminal
// chunk into the nonce. counter must never reach math.MaxUint32; callers
// must check for overflow before incrementing past it.
func (e *Encryptor) Seal(counter uint32, last bool, aad, plaintext []byte) []byte {
	nonce := e.nonceFor(counter, last)
	return e.aead.Seal(plaintext[:0], nonce, plaintext, aad)
}

// Open decrypts and authenticates ciphertext in place for the chunk
// identified by counter and last, returning the plaintext or a Crypto
// error on any authentication failure.
func (e *Encryptor) Open(counter uint32, last bool, aad, ciphertext []byte) ([]byte, error) {
	nonce := e.nonceFor(counter, last)
	plaintext, err := e.aead.Open(ciphertext[:0], nonce, ciphertext, aad)
	if err != nil {
		return nil, sear.NewError(sear.ErrCrypto, "aead authentication failed", err)
	}
	return plaintext, nil
}

// Overhead returns the AEAD tag length added to every sealed chunk.
func (e *Encryptor) Overhead() int {
	return e.aead.Overhead()
}

// MaxCounter is the last value a STREAM chunk counter may hold; the
// counter must never overflow past it within a single archive (invariant
// 9 and 10 of the archive format).
const MaxCounter = math.MaxUint32 - 1

// CheckedIncrement returns counter+1, or a Crypto error if that would
// exceed MaxCounter (so the counter never reaches math.MaxUint32).
func CheckedIncrement(counter uint32) (uint32, error) {
	if counter >= MaxCounter {
		return 0, sear.NewError(sear.ErrCrypto, "STREAM chunk counter overflowed", nil)
	}
	return counter + 1, nil
}
