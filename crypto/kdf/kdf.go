// Package kdf derives per-archive encryption subkeys from a master key.
package kdf

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	sear "github.com/iqlusioninc/sear"
)

// Magic is the info parameter fed to HKDF's expand step. It doubles as the
// archive format's magic bytes so a derived key is bound to the wire
// version that produced it.
const Magic = "sear:0"

// SubkeySize is the length, in bytes, of the derived AEAD subkey.
const SubkeySize = 32

// DeriveSubkey derives a 32-byte AEAD subkey from a master key and an
// archive UUID, via HKDF-SHA-256(salt=uuid, ikm=master, info=Magic).
func DeriveSubkey(master, uuid []byte) ([]byte, error) {
	r := hkdf.New(sha256.New, master, uuid, []byte(Magic))

	subkey := make([]byte, SubkeySize)
	if _, err := io.ReadFull(r, subkey); err != nil {
		return nil, sear.NewError(sear.ErrCrypto, "hkdf expand failed", err)
	}

	return subkey, nil
}
