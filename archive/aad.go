package archive

import (
	"github.com/iqlusioninc/sear/crypto/canonicalization"
)

// Magic is the archive format's fixed 6-byte magic.
const Magic = "sear:0"

// buildAAD derives the associated data bound into every STREAM chunk's
// authentication: the canonical encoding of the magic followed by the
// serialized plaintext header, so ciphertext from one archive (or one
// header) can never be spliced into another.
//
// The footer signature's protected content is a separate, three-piece
// PAE encoding (magic, header, metadata); see
// signature.FooterProtectedContent.
func buildAAD(headerBytes []byte) ([]byte, error) {
	return canonicalization.PreAuthenticationEncoding([]byte(Magic), headerBytes)
}
