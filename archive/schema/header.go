package schema

// Header is the archive's plaintext preamble, written immediately after
// the magic bytes and its own 2-byte little-endian length prefix.
type Header struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	// UUID is the archive's identifier, padded with a leading and
	// trailing newline for human inspection when the header bytes are
	// dumped as text.
	UUID string `cbor:"1,keyasint"`
	// ChunkSize is one of the enumerated chunk sizes (1024 or 131072).
	ChunkSize uint64 `cbor:"2,keyasint"`
	// EncryptionKeyFingerprint is a textual fingerprint of the active
	// master key, or empty.
	EncryptionKeyFingerprint string `cbor:"3,keyasint"`
	// SigningKeyFingerprint is hex(SHA-256(signer's raw public key
	// bytes)), or empty when no signing key is active.
	SigningKeyFingerprint string `cbor:"4,keyasint"`
}
