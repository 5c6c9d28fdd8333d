package schema

// Footer is the archive's plaintext trailer: the length of the embedded
// Metadata and the optional signature over the archive. It is itself
// length-prefixed by a trailing 2-byte little-endian count at EOF.
type Footer struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	MetadataLength uint64 `cbor:"1,keyasint"`
	Signature      []byte `cbor:"2,keyasint"`
}
