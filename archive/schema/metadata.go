package schema

// Metadata is written into the encrypted body immediately before the
// STREAM terminates; its serialized length is recorded verbatim in the
// plaintext Footer so a reader can locate it without decrypting the
// entries that precede it.
type Metadata struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	Index     Index   `cbor:"1,keyasint"`
	CreatedAt *Tai64n `cbor:"2,keyasint"`
	Username  string  `cbor:"3,keyasint"`
	Host      string  `cbor:"4,keyasint"`
}
