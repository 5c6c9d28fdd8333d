// Package schema defines the binary messages making up a sear archive's
// plaintext and encrypted structured sections (header, entry, index,
// metadata, footer, and the TAI64N timestamp they embed) and codes them
// with a compact, field-tagged CBOR wire format.
//
// Every message here is encoded as a CBOR map with integer keys
// (cbor:"N,keyasint" field tags) rather than a positional array, so a
// decoder only aware of an older field set still gets a valid partial
// message. Unknown integer keys present in a future wire version are
// dropped on decode into these fixed Go structs — a documented limitation
// of decoding into typed structs rather than a generic map.
package schema

import (
	"github.com/fxamacker/cbor/v2"

	sear "github.com/iqlusioninc/sear"
)

// MaxSectionSize is the largest a length-prefixed section (header or
// footer) may serialize to; the 16-bit length prefix caps it at 65535.
const MaxSectionSize = 65535

// Encode serializes msg to its CBOR wire form.
func Encode(msg any) ([]byte, error) {
	b, err := cbor.Marshal(msg)
	if err != nil {
		return nil, sear.NewError(sear.ErrParse, "unable to encode message", err)
	}
	return b, nil
}

// Decode parses b into msg, which must be a pointer to one of the message
// types in this package.
func Decode(b []byte, msg any) error {
	if err := cbor.Unmarshal(b, msg); err != nil {
		return sear.NewError(sear.ErrParse, "unable to decode message", err)
	}
	return nil
}

// EncodeChecked encodes msg and fails with Overflow if the result exceeds
// MaxSectionSize, as required for the header and footer sections.
func EncodeChecked(msg any) ([]byte, error) {
	b, err := Encode(msg)
	if err != nil {
		return nil, err
	}
	if len(b) > MaxSectionSize {
		return nil, sear.Errorf(sear.ErrOverflow, "encoded section is %d bytes, exceeds the %d byte limit", len(b), MaxSectionSize)
	}
	return b, nil
}
