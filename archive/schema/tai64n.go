package schema

import (
	"encoding/binary"
	"time"

	sear "github.com/iqlusioninc/sear"
)

// tai64Epoch is the offset, in seconds, between the Unix epoch and the
// TAI64 epoch (1970-01-01 TAI is second 2^62 in the TAI64 label space).
const tai64Epoch = 1 << 62

// Tai64n is a 12-byte TAI64N timestamp: 8-byte seconds since the TAI64
// epoch, big-endian, followed by a 4-byte big-endian nanosecond count.
type Tai64n [12]byte

// Now returns the current time encoded as a Tai64n.
func Now() Tai64n {
	return FromTime(time.Now())
}

// FromTime encodes t as a Tai64n. TAI64N ignores leap seconds; this
// implementation treats Unix seconds as TAI seconds, matching the
// original reference implementation's tai64 crate usage (it does not
// apply a leap-second correction table either).
func FromTime(t time.Time) Tai64n {
	var out Tai64n
	binary.BigEndian.PutUint64(out[:8], uint64(tai64Epoch+t.Unix()))
	binary.BigEndian.PutUint32(out[8:], uint32(t.Nanosecond()))
	return out
}

// Time decodes the Tai64n back to a time.Time.
func (t Tai64n) Time() time.Time {
	secs := int64(binary.BigEndian.Uint64(t[:8]) - tai64Epoch)
	nanos := int64(binary.BigEndian.Uint32(t[8:]))
	return time.Unix(secs, nanos).UTC()
}

// MarshalCBOR encodes the timestamp as a 12-byte CBOR byte string.
func (t Tai64n) MarshalCBOR() ([]byte, error) {
	b, err := Encode(t[:])
	if err != nil {
		return nil, err
	}
	return b, nil
}

// UnmarshalCBOR decodes a 12-byte CBOR byte string into the timestamp.
func (t *Tai64n) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := Decode(data, &raw); err != nil {
		return err
	}
	if len(raw) != len(t) {
		return sear.Errorf(sear.ErrParse, "tai64n must be %d bytes, got %d", len(t), len(raw))
	}
	copy(t[:], raw)
	return nil
}
