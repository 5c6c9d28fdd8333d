package schema

// Index is the ordered sequence of Entry records; order matches the order
// in which payloads appear in the encrypted body, positionally rather
// than by path.
type Index struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	Entries []Entry `cbor:"1,keyasint"`
}

// NewIndex builds an Index from an append-ordered slice of entries.
func NewIndex(entries []Entry) Index {
	return Index{Entries: entries}
}
