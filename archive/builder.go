// Package archive composes the schema codec, the chunked AEAD writer, and
// per-file entry construction into the archive builder: the component
// that writes magic, header, encrypted body, and footer in order.
package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/google/uuid"

	"github.com/iqlusioninc/sear/archive/chunkwriter"
	"github.com/iqlusioninc/sear/archive/schema"
	"github.com/iqlusioninc/sear/crypto/kdf"
	"github.com/iqlusioninc/sear/crypto/signature"
	"github.com/iqlusioninc/sear/crypto/stream"

	sear "github.com/iqlusioninc/sear"
)

type builderState int

const (
	stateOpen builderState = iota
	stateFinalized
)

// Builder composes the archive format: it owns the output sink, the
// STREAM encryptor wired through the chunked writer, and the
// accumulating index of appended entries. An instance transitions
// Open -> Finalized exactly once, at Finish.
type Builder struct {
	sink        io.Writer
	uuid        uuid.UUID
	headerBytes []byte
	cw          *chunkwriter.Writer
	entries     []schema.Entry
	signer      signature.Signer
	state       builderState
}

// New writes the magic and plaintext header, derives the per-archive
// subkey via HKDF, and constructs the chunked STREAM writer over sink.
// masterKey is the raw secret key material (already extracted from its
// CryptoURI form); suite names the AEAD ciphersuite it was declared for.
// signer, if non-nil, signs the footer at Finish and populates the
// header's signing-key fingerprint.
func New(sink io.Writer, masterKey []byte, suite stream.Suite, chunkSize chunkwriter.ChunkSize, signer signature.Signer) (*Builder, error) {
	if _, err := sink.Write([]byte(Magic)); err != nil {
		return nil, sear.NewError(sear.ErrIO, "unable to write magic", err)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, sear.NewError(sear.ErrCrypto, "unable to generate archive uuid", err)
	}

	header := schema.Header{
		UUID:                     "\n" + id.String() + "\n",
		ChunkSize:                uint64(chunkSize),
		EncryptionKeyFingerprint: fingerprint(masterKey),
	}
	if signer != nil {
		header.SigningKeyFingerprint = fingerprint(signer.PublicKey())
	}

	headerBytes, err := schema.EncodeChecked(header)
	if err != nil {
		return nil, err
	}

	if err := writeLengthPrefixed(sink, headerBytes); err != nil {
		return nil, err
	}

	subkey, err := kdf.DeriveSubkey(masterKey, id[:])
	if err != nil {
		return nil, err
	}

	aead, err := stream.NewAEAD(suite, subkey)
	if err != nil {
		return nil, err
	}

	aad, err := buildAAD(headerBytes)
	if err != nil {
		return nil, sear.NewError(sear.ErrCrypto, "unable to build associated data", err)
	}

	cw, err := chunkwriter.New(sink, stream.NewEncryptor(aead), chunkSize, aad)
	if err != nil {
		return nil, err
	}

	return &Builder{
		sink:        sink,
		uuid:        id,
		headerBytes: headerBytes,
		cw:          cw,
		signer:      signer,
	}, nil
}

// Append streams r's content through the chunked writer as the next
// entry's payload. If entry.Length is 0, it is set to the number of
// plaintext bytes consumed; otherwise it must already match, or this
// fails with Argument.
func (b *Builder) Append(entry *schema.Entry, r io.Reader) error {
	if b.state != stateOpen {
		return sear.Errorf(sear.ErrArgument, "builder is already finalized")
	}

	n, err := b.cw.ReadFrom(r)
	if err != nil {
		return err
	}

	switch {
	case entry.Length == 0:
		entry.Length = uint64(n)
	case entry.Length != uint64(n):
		return sear.Errorf(sear.ErrArgument, "entry %q declared length %d does not match %d bytes read", entry.Path, entry.Length, n)
	}

	b.entries = append(b.entries, *entry)
	return nil
}

// Finish writes the Metadata section into the encrypted body, flushes the
// terminal chunk, and writes the plaintext Footer and its length trailer.
// It consumes the builder: Append must not be called again.
func (b *Builder) Finish() error {
	if b.state != stateOpen {
		return sear.Errorf(sear.ErrArgument, "builder is already finalized")
	}
	b.state = stateFinalized

	createdAt := schema.Now()
	metadata := schema.Metadata{
		Index:     schema.NewIndex(b.entries),
		CreatedAt: &createdAt,
	}

	metadataBytes, err := schema.Encode(metadata)
	if err != nil {
		return err
	}

	if _, err := b.cw.Write(metadataBytes); err != nil {
		return err
	}

	sink, err := b.cw.Finish()
	if err != nil {
		return err
	}

	var sig []byte
	if b.signer != nil {
		sig, err = signature.SignFooter(b.signer, Magic, b.headerBytes, metadataBytes)
		if err != nil {
			return sear.NewError(sear.ErrCrypto, "unable to sign footer", err)
		}
	}

	footer := schema.Footer{
		MetadataLength: uint64(len(metadataBytes)),
		Signature:      sig,
	}

	footerBytes, err := schema.EncodeChecked(footer)
	if err != nil {
		return err
	}

	if _, err := sink.Write(footerBytes); err != nil {
		return sear.NewError(sear.ErrIO, "unable to write footer", err)
	}

	if err := writeUint16LE(sink, len(footerBytes)); err != nil {
		return err
	}

	return nil
}

func writeLengthPrefixed(w io.Writer, payload []byte) error {
	if len(payload) > schema.MaxSectionSize {
		return sear.Errorf(sear.ErrOverflow, "section is %d bytes, exceeds the %d byte limit", len(payload), schema.MaxSectionSize)
	}
	if err := writeUint16LE(w, len(payload)); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	if _, err := w.Write(payload); err != nil {
		return sear.NewError(sear.ErrIO, "unable to write section", err)
	}
	return nil
}

func writeUint16LE(w io.Writer, n int) error {
	b := []byte{byte(n), byte(n >> 8)}
	if _, err := w.Write(b); err != nil {
		return sear.NewError(sear.ErrIO, "unable to write length prefix", err)
	}
	return nil
}

func fingerprint(material []byte) string {
	if len(material) == 0 {
		return ""
	}
	sum := sha256.Sum256(material)
	return hex.EncodeToString(sum[:])
}
