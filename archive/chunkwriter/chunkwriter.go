// Package chunkwriter buffers plaintext into fixed-size chunks and drives
// a STREAM encryptor to seal each one as it fills, emitting ciphertext to
// an underlying sink. It is the write-side adapter described as the
// archive's chunked writer.
package chunkwriter

import (
	"io"

	"github.com/iqlusioninc/sear/crypto/stream"

	sear "github.com/iqlusioninc/sear"
)

// ChunkSize is a closed enumeration of accepted plaintext chunk sizes.
// Other sizes are rejected at construction.
type ChunkSize uint64

const (
	// Kib1 is a 1024-byte chunk size, useful for small archives or tests
	// that want to observe chunk boundaries with tiny inputs.
	Kib1 ChunkSize = 1024
	// Kib128 is the default 128 KiB chunk size.
	Kib128 ChunkSize = 131072
)

// Valid reports whether cs is one of the enumerated chunk sizes.
func (cs ChunkSize) Valid() bool {
	return cs == Kib1 || cs == Kib128
}

// Writer seals plaintext into (chunk_size+tag_size)-byte ciphertext chunks
// as its buffer fills, writing each sealed chunk to the underlying sink
// immediately. The lazy-flush invariant guarantees the residual buffer
// flushed at Finish is always nonempty, so the last-chunk flag lands on
// exactly one chunk.
type Writer struct {
	sink      io.Writer
	enc       *stream.Encryptor
	aad       []byte
	chunkSize int
	buf       []byte
	counter   uint32
	total     uint64
}

// New builds a Writer over sink, sealing chunks with enc and binding aad
// into every chunk's authentication. chunkSize must be one of the
// enumerated ChunkSize values.
func New(sink io.Writer, enc *stream.Encryptor, chunkSize ChunkSize, aad []byte) (*Writer, error) {
	if !chunkSize.Valid() {
		return nil, sear.Errorf(sear.ErrArgument, "unsupported chunk size %d", chunkSize)
	}

	return &Writer{
		sink:      sink,
		enc:       enc,
		aad:       aad,
		chunkSize: int(chunkSize),
		buf:       make([]byte, 0, int(chunkSize)+enc.Overhead()),
	}, nil
}

// flushFull seals and writes the current buffer as a non-last chunk, then
// resets the buffer to empty. Callers must only invoke this when the
// buffer holds exactly chunkSize bytes.
func (w *Writer) flushFull() error {
	sealed := w.enc.Seal(w.counter, false, w.aad, append(w.buf, make([]byte, w.enc.Overhead())...)[:len(w.buf)])

	next, err := stream.CheckedIncrement(w.counter)
	if err != nil {
		return err
	}

	if _, err := w.sink.Write(sealed); err != nil {
		return sear.NewError(sear.ErrIO, "unable to write sealed chunk", err)
	}

	w.counter = next
	w.buf = w.buf[:0]
	return nil
}

// Write copies p into the internal buffer, flushing one full non-last
// chunk each time the buffer would otherwise overflow chunkSize. It
// returns the number of bytes accepted, always len(p) on success.
func (w *Writer) Write(p []byte) (int, error) {
	accepted := 0
	for len(p) > 0 {
		if len(w.buf) == w.chunkSize {
			if err := w.flushFull(); err != nil {
				return accepted, err
			}
		}

		free := w.chunkSize - len(w.buf)
		take := free
		if take > len(p) {
			take = len(p)
		}

		w.buf = append(w.buf, p[:take]...)
		p = p[take:]
		accepted += take
	}

	w.total += uint64(accepted)
	return accepted, nil
}

// ReadFrom pulls plaintext from r until EOF, flushing full chunks as they
// form, and returns the total number of plaintext bytes consumed.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	tmp := make([]byte, w.chunkSize)

	for {
		n, err := r.Read(tmp)
		if n > 0 {
			written, werr := w.Write(tmp[:n])
			total += int64(written)
			if werr != nil {
				return total, werr
			}
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, sear.NewError(sear.ErrIO, "unable to read plaintext input", err)
		}
	}
}

// Total returns the number of plaintext bytes accepted so far.
func (w *Writer) Total() uint64 {
	return w.total
}

// Finish seals the residual buffer as the terminal chunk with the
// last-block flag set and writes it to the sink. If no bytes were ever
// written, it writes nothing, matching the spec's "emit nothing" rule for
// an entirely empty stream. It returns the underlying sink either way.
func (w *Writer) Finish() (io.Writer, error) {
	if w.total == 0 && len(w.buf) == 0 {
		return w.sink, nil
	}

	sealed := w.enc.Seal(w.counter, true, w.aad, append(w.buf, make([]byte, w.enc.Overhead())...)[:len(w.buf)])
	if _, err := w.sink.Write(sealed); err != nil {
		return nil, sear.NewError(sear.ErrIO, "unable to write final sealed chunk", err)
	}

	return w.sink, nil
}
