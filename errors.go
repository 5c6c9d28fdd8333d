package sear

import "fmt"

// ErrorKind classifies the failure modes surfaced by the core archive
// engine. It implements the error interface directly so callers can write
// errors.Is(err, sear.ErrCrypto) against either a bare ErrorKind or an
// *Error built from one.
type ErrorKind string

// Error implements the error interface for ErrorKind.
func (k ErrorKind) Error() string { return string(k) }

const (
	// ErrArgument marks invalid caller-supplied input (mutually exclusive
	// flags, a mismatched explicit entry length, and so on).
	ErrArgument ErrorKind = "argument"
	// ErrCrypto marks an AEAD failure, a STREAM counter overflow, or a
	// key-construction failure.
	ErrCrypto ErrorKind = "crypto"
	// ErrFileNotFound marks a missing key or input path.
	ErrFileNotFound ErrorKind = "file_not_found"
	// ErrIO marks any other I/O failure from a sink or reader.
	ErrIO ErrorKind = "io"
	// ErrOverflow marks a length-prefixed section exceeding 65535 bytes.
	ErrOverflow ErrorKind = "overflow"
	// ErrParse marks a CryptoURI, key-type, or codec parse failure.
	ErrParse ErrorKind = "parse"
	// ErrPath marks invalid UTF-8 in a path or an unsupported filesystem
	// object kind.
	ErrPath ErrorKind = "path"
)

// Error wraps an underlying cause with a taxonomy kind and a message
// describing the operation that failed.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("sear: %s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("sear: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, sear.ErrCrypto) match an *Error by its Kind.
func (e *Error) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && e.Kind == k
}

// NewError builds an *Error of the given kind, optionally wrapping cause.
func NewError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
