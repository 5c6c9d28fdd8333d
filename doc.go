// Package sear implements the sear signed-and-encrypted archive format.
//
// An archive bundles a set of file entries behind a single AEAD-encrypted,
// chunked body. A plaintext header (archive UUID, chunk size and key
// fingerprints) is bound into every chunk as associated data; the index
// describing the entries is encrypted at the end of the body; a plaintext
// footer records the index length and an optional signature over the
// magic, header and index. See the archive package for the on-disk layout and the crypto
// subpackages for the cryptographic primitives used to build it.
package sear
