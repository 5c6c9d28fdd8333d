// Package keyring holds the active master key(s) used to derive an
// archive's encryption subkey, plus the optional signing and verification
// keys used for the footer signature. It is the C8 component: a thin,
// exclusively-owned container over key material whose lifetime is scoped
// by memguard enclaves so secrets are wiped as soon as they are no longer
// held open.
package keyring

import (
	"os"
	"strings"

	"github.com/awnumar/memguard"

	"github.com/iqlusioninc/sear/crypto/signature"
	"github.com/iqlusioninc/sear/crypto/stream"
	"github.com/iqlusioninc/sear/internal/cryptouri"

	sear "github.com/iqlusioninc/sear"
)

// Key is a single loaded master key: the raw secret material (held inside
// an enclave, never copied into an untracked buffer) and the AEAD suite
// it declared as its derived algorithm.
type Key struct {
	Algorithm stream.Suite
	material  *memguard.Enclave
}

// Open returns the key's raw material in a locked buffer the caller must
// Destroy when done with it.
func (k *Key) Open() (*memguard.LockedBuffer, error) {
	lb, err := k.material.Open()
	if err != nil {
		return nil, sear.NewError(sear.ErrCrypto, "unable to open key enclave", err)
	}
	return lb, nil
}

// Keyring holds zero or more master keys plus an optional signer and
// zero-or-more verifiers. It is the builder's (and, symmetrically, the
// extractor's) sole source of key material.
type Keyring struct {
	keys      []*Key
	signer    signature.Signer
	verifiers []signature.Verifier
}

// New returns an empty Keyring.
func New() *Keyring {
	return &Keyring{}
}

// Add pushes a pre-parsed master key onto the keyring.
func (kr *Keyring) Add(algorithm stream.Suite, material []byte) {
	kr.keys = append(kr.keys, &Key{
		Algorithm: algorithm,
		material:  memguard.NewEnclave(material),
	})
}

// Load reads path as UTF-8 text (trailing newlines trimmed), parses it as
// a CryptoURI secret key, and adds it to the keyring. The in-memory
// buffer holding the textual key is zeroed once parsing completes,
// whatever the outcome.
func (kr *Keyring) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sear.NewError(sear.ErrFileNotFound, path, err)
		}
		return sear.NewError(sear.ErrIO, "unable to read key file "+path, err)
	}
	defer memguard.WipeBytes(raw)

	text := strings.TrimRight(string(raw), "\r\n")

	secret, err := cryptouri.Parse(text)
	if err != nil {
		return err
	}
	defer memguard.WipeBytes(secret.Material)

	kr.Add(secret.Algorithm, secret.Material)
	return nil
}

// Active returns the single loaded master key. It fails with Argument
// when zero or more than one key is loaded: the policy for selecting
// among multiple active keys is an open question the original left
// unresolved (spec.md §9 open question 2), and this rewrite chooses to
// surface that ambiguity as a recoverable error rather than silently
// picking the first key or panicking.
func (kr *Keyring) Active() (*Key, error) {
	switch len(kr.keys) {
	case 0:
		return nil, sear.Errorf(sear.ErrArgument, "no master key loaded")
	case 1:
		return kr.keys[0], nil
	default:
		return nil, sear.Errorf(sear.ErrArgument, "multiple active master keys are loaded (%d); selection policy is undefined", len(kr.keys))
	}
}

// LoadSigningKey reads path as a PEM-encoded PKCS8 private key and sets it
// as the keyring's signer, used to produce the archive footer signature.
func (kr *Keyring) LoadSigningKey(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sear.NewError(sear.ErrFileNotFound, path, err)
		}
		return sear.NewError(sear.ErrIO, "unable to open signing key file "+path, err)
	}
	defer f.Close()

	signer, err := signature.FromPrivateKeyPEM(f)
	if err != nil {
		return sear.NewError(sear.ErrParse, "unable to parse signing key "+path, err)
	}

	kr.signer = signer
	return nil
}

// LoadVerificationKey reads path as a PEM-encoded PKIX public key and adds
// it to the keyring's verifier list.
func (kr *Keyring) LoadVerificationKey(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sear.NewError(sear.ErrFileNotFound, path, err)
		}
		return sear.NewError(sear.ErrIO, "unable to open verification key file "+path, err)
	}
	defer f.Close()

	verifier, err := signature.FromPublicKeyPEM(f)
	if err != nil {
		return sear.NewError(sear.ErrParse, "unable to parse verification key "+path, err)
	}

	kr.verifiers = append(kr.verifiers, verifier)
	return nil
}

// Signer returns the active signer, or nil if no signing key was loaded.
func (kr *Keyring) Signer() signature.Signer {
	return kr.signer
}

// Verifiers returns the loaded verification keys.
func (kr *Keyring) Verifiers() []signature.Verifier {
	return kr.verifiers
}
