package signature

import (
	"github.com/iqlusioninc/sear/crypto/canonicalization"
)

// FooterProtectedContent builds the archive footer's signature protected
// content: the magic, the plaintext header bytes, and the plaintext
// metadata bytes, each as its own length-prefixed PAE piece. Keeping
// header and metadata as two distinct pieces (rather than one
// concatenated blob) is the whole point of PAE -- it is what stops a
// byte moved across the header/metadata boundary from producing the
// same protected content as before.
func FooterProtectedContent(magic string, headerBytes, metadataBytes []byte) ([]byte, error) {
	return canonicalization.PreAuthenticationEncoding([]byte(magic), headerBytes, metadataBytes)
}

// SignFooter computes the footer protected content and signs it with
// signer. It is the producer-side half of the archive's optional
// signing feature; the consumer-side half is VerifyFooter.
func SignFooter(signer Signer, magic string, headerBytes, metadataBytes []byte) ([]byte, error) {
	protected, err := FooterProtectedContent(magic, headerBytes, metadataBytes)
	if err != nil {
		return nil, err
	}
	return signer.Sign(protected)
}

// VerifyFooter recomputes the footer protected content and verifies sig
// against it with verifier.
func VerifyFooter(verifier Verifier, magic string, headerBytes, metadataBytes, sig []byte) error {
	protected, err := FooterProtectedContent(magic, headerBytes, metadataBytes)
	if err != nil {
		return err
	}
	return verifier.Verify(protected, sig)
}
