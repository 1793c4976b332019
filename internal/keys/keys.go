// Package keys generates the secret material tracked in the project's .env file.
package keys

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"

	"golang.org/x/crypto/nacl/box"
)

// SymmetricKeySize matches the key size expected by nacl/secretbox.
const SymmetricKeySize = 32

// Material holds freshly generated raw key bytes.
type Material struct {
	PublicKey    [32]byte
	PrivateKey   [32]byte
	SymmetricKey [SymmetricKeySize]byte
}

// Generator produces key material from a randomness source.
type Generator struct {
	// Rand is the entropy source. Nil means crypto/rand.Reader.
	Rand io.Reader
}

func (g Generator) source() io.Reader {
	if g.Rand == nil {
		return rand.Reader
	}
	return g.Rand
}

// GenerateAsymmetric creates a Curve25519 key pair usable with nacl/box.
func (g Generator) GenerateAsymmetric() (publicKey, privateKey *[32]byte, err error) {
	publicKey, privateKey, err = box.GenerateKey(g.source())
	if err != nil {
		return nil, nil, fmt.Errorf("generating asymmetric key pair: %w: %w", kerrors.ErrGeneration, err)
	}
	return publicKey, privateKey, nil
}

// GenerateSymmetric creates a random symmetric key.
func (g Generator) GenerateSymmetric() (*[SymmetricKeySize]byte, error) {
	var key [SymmetricKeySize]byte
	if _, err := io.ReadFull(g.source(), key[:]); err != nil {
		return nil, fmt.Errorf("generating symmetric key: %w: %w", kerrors.ErrGeneration, err)
	}
	return &key, nil
}

// Generate creates both the asymmetric pair and the symmetric key.
func (g Generator) Generate() (*Material, error) {
	publicKey, privateKey, err := g.GenerateAsymmetric()
	if err != nil {
		return nil, err
	}

	symmetricKey, err := g.GenerateSymmetric()
	if err != nil {
		return nil, err
	}

	return &Material{
		PublicKey:    *publicKey,
		PrivateKey:   *privateKey,
		SymmetricKey: *symmetricKey,
	}, nil
}

// Encode returns the URL-safe, unpadded base64 form of b.
func Encode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}
