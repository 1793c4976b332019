package keys

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/saas-template-companion/internal/errors"

	"golang.org/x/crypto/curve25519"
)

func TestGenerate_ProducesValidKeyPair(t *testing.T) {
	material, err := Generator{}.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	derived, err := curve25519.X25519(material.PrivateKey[:], curve25519.Basepoint)
	if err != nil {
		t.Fatalf("X25519 failed: %v", err)
	}
	if !bytes.Equal(derived, material.PublicKey[:]) {
		t.Error("Public key does not match private key")
	}
	if material.SymmetricKey == [SymmetricKeySize]byte{} {
		t.Error("Symmetric key is all zeroes")
	}
}

func TestGenerate_UsesProvidedSource(t *testing.T) {
	source := bytes.NewReader(bytes.Repeat([]byte{0x42}, 64))

	material, err := Generator{Rand: source}.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if material.PrivateKey != [32]byte(bytes.Repeat([]byte{0x42}, 32)) {
		t.Error("Private key should come from the provided source")
	}
	if material.SymmetricKey != [32]byte(bytes.Repeat([]byte{0x42}, 32)) {
		t.Error("Symmetric key should come from the provided source")
	}
}

func TestGenerate_FailingSource(t *testing.T) {
	_, err := Generator{Rand: iotestErrReader{}}.Generate()
	if !errors.Is(err, kerrors.ErrGeneration) {
		t.Fatalf("Expected ErrGeneration, got %v", err)
	}
	if !strings.Contains(err.Error(), "asymmetric") {
		t.Errorf("Error should name the failing step: %v", err)
	}
}

func TestGenerate_ShortSourceFailsSymmetricStep(t *testing.T) {
	source := bytes.NewReader(make([]byte, 40))

	_, err := Generator{Rand: source}.Generate()
	if !errors.Is(err, kerrors.ErrGeneration) {
		t.Fatalf("Expected ErrGeneration, got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("Expected the short read to be preserved, got %v", err)
	}
}

type iotestErrReader struct{}

func (iotestErrReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func TestEncode_IsURLSafeWithoutPadding(t *testing.T) {
	got := Encode([]byte{0xfb, 0xff, 0xfe, 0x00})
	if got != "-__-AA" {
		t.Errorf("Encode() = %q, want %q", got, "-__-AA")
	}

	key := bytes.Repeat([]byte{0xff}, 32)
	encoded := Encode(key)
	if len(encoded) != 43 {
		t.Errorf("Expected 43 characters for a 32-byte key, got %d", len(encoded))
	}
	if strings.ContainsAny(encoded, "+/=\"") {
		t.Errorf("Encoded key contains unsafe characters: %s", encoded)
	}
}

func TestNewSet_OrderAndValues(t *testing.T) {
	material, err := Generator{}.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	set, err := NewSet(material)
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}

	names := set.Names()
	want := []string{EnvNextAuthSecret, EnvAsymmetricEncryptionPublicKey, EnvAsymmetricEncryptionPrivateKey}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("Names() = %v, want %v", names, want)
	}

	public, _ := set.Get(EnvAsymmetricEncryptionPublicKey)
	if public.Value() != Encode(material.PublicKey[:]) {
		t.Error("Public key value mismatch")
	}
	secret, _ := set.Get(EnvNextAuthSecret)
	if secret.Value() != Encode(material.SymmetricKey[:]) {
		t.Error("NextAuth secret should be the symmetric key")
	}
	for _, r := range set.Records() {
		if r.Written() {
			t.Errorf("%s should start unwritten", r.Name())
		}
	}
}

func TestSlotFor(t *testing.T) {
	if got := SlotFor(EnvNextAuthSecret); got != "next_auth_secret" {
		t.Errorf("SlotFor() = %q", got)
	}
	if got := SlotFor("UNKNOWN"); got != "" {
		t.Errorf("SlotFor(UNKNOWN) = %q, want empty", got)
	}
}
