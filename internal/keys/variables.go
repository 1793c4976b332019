package keys

import "github.com/PolarWolf314/saas-template-companion/internal/envfile"

// Environment variable names written to the target file.
const (
	EnvNextAuthSecret                 = "NEXTAUTH_SECRET"
	EnvAsymmetricEncryptionPublicKey  = "ASYMMETRIC_ENCRYPTION_PUBLIC_KEY"
	EnvAsymmetricEncryptionPrivateKey = "ASYMMETRIC_ENCRYPTION_PRIVATE_KEY"
)

// Variable ties a display slot to the environment variable it is stored in.
type Variable struct {
	Slot string
	Env  string
}

// Variables lists the tracked secrets in display and append order.
var Variables = []Variable{
	{Slot: "next_auth_secret", Env: EnvNextAuthSecret},
	{Slot: "asymmetric_encryption_public_key", Env: EnvAsymmetricEncryptionPublicKey},
	{Slot: "asymmetric_encryption_private_key", Env: EnvAsymmetricEncryptionPrivateKey},
}

// SlotFor returns the display slot of an environment variable name.
func SlotFor(env string) string {
	for _, v := range Variables {
		if v.Env == env {
			return v.Slot
		}
	}
	return ""
}

// NewSet encodes m into the ordered set of tracked records.
func NewSet(m *Material) (*envfile.Set, error) {
	values := map[string]string{
		EnvNextAuthSecret:                 Encode(m.SymmetricKey[:]),
		EnvAsymmetricEncryptionPublicKey:  Encode(m.PublicKey[:]),
		EnvAsymmetricEncryptionPrivateKey: Encode(m.PrivateKey[:]),
	}

	records := make([]*envfile.Record, 0, len(Variables))
	for _, v := range Variables {
		records = append(records, envfile.NewRecord(v.Env, values[v.Env]))
	}

	return envfile.NewSet(records...)
}
