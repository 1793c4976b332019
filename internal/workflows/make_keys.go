package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/saas-template-companion/internal/audit"
	"github.com/PolarWolf314/saas-template-companion/internal/envfile"
	"github.com/PolarWolf314/saas-template-companion/internal/keys"
)

// MakeKeysOptions configures the make keys workflow.
type MakeKeysOptions struct {
	// EnvFile is the target file to merge the secrets into.
	EnvFile string

	// DryRun generates and presents the secrets without touching EnvFile.
	DryRun bool

	// Generator produces the key material. The zero value uses crypto/rand.
	Generator keys.Generator

	// Present is called with the fresh secrets before the file is modified.
	Present func(set *envfile.Set) error

	// AuditPath is the audit log to append to; empty disables it.
	AuditPath string
}

// MakeKeysResult contains the outcome of a make keys operation.
type MakeKeysResult struct {
	// Set holds the generated secrets.
	Set *envfile.Set

	// EnvFile is the target file.
	EnvFile string

	// DryRun indicates the file was left untouched.
	DryRun bool

	// Sync describes the merge pass. Nil when DryRun is set.
	Sync *envfile.Result
}

// MakeKeys generates a fresh key pair and symmetric key and stores them in
// the target .env file.
//
// The workflow:
//  1. Generates the X25519 key pair and the symmetric key
//  2. Hands the secrets to Present
//  3. Unless DryRun, merges them into EnvFile and records an audit entry
//
// Errors wrap ErrGeneration for key generation failures and ErrAccess,
// ErrRead or ErrWrite for failures on the target file.
func MakeKeys(ctx context.Context, opts MakeKeysOptions) (*MakeKeysResult, error) {
	material, err := opts.Generator.Generate()
	if err != nil {
		return nil, err
	}

	set, err := keys.NewSet(material)
	if err != nil {
		return nil, fmt.Errorf("building tracked secrets: %w", err)
	}

	if opts.Present != nil {
		if err := opts.Present(set); err != nil {
			return nil, fmt.Errorf("presenting secrets: %w", err)
		}
	}

	result := &MakeKeysResult{
		Set:     set,
		EnvFile: opts.EnvFile,
		DryRun:  opts.DryRun,
	}

	if opts.DryRun {
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	syncResult, err := envfile.SyncFile(opts.EnvFile, set)
	if err != nil {
		return nil, err
	}
	result.Sync = syncResult

	entry := audit.NewEntry("make-keys")
	entry.EnvFile = opts.EnvFile
	entry.Patched = syncResult.Patched
	entry.Appended = syncResult.Appended
	audit.Log(opts.AuditPath, entry)

	return result, nil
}
