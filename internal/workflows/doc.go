// Package workflows orchestrates the companion's commands.
//
// Workflows coordinate the internal packages (keys, envfile, presenter,
// audit) to implement one user-facing feature each, independent of CLI
// concerns like flag parsing, spinners and final messages.
//
// # Available Workflows
//
//   - MakeKeys: generates secrets, presents them and merges them into a .env file
//   - Cleanup: removes files and folders matching glob patterns
//
// Both honor a dry-run option that performs every step except the file
// mutation.
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors so the
// CLI can choose a message with errors.Is():
//
//	result, err := workflows.MakeKeys(ctx, opts)
//	if errors.Is(err, kerrors.ErrAccess) {
//	    // Point the user at the --env path
//	}
//
// All workflows accept a context.Context as their first parameter. It is
// checked before any file is modified.
package workflows
