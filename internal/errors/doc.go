// Package errors provides typed error values for the companion CLI.
//
// Sentinel errors let callers branch on a failure class with errors.Is()
// instead of matching message strings.
//
// # Error Categories
//
//   - Environment file errors: ErrAccess, ErrRead, ErrWrite
//   - Secret errors: ErrGeneration, ErrInvalidName, ErrDuplicateName
//   - Command errors: ErrUnknownFormat, ErrNoPatterns, ErrConfigNotFound
//
// # Usage
//
// Internal packages wrap a sentinel together with the cause:
//
//	return fmt.Errorf("reading %s: %w: %w", path, kerrors.ErrRead, err)
//
// The CLI layer picks a user-facing message:
//
//	if errors.Is(err, kerrors.ErrAccess) {
//	    // Suggest checking the path and permissions
//	}
package errors
