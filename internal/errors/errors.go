package errors

import "errors"

// Environment file errors indicate failures while synchronizing a target file.
var (
	// ErrAccess indicates the target file could not be opened with the requested capabilities.
	ErrAccess = errors.New("cannot access environment file")

	// ErrRead indicates the underlying stream failed while reading the target file.
	ErrRead = errors.New("cannot read environment file")

	// ErrWrite indicates the merged content could not be written back or truncated.
	ErrWrite = errors.New("cannot write environment file")
)

// Secret errors indicate problems with the tracked secrets themselves.
var (
	// ErrGeneration indicates the secret material could not be generated.
	ErrGeneration = errors.New("failed to generate secret material")

	// ErrInvalidName indicates a tracked secret name cannot be used as an assignment key.
	ErrInvalidName = errors.New("invalid environment variable name")

	// ErrDuplicateName indicates two tracked secrets share the same name.
	ErrDuplicateName = errors.New("duplicate environment variable name")
)

// Command errors indicate invalid user input for a command.
var (
	// ErrUnknownFormat indicates the requested output format is not supported.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrNoPatterns indicates cleanup was invoked without any glob pattern.
	ErrNoPatterns = errors.New("no cleanup patterns provided")

	// ErrConfigNotFound indicates an explicitly requested configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
