package bumpversion

import "errors"

// Error classes. Callers match them with errors.Is; ExitCode maps them to
// process exit codes.
var (
	ErrUsage             = errors.New("invalid usage")
	ErrUnknownBumpKind   = errors.New("unknown bump kind")
	ErrSectionNotFound   = errors.New("section not found")
	ErrFieldNotFound     = errors.New("version field not found")
	ErrUnparsableVersion = errors.New("unparsable version line")
	ErrInvalidVersion    = errors.New("invalid version")
	ErrManifestIO        = errors.New("manifest i/o failed")
)

// Exit codes, one per error class.
const (
	ExitOK         = 0
	ExitUsage      = 1
	ExitNotFound   = 2
	ExitInvalid    = 3
	ExitUnparsable = 4
	ExitManifestIO = 5
)

// ExitCode returns the process exit code for err. Unclassified errors are
// treated as manifest I/O failures.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage), errors.Is(err, ErrUnknownBumpKind):
		return ExitUsage
	case errors.Is(err, ErrSectionNotFound), errors.Is(err, ErrFieldNotFound):
		return ExitNotFound
	case errors.Is(err, ErrInvalidVersion):
		return ExitInvalid
	case errors.Is(err, ErrUnparsableVersion):
		return ExitUnparsable
	default:
		return ExitManifestIO
	}
}
