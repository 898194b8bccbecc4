package errs

import "errors"

// Error kinds surfaced by the pipeline. Callers match them with errors.Is;
// the wrapped message carries the underlying cause.
var (
	ErrMissingExtension = errors.New("no file extension")
	ErrFormat           = errors.New("invalid midi file")
	ErrArchive          = errors.New("could not build archive")
	ErrInvalidAmount    = errors.New("invalid velocity reduction")
)

// IsInputError reports whether err was caused by what the user supplied
// rather than by the process itself.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingExtension) ||
		errors.Is(err, ErrFormat) ||
		errors.Is(err, ErrInvalidAmount)
}
