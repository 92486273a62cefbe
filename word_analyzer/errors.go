package word_analyzer

import (
	"github.com/pkg/errors"
)

// Kind classifies the failures a query can report
type Kind int

const (
	// Unknown is reported by KindOf for errors not produced by this package
	Unknown Kind = iota
	// MissingInput means no file reference was supplied
	MissingInput
	// FileNotFound means the file reference does not resolve to a file
	FileNotFound
	// IO means reading the file failed
	IO
)

func (k Kind) String() string {
	switch k {
	case MissingInput:
		return "No file specified"
	case FileNotFound:
		return "The file does not exist"
	case IO:
		return "IO Exception"
	default:
		return "unknown error"
	}
}

// Error is returned by every failing query
type Error struct {
	Kind  Kind
	cause error
}

var (
	ErrMissingInput = &Error{Kind: MissingInput}
	ErrFileNotFound = &Error{Kind: FileNotFound}
	ErrIO           = &Error{Kind: IO}
)

func (e *Error) Error() string {
	return e.Kind.String()
}

// Unwrap returns the underlying failure, if any
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches any *Error of the same kind, so callers can compare against
// ErrMissingInput, ErrFileNotFound and ErrIO.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of err, or Unknown
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func missingInputError() error {
	return errors.WithStack(&Error{Kind: MissingInput})
}

func fileNotFoundError(cause error) error {
	return errors.WithStack(&Error{Kind: FileNotFound, cause: cause})
}

func ioError(cause error) error {
	return errors.WithStack(&Error{Kind: IO, cause: cause})
}
