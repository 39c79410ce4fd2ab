package model

import (
	"errors"
)

// Kind classifies calculation errors so callers can branch without string matching.
type Kind int

const (
	// KindUnknown is the zero value for errors that carry no kind.
	KindUnknown Kind = iota
	// KindInvalidArgument marks a caller contract violation, e.g. an adoption rate outside [0,1].
	KindInvalidArgument
	// KindConfiguration marks a misconfigured parameter set.
	KindConfiguration
	// KindIO marks a failed write of exported output.
	KindIO
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid_argument"
	case KindConfiguration:
		return "configuration"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidAdoptionRate is returned when an adoption rate is not in [0,1].
	ErrInvalidAdoptionRate = errors.New("adoption rate must be in [0,1]")
	// ErrInvalidEffectSize is returned when an effect size is NaN or infinite.
	ErrInvalidEffectSize = errors.New("effect size must be finite")
	// ErrInvalidPrevalence is returned when a prevalence is not in [0,1].
	ErrInvalidPrevalence = errors.New("prevalence must be in [0,1]")
	// ErrZeroBaseline is returned when the treatment distribution yields no baseline courses.
	ErrZeroBaseline = errors.New("baseline total courses must be positive")
	// ErrInvalidParameters is returned when a parameter set fails validation.
	ErrInvalidParameters = errors.New("invalid parameter set")
)

// Error is a classified error raised by the calculator or its collaborators.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// NewError wraps err with a kind and the operation that failed.
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
