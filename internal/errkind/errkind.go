// Package errkind defines the closed error-classification taxonomy shared
// across the module. Every error returned by a public API is taggable with
// one of these kinds so that callers can use errors.As to branch on the
// failure class programmatically instead of matching error strings.
package errkind

import "fmt"

// Kind is a short, static tag identifying why an operation failed.
type Kind int8

const (
	// OutOfSpec means the input violates the parquet format itself (a
	// malformed footer, an impossible level, a corrupt page header).
	OutOfSpec Kind = iota
	// FeatureNotSupported means the input is well-formed parquet but uses a
	// feature this implementation does not (yet) implement.
	FeatureNotSupported
	// InvalidParameter means the caller passed an argument the API rejects,
	// independent of any file content.
	InvalidParameter
	// IO means the underlying io.Reader/io.Writer/io.ReaderAt failed.
	IO
	// Overflow means a value did not fit the type it was decoded into.
	Overflow
	// External means the failure originated in a dependency whose errors this
	// package cannot classify more precisely.
	External
)

func (k Kind) String() string {
	switch k {
	case OutOfSpec:
		return "out-of-spec"
	case FeatureNotSupported:
		return "feature-not-supported"
	case InvalidParameter:
		return "invalid-parameter"
	case IO:
		return "io"
	case Overflow:
		return "overflow"
	case External:
		return "external"
	default:
		return "unknown"
	}
}

// Error pairs a Kind with the underlying error it classifies. Unwrap exposes
// the wrapped error so that errors.Is/errors.As continue to work against
// sentinel values defined by the packages that produce these errors.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return fmt.Sprintf("[%s] %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a Kind-tagged error from a message alone.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is like New but formats its message, matching fmt.Errorf.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap tags err with kind, preserving err for errors.Is/errors.As.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Wrapf is like Wrap but attaches a message alongside the wrapped error.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// Of reports the Kind tagged on err, or External if err was never tagged.
func Of(err error) Kind {
	var e *Error
	for err != nil {
		if k, ok := err.(*Error); ok {
			e = k
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	if e == nil {
		return External
	}
	return e.Kind
}
