package command

import "fmt"

// Kind classifies user-visible flow failures.
type Kind int

const (
	KindValidation Kind = iota
	KindQuotaExceeded
	KindNameCollision
	KindNotFound
)

// FlowError is a failure that ends a management flow with a short
// human-readable message shown to the invoking admin. Anything that is not a
// FlowError is treated as a remote-call failure and rendered generically at
// the outer handler.
type FlowError struct {
	Kind    Kind
	Message string
}

func (e *FlowError) Error() string { return e.Message }

// Flowf builds a FlowError with a formatted message.
func Flowf(kind Kind, format string, args ...any) *FlowError {
	return &FlowError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrDuplicateOptionName is returned by ParseSyntax when two options share a name.
var ErrDuplicateOptionName = &FlowError{
	Kind:    KindValidation,
	Message: "Can't have multiple options with the same name!",
}

// ErrMalformedKey is returned when a composite-key token cannot be decoded.
var ErrMalformedKey = &FlowError{
	Kind:    KindValidation,
	Message: "Couldn't parse command",
}
