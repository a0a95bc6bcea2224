package apperr

import "errors"

// Kind classifies an operation failure. External-side-effect failures are
// deliberately absent: they are logged by the dispatch worker and never
// surface to callers.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindAuthorization
	KindInvalidState
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func Authorization(code, message string) *Error {
	return &Error{Kind: KindAuthorization, Code: code, Message: message}
}

func InvalidState(code, message string) *Error {
	return &Error{Kind: KindInvalidState, Code: code, Message: message}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}

// IsCode reports whether err carries the given error code.
func IsCode(err error, code string) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Code == code
}
