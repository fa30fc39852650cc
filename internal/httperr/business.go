package httperr

import "errors"

// Kind classifies a business error; the HTTP layer maps it to a status code.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindDuplicate
	KindUpload
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Details []string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrValidation(code, message string, details ...string) error {
	return BusinessError{Kind: KindValidation, Code: code, Message: message, Details: details}
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrUnauthorized(code, message string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return BusinessError{Kind: KindForbidden, Code: code, Message: message}
}

func ErrDuplicate(code, message string) error {
	return BusinessError{Kind: KindDuplicate, Code: code, Message: message}
}

func ErrUpload(code, message string) error {
	return BusinessError{Kind: KindUpload, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
