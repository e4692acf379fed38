package directory

import "errors"

const (
	StatusOK       = 200
	StatusNotFound = 404
)

const (
	ErrCodeContactNotFound = "CONTACT_NOT_FOUND"
	ErrCodeNoPhoneNumber   = "NO_PHONE_NUMBER"
	ErrCodeTimeout         = "TIMEOUT"
	ErrCodeServerError     = "SERVER_ERROR"
)

var (
	ErrContactNotFound = errors.New(ErrCodeContactNotFound)
	ErrNoPhoneNumber   = errors.New(ErrCodeNoPhoneNumber)
	ErrTimeout         = errors.New(ErrCodeTimeout)
	ErrServerError     = errors.New(ErrCodeServerError)
)

var statusErrorMap = map[int]error{
	StatusNotFound: ErrContactNotFound,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}
