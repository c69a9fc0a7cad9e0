package model

import "errors"

// FormatError is returned when the input is not a $NACL key container.
// It is raised before any key derivation takes place.
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	if e.Message == "" {
		return "not a recognized key container"
	}
	return e.Message
}

// AuthenticationError is returned when the secret box does not open.
// A wrong password and a tampered container are reported identically.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string {
	return "wrong password"
}

// DecodeError is returned when the container decrypted but its payload is unusable
// (not a JSON record, malformed seed hex, wrong seed length).
type DecodeError struct {
	Field   string
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	msg := "invalid key data"
	if e.Field != "" {
		msg += " in " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsFormatError checks if error is FormatError
func IsFormatError(err error) bool {
	var target *FormatError
	return errors.As(err, &target)
}

// IsAuthenticationError checks if error is AuthenticationError
func IsAuthenticationError(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

// IsDecodeError checks if error is DecodeError
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}
