package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsInvalidDiceExpression checks if an error is an invalid dice expression error
func IsInvalidDiceExpression(err error) bool {
	return GetCode(err) == CodeInvalidDiceExpression
}

// IsNotStarted checks if an error is a not started error
func IsNotStarted(err error) bool {
	return GetCode(err) == CodeNotStarted
}

// IsContentFormat checks if an error is a content format error
func IsContentFormat(err error) bool {
	return GetCode(err) == CodeContentFormat
}

// IsSnapshotFormat checks if an error is a snapshot format error
func IsSnapshotFormat(err error) bool {
	return GetCode(err) == CodeSnapshotFormat
}

// IsIO checks if an error is an I/O error
func IsIO(err error) bool {
	return GetCode(err) == CodeIO
}
