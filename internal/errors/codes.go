package errors

// Code classifies an Error
type Code string

// Error codes used across the game core
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether a caller can reasonably keep playing after an
// error with this code. Programming errors (bad arguments, broken
// preconditions) are not recoverable; storage trouble is.
func (c Code) Recoverable() bool {
	switch c {
	case CodeNotFound, CodeUnavailable, CodeDataLoss, CodeCanceled:
		return true
	default:
		return false
	}
}
