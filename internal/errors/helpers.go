package errors

import (
	"errors"
)

// find returns the outermost *Error in the chain of err
func find(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns the code of err: OK for nil, Internal for foreign errors
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := find(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of err, if any
func GetMeta(err error) map[string]interface{} {
	if e, ok := find(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the message meant for players: the outermost message
// without codes or causes
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool { return GetCode(err) == CodeNotFound }

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool { return GetCode(err) == CodeInvalidArgument }

// IsAlreadyExists reports whether err carries CodeAlreadyExists
func IsAlreadyExists(err error) bool { return GetCode(err) == CodeAlreadyExists }

// IsFailedPrecondition reports whether err carries CodeFailedPrecondition
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }

// IsAborted reports whether err carries CodeAborted
func IsAborted(err error) bool { return GetCode(err) == CodeAborted }

// IsInternal reports whether err carries CodeInternal
func IsInternal(err error) bool { return GetCode(err) == CodeInternal }

// IsUnavailable reports whether err carries CodeUnavailable
func IsUnavailable(err error) bool { return GetCode(err) == CodeUnavailable }

// IsDataLoss reports whether err carries CodeDataLoss
func IsDataLoss(err error) bool { return GetCode(err) == CodeDataLoss }
