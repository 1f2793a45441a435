package j2534

import "fmt"

// messageOrDefault returns msg if present, otherwise fallback.
func messageOrDefault(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

// NotFoundError is returned when a PassThru module cannot be loaded:
// the file is missing, the architecture does not match, or one of the
// required entry points is not exported.
type NotFoundError struct {
	msg string
}

func (e *NotFoundError) Error() string {
	return messageOrDefault(e.msg, "not found")
}

// CodeError carries a nonzero status returned by a PassThru entry point.
// The raw value is preserved as-is; vendor codes are not decoded.
type CodeError struct {
	Status int32
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("unknown error (code %d)", e.Status)
}

// Utf8Error is returned when a string reported by the driver is not valid
// text up to its terminator, or is missing the terminator entirely.
type Utf8Error struct {
	msg string
}

func (e *Utf8Error) Error() string {
	return messageOrDefault(e.msg, "utf8 error")
}

// ClosedError is returned by any operation on an Interface, Device or
// Channel after it has been closed.
type ClosedError struct {
	Resource string
}

func (e *ClosedError) Error() string {
	return messageOrDefault(e.Resource, "resource") + " is closed"
}

// statusError translates a raw driver status into an error.
// Zero means success and yields nil.
func statusError(status int32) error {
	if status == 0 {
		return nil
	}
	return &CodeError{Status: status}
}
