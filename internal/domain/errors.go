package domain

// Error is a typed domain error carrying a stable code for boundary-layer
// translation.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// ErrLogNotFound is returned when a log lookup by id matches no record.
var ErrLogNotFound = &Error{
	Code:    "LOG_NOT_FOUND",
	Status:  404,
	Message: "log not found",
}
