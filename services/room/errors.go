package room

import "fmt"

// ErrNotFound signals the room does not exist.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("room %s not found", e.ID)
}

// ErrInvalidRoom signals a room payload that fails validation.
type ErrInvalidRoom struct {
	Reason string
}

func (e *ErrInvalidRoom) Error() string {
	return "invalid room: " + e.Reason
}
