package events

import "errors"

// ErrNotFound indicates the event does not exist.
var ErrNotFound = errors.New("event not found")

// ErrDuplicateName indicates an event with the same name already exists.
var ErrDuplicateName = errors.New("event name already exists")

// ErrFull indicates the event has reached its participant cap.
var ErrFull = errors.New("event is full")
