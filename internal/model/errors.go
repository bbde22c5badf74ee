package model

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure so the boundary layer can translate it
// into a transport response without inspecting messages.
type Kind int

const (
	// KindInternal is any unexpected failure; its detail must not leak to
	// callers.
	KindInternal Kind = iota
	// KindInvalidArgument is malformed or missing input, a caller error.
	KindInvalidArgument
	// KindNotFound means a referenced product does not exist.
	KindNotFound
	// KindConflict means stock is insufficient for the requested quantity.
	KindConflict
)

// Error is a tagged business error raised by the workflow and stores.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// InvalidArgumentf builds a KindInvalidArgument error.
func InvalidArgumentf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflictf builds a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// KindOf reports the Kind carried by err, or KindInternal when err is not a
// tagged business error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
