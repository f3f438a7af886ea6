package hantok

import "errors"

var (
	// ErrNilContext is returned by context-aware entry points given a nil
	// context.Context.
	ErrNilContext = errors.New("hantok: ctx is nil")
)
