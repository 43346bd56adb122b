// Package codecerr defines the error type shared by the byte vector and
// codec layers: a description plus an ordered context stack.
package codecerr

import (
	"fmt"
	"strings"
)

// Error describes a codec or byte-vector failure. It is immutable: Push
// returns a new Error rather than mutating the receiver, so a single Error
// value can be shared freely across goroutines and across combinator
// boundaries without the usual aliasing worries of a mutable error chain.
type Error struct {
	description string
	context     []string // outermost first
}

// New returns an Error with no context.
func New(description string) *Error {
	return &Error{description: description}
}

// Newf is a convenience wrapper around fmt.Sprintf + New.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Push returns a new Error with label prepended to the context stack, so
// that label renders as the outermost segment of the path.
func (e *Error) Push(label string) *Error {
	ctx := make([]string, 0, len(e.context)+1)
	ctx = append(ctx, label)
	ctx = append(ctx, e.context...)
	return &Error{description: e.description, context: ctx}
}

// Description returns the bare description, with no context prefix.
func (e *Error) Description() string {
	return e.description
}

// Error implements the error interface, rendering "ctx0/ctx1/...: description"
// when context is present, or the bare description otherwise.
func (e *Error) Error() string {
	if len(e.context) == 0 {
		return e.description
	}
	var b strings.Builder
	for i, c := range e.context {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(c)
	}
	b.WriteString(": ")
	b.WriteString(e.description)
	return b.String()
}
