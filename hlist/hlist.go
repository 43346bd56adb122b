// Package hlist implements a heterogeneous, compile-time-typed cons list:
// either Nil or a Head/Tail pair whose Tail is itself such a list. It exists
// so the codec package can compose a sequence of codecs with distinct value
// types into one codec whose value is a typed product, without boxing or
// runtime type-switching — the static Go type of a Cons chain already is
// the tuple shape.
package hlist

// Nil is the empty heterogeneous list.
type Nil struct{}

// Cons is a non-empty heterogeneous list: a Head of type H followed by a
// Tail, itself an hlist (typically another Cons or Nil).
type Cons[H any, T any] struct {
	Head H
	Tail T
}

// New builds a Cons from a head value and a tail list.
func New[H any, T any](head H, tail T) Cons[H, T] {
	return Cons[H, T]{Head: head, Tail: tail}
}
