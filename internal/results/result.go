// Package results defines the two-variant outcome used across the fetch
// pipeline: a fetch either succeeded with a value or failed with a message.
//
// Result is sealed: only Success and Failure implement it. Consumers inspect it
// through Match or Fold, which take one callback per variant, so a new variant
// would break every consumer at compile time instead of falling through a
// default branch.
package results

import "github.com/dmitrijs2005/coinviewer/internal/common"

// Result is the outcome of a fetch producing a T.
type Result[T any] interface {
	// Match calls exactly one of the callbacks depending on the active variant.
	Match(onSuccess func(data T), onFailure func(message string))

	sealed()
}

// Success is the variant for a fetch that produced usable data.
type Success[T any] struct {
	Data T
}

// Failure is the variant for a fetch that produced nothing usable.
type Failure[T any] struct {
	Message string
}

func (s Success[T]) Match(onSuccess func(T), _ func(string)) { onSuccess(s.Data) }
func (Success[T]) sealed()                                   {}

func (f Failure[T]) Match(_ func(T), onFailure func(string)) { onFailure(f.Message) }
func (Failure[T]) sealed()                                   {}

// NewSuccess wraps data into a Success.
func NewSuccess[T any](data T) Result[T] {
	return Success[T]{Data: data}
}

// NewFailure wraps message into a Failure.
func NewFailure[T any](message string) Result[T] {
	return Failure[T]{Message: message}
}

// Failed returns a Failure carrying the generic error message.
func Failed[T any]() Result[T] {
	return Failure[T]{Message: common.ErrorMessage}
}

// Fold maps r to a single value of type R, one function per variant.
func Fold[T, R any](r Result[T], onSuccess func(data T) R, onFailure func(message string) R) R {
	var out R
	r.Match(
		func(data T) { out = onSuccess(data) },
		func(message string) { out = onFailure(message) },
	)
	return out
}

// IsSuccess reports whether r is the Success variant.
func IsSuccess[T any](r Result[T]) bool {
	return Fold(r,
		func(T) bool { return true },
		func(string) bool { return false },
	)
}
