package store

// Outcome is the result of a mutating operation: either Success with Data,
// or a failure with a human-readable Message.
type Outcome[T any] struct {
	Success bool
	Data    T
	Message string
}

func succeeded[T any](data T) Outcome[T] {
	return Outcome[T]{Success: true, Data: data}
}

func failed[T any](message string) Outcome[T] {
	return Outcome[T]{Message: message}
}
