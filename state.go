package befehl

import (
	"fmt"
	"io"
	"log/slog"
)

// State is handed to [Command.Exec]. It carries the bound values of the selected command and the
// I/O streams of the run. Use [GetValue] and [GetValues] to read values with a type.
type State struct {
	// Values holds everything bound from the input, see [Values].
	Values Values

	// Path is the space separated path of the selected command, e.g. "todo add".
	Path string

	// Standard I/O streams.
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Logger receives debug output, see [RunOptions].
	Logger *slog.Logger

	keys map[string]bool
}

// GetValue returns the first value bound to key, converted to T. When nothing was bound, for
// example an option that was not given or a flag, it returns the zero value. Example usage:
//
//	when := GetValue[string](state, "when")
//	count := GetValue[int](state, "count") // with Parser: befehl.Int
//
// GetValue panics if key is not declared on the selected command or if the bound value is not a T.
func GetValue[T any](s *State, key string) T {
	var zero T
	values := GetValues[T](s, key)
	if len(values) == 0 {
		return zero
	}
	return values[0]
}

// GetValues returns all values bound to key, converted to T. It panics under the same conditions
// as [GetValue].
func GetValues[T any](s *State, key string) []T {
	if !s.keys[key] {
		panic(fmt.Sprintf("internal error: %q is not declared on command %q", key, s.Path))
	}
	raw := s.Values[key]
	if raw == nil {
		return nil
	}
	out := make([]T, 0, len(raw))
	for _, x := range raw {
		v, ok := x.(T)
		if !ok {
			panic(fmt.Sprintf("internal error: type mismatch for %q in command %q: bound %T, requested %T", key, s.Path, x, *new(T)))
		}
		out = append(out, v)
	}
	return out
}
