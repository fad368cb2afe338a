package befehl

import "fmt"

// Values maps option keys and argument names to the values bound to them, in input order. An option
// that did not occur has no entry; a flag that occurred has an empty list. Every declared argument
// has an entry.
type Values map[string][]any

// Has reports whether key received an entry, i.e. whether an option occurred.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// First returns the first value bound to key.
func (v Values) First(key string) (any, bool) {
	if len(v[key]) == 0 {
		return nil, false
	}
	return v[key][0], true
}

// Strings returns the values bound to key formatted with [fmt.Sprint].
func (v Values) Strings(key string) []string {
	if v[key] == nil {
		return nil
	}
	out := make([]string, len(v[key]))
	for i, x := range v[key] {
		out[i] = fmt.Sprint(x)
	}
	return out
}
