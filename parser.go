package befehl

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Parser converts a raw token into a value. A non-nil error rejects the token; its message is shown
// to the user as is. Parsers are stateless and may be shared between declarations.
type Parser func(token string) (any, error)

// parse applies p to token. Without a parser the raw token passes through unchanged.
func (p Parser) parse(token string) (any, error) {
	if p == nil {
		return token, nil
	}
	return p(token)
}

// Bool accepts true/false, yes/no, y/n, on/off and 1/0 in any case.
func Bool(token string) (any, error) {
	switch strings.ToLower(token) {
	case "true", "yes", "y", "on", "1":
		return true, nil
	case "false", "no", "n", "off", "0":
		return false, nil
	}
	return nil, fmt.Errorf("value %q is not a boolean", token)
}

// Int parses a base 10 integer.
func Int(token string) (any, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return nil, fmt.Errorf("value %q is not an integer", token)
	}
	return v, nil
}

// Float parses a 64-bit floating point number.
func Float(token string) (any, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return nil, fmt.Errorf("value %q is not a number", token)
	}
	return v, nil
}

// Path accepts any token that names an existing filesystem entry.
func Path(token string) (any, error) {
	if _, err := os.Stat(token); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("path %q does not exist", token)
		}
		return nil, fmt.Errorf("path %q: %w", token, err)
	}
	return token, nil
}

// File accepts a token that names an existing regular file.
func File(token string) (any, error) {
	if _, err := Path(token); err != nil {
		return nil, err
	}
	info, err := os.Stat(token)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", token, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("path %q is not a file", token)
	}
	return token, nil
}

// Dir accepts a token that names an existing directory.
func Dir(token string) (any, error) {
	if _, err := Path(token); err != nil {
		return nil, err
	}
	info, err := os.Stat(token)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", token, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", token)
	}
	return token, nil
}

// OneOf accepts exactly the given values.
func OneOf(values ...string) Parser {
	allowed := slices.Clone(values)
	return func(token string) (any, error) {
		if slices.Contains(allowed, token) {
			return token, nil
		}
		return nil, fmt.Errorf("value %q is not one of %s", token, quoteAll(allowed))
	}
}

// Glob accepts tokens matching pattern. Patterns use doublestar syntax, so "**" crosses directory
// boundaries. The token is not required to exist on disk. Glob panics if pattern is malformed.
func Glob(pattern string) Parser {
	if !doublestar.ValidatePattern(pattern) {
		panic(fmt.Sprintf("befehl: invalid glob pattern %q", pattern))
	}
	return func(token string) (any, error) {
		ok, err := doublestar.Match(pattern, token)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", token, err)
		}
		if !ok {
			return nil, fmt.Errorf("value %q does not match pattern %q", token, pattern)
		}
		return token, nil
	}
}

// Regex accepts tokens that match expr as a whole. Regex panics if expr does not compile.
func Regex(expr string) Parser {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)
	return func(token string) (any, error) {
		if !re.MatchString(token) {
			return nil, fmt.Errorf("value %q does not match pattern %q", token, expr)
		}
		return token, nil
	}
}

// Chain runs first, then hands the string form of its value to second. The chain stops at the first
// failure.
//
//	befehl.Chain(befehl.Float, befehl.Int) // "1" -> 1, "1.5" -> error
func Chain(first, second Parser) Parser {
	return func(token string) (any, error) {
		v, err := first.parse(token)
		if err != nil {
			return nil, err
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		return second.parse(s)
	}
}
