package gloss

import (
	"errors"
	"fmt"
)

var (
	errUnknownName = errors.New("unknown color name")
	errHexLength   = errors.New("hex colors must be #rgb or #rrggbb")
)

// ColorParseError is returned when a color literal can't be parsed. Callers
// can usually continue with the terminal default color
type ColorParseError struct {
	Value string
	Err   error
}

func (e *ColorParseError) Error() string {
	return fmt.Sprintf("gloss: invalid color %q: %v", e.Value, e.Err)
}

func (e *ColorParseError) Unwrap() error {
	return e.Err
}
