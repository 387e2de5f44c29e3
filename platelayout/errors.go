package platelayout

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader = errors.New("malformed plate header")
	ErrMalformedRow    = errors.New("malformed plate row")
	ErrTruncatedBlock  = errors.New("truncated plate block")
)

func lineError(line Line, kind error, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %w: %s (%q)", line.Number, kind, fmt.Sprintf(format, args...), line.Text)
}
