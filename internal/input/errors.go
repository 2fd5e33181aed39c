package input

import (
	"errors"
	"fmt"

	"github.com/dshills/xul/internal/input/key"
)

// Bind and unbind errors. Their text is what the user sees.
var (
	ErrMissingMode    = errors.New("missing 'mode' as first argument")
	ErrUnknownMode    = errors.New("no mode named")
	ErrMissingKeys    = errors.New("missing 'keys' as second argument")
	ErrMissingCommand = errors.New("missing 'command', 'command_args'... as third and up arguments")
	ErrInvalidKeys    = errors.New("invalid string of keys")
)

func unknownMode(name string) error {
	return fmt.Errorf("%w '%s'", ErrUnknownMode, name)
}

// parseKeys parses a key string for bind and unbind. An empty string
// yields an empty sequence and no error.
func parseKeys(s string) (key.Sequence, error) {
	seq, err := key.ParseSequence(s)
	switch {
	case err == nil:
		return seq, nil
	case errors.Is(err, key.ErrEmptySpec):
		return nil, nil
	case errors.Is(err, key.ErrSequenceTooLong):
		return nil, fmt.Errorf("%w in '%s'", key.ErrSequenceTooLong, s)
	default:
		return nil, fmt.Errorf("%w '%s'", ErrInvalidKeys, s)
	}
}
