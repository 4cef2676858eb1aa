package fnv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is the only failure kind of this package. Hashing itself
// never fails; only an unsupported width or an unhashable value does.
var ErrInvalidArgument = errors.New("fnv: invalid argument")

// InvalidWidthError reports a width outside the supported set.
type InvalidWidthError struct {
	Width int
	// Raw is the unparsed input when the width came from text.
	Raw string
}

func (e *InvalidWidthError) Error() string {
	supported := make([]string, 0, len(Widths()))
	for _, w := range Widths() {
		supported = append(supported, w.String())
	}
	got := fmt.Sprintf("%d", e.Width)
	if e.Raw != "" {
		got = fmt.Sprintf("%q", e.Raw)
	}
	return fmt.Sprintf("unsupported fnv width %s (want one of %s)", got, strings.Join(supported, ", "))
}

func (e *InvalidWidthError) Is(target error) bool { return target == ErrInvalidArgument }

func (e *InvalidWidthError) Unwrap() error { return ErrInvalidArgument }

// UnsupportedInputError reports a value that is neither bytes nor text.
type UnsupportedInputError struct {
	Type string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("cannot hash value of type %s", e.Type)
}

func (e *UnsupportedInputError) Is(target error) bool { return target == ErrInvalidArgument }

func (e *UnsupportedInputError) Unwrap() error { return ErrInvalidArgument }

// IsInvalidArgument reports whether err is (or wraps) an invalid-argument error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
