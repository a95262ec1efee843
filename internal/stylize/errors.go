package stylize

import (
	"errors"
	"fmt"

	"github.com/ironsheep/image-transform/internal/luminance"
)

var (
	// ErrInvalidParameter is matched by every *ParamError.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyInput is returned for a nil buffer or one with no samples.
	ErrEmptyInput = luminance.ErrEmpty
)

// ParamError describes an option value outside its documented range.
//
// Transforms validate all options before touching any pixel, so a ParamError
// always means no output was produced.
type ParamError struct {
	// Name is the option name as used on the command line (e.g. "dot-size").
	Name string

	// Value is the rejected value.
	Value any

	// Reason states the accepted range.
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Name, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidParameter) true for any ParamError.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func checkInput(buf *luminance.Buffer) error {
	if buf.Empty() {
		return ErrEmptyInput
	}
	return nil
}
