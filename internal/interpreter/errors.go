package interpreter

import (
	"errors"
	"strings"

	"toyrobot/internal/model"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("parse error")

const (
	msgPlaceGroup   = "place arguments must be supplied as a single comma-separated group"
	msgPlaceFields  = "place command requires exactly 3 comma-separated fields: x,y,FACING"
	msgPlaceInteger = "x and y must be integers"
)

var (
	msgPlaceFacing = "facing must be one of " + model.FacingNames(", ")
	msgSupported   = "supported commands: " + strings.Join(verbNames(), ", ")
)

// ParseError describes why a raw command line could not be interpreted.
type ParseError struct {
	Line int // 1-based index within the batch
	Text string
	Msg  string
	Err  error // underlying cause, if any
}

func (e *ParseError) Error() string {
	return e.Msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}
