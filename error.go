package dynwhere

import (
	"errors"
	"fmt"
)

// Error is returned when a fragment cannot be applied to a query
type Error struct {
	Query string
	Err   error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("While applying conditions to %s: %s", e.Query, e.Err)
}

var (
	ErrInvalidLogic      = errors.New("invalid logic operator")
	ErrInvalidComparison = errors.New("invalid comparison operator")
	ErrUnknownEngine     = errors.New("unknown database engine")
	ErrTooManyWhere      = errors.New("base query contains more than one WHERE keyword")
	ErrNilQuery          = errors.New("base query is nil")
)
