package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange    = errors.New("argument is out of range")
	ErrInvalidPlayer = errors.New("invalid player")
	ErrNoPlayers     = errors.New("at least two players are required")
	ErrInputClosed   = errors.New("input is closed")
	ErrLineTooLong   = errors.New("input line is too long")
)

// ArgumentError - describes a precondition violation: which parameter was wrong and which bound it broke.
type ArgumentError struct {
	Param  string
	Value  int
	Reason string
}

func (that *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s = %d: %s", ErrOutOfRange, that.Param, that.Value, that.Reason)
}

func (that *ArgumentError) Unwrap() error {
	return ErrOutOfRange
}

// GreaterThanOrEqualTo - returns an ArgumentError when value < comparand.
func GreaterThanOrEqualTo(value, comparand int, param string) error {
	if value < comparand {
		return &ArgumentError{
			Param:  param,
			Value:  value,
			Reason: fmt.Sprintf("value has to be greater than or equal to %d", comparand),
		}
	}

	return nil
}

// LessThanOrEqualTo - returns an ArgumentError when value > comparand.
func LessThanOrEqualTo(value, comparand int, param string) error {
	if value > comparand {
		return &ArgumentError{
			Param:  param,
			Value:  value,
			Reason: fmt.Sprintf("value has to be less than or equal to %d", comparand),
		}
	}

	return nil
}

// LessThan - returns an ArgumentError when value >= comparand.
func LessThan(value, comparand int, param string) error {
	if value >= comparand {
		return &ArgumentError{
			Param:  param,
			Value:  value,
			Reason: fmt.Sprintf("value has to be less than %d", comparand),
		}
	}

	return nil
}

// ParamName - returns the offending parameter of an ArgumentError wrapped anywhere in err.
func ParamName(err error) string {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr.Param
	}

	return ""
}
