package simpleopts

import (
	"errors"
	"fmt"
)

// Configuration errors returned by the declaration methods
var (
	ErrOptionRedeclared  = errors.New("option redeclared")
	ErrInvalidOptionName = errors.New("option name must start with \"-\"")
	ErrInvalidAlias      = errors.New("alias must start with \"--\"")
	ErrNotDeclared       = errors.New("option is not declared")
)

// Parse errors, available as ParseError.Err
var (
	ErrDuplicateOption  = errors.New("duplicate entry for option")
	ErrMissingParameter = errors.New("option has no parameter")
	ErrInvalidOption    = errors.New("invalid option")
	ErrNoArguments      = errors.New("no arguments entered")
)

// ParseError is returned by Parser.Parse. Use errors.Is with one of the
// parse error sentinels to find out the failure kind
type ParseError struct {
	Err error
	// Token is the user input the failure is attributed to.
	// Empty for ErrNoArguments
	Token string
	// Next is the option-like argument found in place of the parameter
	Next string
}

func (e *ParseError) Error() string {
	switch {
	case e.Token == "":
		return e.Err.Error()
	case errors.Is(e.Err, ErrMissingParameter) && e.Next != "":
		return fmt.Sprintf("option %s does not have corresponding parameter: got %s", e.Token, e.Next)
	case errors.Is(e.Err, ErrMissingParameter):
		return fmt.Sprintf("option %s has no parameter", e.Token)
	default:
		return fmt.Sprintf("%s %s", e.Err.Error(), e.Token)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
