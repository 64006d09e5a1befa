package monkey

import (
	"errors"
	"fmt"
)

var (
	ErrTokenUnrecognized            = errors.New("token unrecognized")
	ErrIdentExpected                = errors.New("identifier expected")
	ErrAssignExpected               = errors.New("assign expected")
	ErrIntegerParsingFailed         = errors.New("integer parsing failed")
	ErrBooleanParsingFailed         = errors.New("boolean parsing failed")
	ErrGroupExpressionParsingFailed = errors.New("group expression parsing failed")
	ErrIncorrectIfStatement         = errors.New("incorrect if statement")
	ErrIncorrectFunctionDeclaration = errors.New("incorrect function declaration")
)

// ParseError carries the token the parser was looking at when Err happened.
type ParseError struct {
	Err   error
	Token Token
}

func (p ParseError) Error() string {
	return fmt.Sprintf("%s, got %s", p.Err.Error(), p.Token)
}

func (p ParseError) Unwrap() error {
	return p.Err
}
