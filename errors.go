package main

import (
	"fmt"
	"strings"
	"text/scanner"

	multierror "github.com/hashicorp/go-multierror"
)

// A SyntaxError stops processing of the input it came from.
// It is implemented by the lexer and parser errors below.
type SyntaxError interface {
	error
	syntaxError()
}

// A TypeError is reported by the type checker.
// Unlike a SyntaxError it is an ordinary result; callers report it and move on.
type TypeError interface {
	error
	typeError()
}

// UnknownCharacterError is returned by the lexer for a character outside the language.
type UnknownCharacterError struct {
	Char rune
	Pos  scanner.Position
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("%s: unknown character %q", posString(e.Pos), e.Char)
}

// UnexpectedTokenError is returned by the parser when the current token
// is not of a kind the grammar allows at that point.
// Expected usually holds a single kind; at the start of an operand
// it lists every kind that can begin one.
type UnexpectedTokenError struct {
	Expected []TokenKind
	Actual   Token
}

func (e *UnexpectedTokenError) Error() string {
	want := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		want[i] = k.quoted()
	}
	if len(want) == 1 {
		return fmt.Sprintf("%s: expected %s, found %s", posString(e.Actual.Pos), want[0], e.Actual)
	}
	return fmt.Sprintf("%s: expected one of %s, found %s", posString(e.Actual.Pos), strings.Join(want, " "), e.Actual)
}

// MissingIdentifierError is returned when "let" is not followed by a name.
type MissingIdentifierError struct {
	Actual Token
}

func (e *MissingIdentifierError) Error() string {
	return fmt.Sprintf("%s: expected identifier after let, found %s", posString(e.Actual.Pos), e.Actual)
}

type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable %s", e.Name)
}

type OperandTypeMismatchError struct {
	Op          Op
	Left, Right Type
}

func (e *OperandTypeMismatchError) Error() string {
	return fmt.Sprintf("operands to %s must be %s, found %s and %s", e.Op, IntT{}, e.Left, e.Right)
}

type UnsupportedOperatorError struct {
	Op Op
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operator %q", string(e.Op))
}

func (*UnknownCharacterError) syntaxError()  {}
func (*UnexpectedTokenError) syntaxError()   {}
func (*MissingIdentifierError) syntaxError() {}

func (*UndefinedVariableError) typeError()   {}
func (*OperandTypeMismatchError) typeError() {}
func (*UnsupportedOperatorError) typeError() {}

func posString(pos scanner.Position) string {
	if !pos.IsValid() {
		return "<input>"
	}
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// aggregates multiple errors.
// strips out nils (may modify the input list).
func multiError(errors ...error) error {
	j := 0
	for i := range errors {
		if errors[i] != nil {
			if i != j {
				errors[j] = errors[i]
			}
			j++
		}
	}
	switch j {
	case 0:
		return nil
	case 1:
		return errors[0]
	default:
		merr := &multierror.Error{
			Errors:      errors[:j],
			ErrorFormat: joinErrors,
		}
		return merr
	}
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
