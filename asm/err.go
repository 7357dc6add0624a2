package asm

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Lexer errors
	ErrUnrecognizedToken = errors.New(f("unrecognized token"))

	// Resolver errors
	ErrLabelDuplicate = errors.New(f("label duplicated"))

	// Parser errors
	ErrNoArgumentPassedToOp    = errors.New(f("no argument passed to instruction"))
	ErrUnexpectedArgPassedToOp = errors.New(f("unexpected argument passed to instruction"))
	ErrUnexpectedEOF           = errors.New(f("unexpected end of input, missing trailing newline"))
	ErrNoArgNewlineOrComment   = errors.New(f("expected an argument, newline, or comment"))
	ErrTokenUnresolved         = errors.New(f("unresolved label token"))
)

type ErrUndeclaredLabel string

func (err ErrUndeclaredLabel) Error() string {
	return f("use of undeclared label %v", string(err))
}

type ErrInstructionNotRecognised string

func (err ErrInstructionNotRecognised) Error() string {
	return f("instruction %v not recognised", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	if len(err.Line) == 0 {
		return f("line %d %v", err.LineNo, err.Err)
	}
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
