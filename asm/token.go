package asm

import (
	"fmt"
)

// Kind is the lexical class of a token.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	TOKEN_OP         = Kind(0) // op
	TOKEN_ARG        = Kind(1) // arg
	TOKEN_LABEL_REF  = Kind(2) // labelref
	TOKEN_LABEL_DECL = Kind(3) // labeldecl
	TOKEN_NEWLINE    = Kind(4) // newline
	TOKEN_EXPR       = Kind(5) // expr
)

// Token is a single lexeme.
type Token struct {
	Kind   Kind
	Text   string // Mnemonic, label name, or expression text.
	Value  int    // Address value of a TOKEN_ARG.
	LineNo int    // Source line, 1 based.
}

// Resolved returns true if the token may be passed to the parser.
func (tok Token) Resolved() bool {
	switch tok.Kind {
	case TOKEN_LABEL_REF, TOKEN_LABEL_DECL, TOKEN_EXPR:
		return false
	}
	return true
}

func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_ARG:
		return fmt.Sprintf("%v(%d)", tok.Kind, tok.Value)
	case TOKEN_NEWLINE:
		return tok.Kind.String()
	default:
		return fmt.Sprintf("%v(%v)", tok.Kind, tok.Text)
	}
}
