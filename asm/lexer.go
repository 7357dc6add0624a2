package asm

import (
	"strconv"
)

const (
	EOF_SENTINEL   = '\x04' // Appended by the caller to terminate input.
	COMMENT_MARKER = ';'    // Comment to end of line.
	LABEL_PREFIX   = '\''   // Label reference, 'name.
	LABEL_SUFFIX   = ':'    // Label declaration, name:.
	EXPR_PREFIX    = "$("   // Expression, $(...).
	STALL_LIMIT    = 100    // Iterations without a new token before giving up.
)

// lexer holds the scanning state over the source.
type lexer struct {
	input  string
	pos    int
	lineNo int
	tokens []Token
	done   bool
}

// recognizer consumes input at the current position, and reports if it did.
type recognizer func(lx *lexer) (ok bool, err error)

// recognizers in priority order.
var recognizers = []recognizer{
	(*lexer).eof,
	(*lexer).newline,
	(*lexer).whitespace,
	(*lexer).comment,
	(*lexer).labelDecl,
	(*lexer).op,
	(*lexer).arg,
	(*lexer).labelRef,
	(*lexer).expr,
}

// Lex converts source text into tokens. The source must be terminated by
// EOF_SENTINEL; everything after the sentinel is ignored.
func Lex(source string) (tokens []Token, err error) {
	lx := &lexer{input: source, lineNo: 1}

	stalled := 0
	for !lx.done {
		count := len(lx.tokens)

		err = lx.step()
		if err != nil {
			err = &ErrSyntax{LineNo: lx.lineNo, Err: err}
			return
		}

		if len(lx.tokens) == count {
			stalled++
		} else {
			stalled = 0
		}

		if stalled >= STALL_LIMIT {
			err = &ErrSyntax{LineNo: lx.lineNo, Err: ErrUnrecognizedToken}
			return
		}
	}

	tokens = lx.tokens
	return
}

// step applies the first recognizer that accepts the current position.
func (lx *lexer) step() (err error) {
	for _, recognize := range recognizers {
		var ok bool
		ok, err = recognize(lx)
		if ok || err != nil {
			return
		}
	}

	return
}

func (lx *lexer) peek() (ch byte, ok bool) {
	if lx.pos >= len(lx.input) {
		return
	}

	return lx.input[lx.pos], true
}

func (lx *lexer) emit(tok Token) {
	tok.LineNo = lx.lineNo
	lx.tokens = append(lx.tokens, tok)
}

// span returns the length of the run at pos matching accept.
func (lx *lexer) span(pos int, accept func(ch byte) bool) (n int) {
	for pos+n < len(lx.input) && accept(lx.input[pos+n]) {
		n++
	}
	return
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func (lx *lexer) eof() (ok bool, err error) {
	ch, _ := lx.peek()
	if ch == EOF_SENTINEL {
		lx.pos = len(lx.input)
		lx.done = true
		ok = true
	}
	return
}

func (lx *lexer) newline() (ok bool, err error) {
	ch, _ := lx.peek()
	if ch == '\n' {
		lx.emit(Token{Kind: TOKEN_NEWLINE})
		lx.pos++
		lx.lineNo++
		ok = true
	}
	return
}

func (lx *lexer) whitespace() (ok bool, err error) {
	n := lx.span(lx.pos, isSpace)
	lx.pos += n
	ok = n > 0
	return
}

func (lx *lexer) comment() (ok bool, err error) {
	ch, _ := lx.peek()
	if ch != COMMENT_MARKER {
		return
	}

	n := lx.span(lx.pos, func(ch byte) bool { return ch != '\n' && ch != EOF_SENTINEL })
	lx.pos += n
	ok = true
	return
}

func (lx *lexer) labelDecl() (ok bool, err error) {
	n := lx.span(lx.pos, isAlpha)
	if n == 0 || lx.pos+n >= len(lx.input) || lx.input[lx.pos+n] != LABEL_SUFFIX {
		return
	}

	lx.emit(Token{Kind: TOKEN_LABEL_DECL, Text: lx.input[lx.pos : lx.pos+n]})
	lx.pos += n + 1
	ok = true
	return
}

func (lx *lexer) op() (ok bool, err error) {
	n := lx.span(lx.pos, isAlpha)
	if n == 0 {
		return
	}

	lx.emit(Token{Kind: TOKEN_OP, Text: lx.input[lx.pos : lx.pos+n]})
	lx.pos += n
	ok = true
	return
}

func (lx *lexer) arg() (ok bool, err error) {
	n := lx.span(lx.pos, isDigit)
	if n == 0 {
		return
	}

	text := lx.input[lx.pos : lx.pos+n]
	value, err := strconv.Atoi(text)
	if err != nil {
		err = ErrParseNumber(text)
		return
	}

	lx.emit(Token{Kind: TOKEN_ARG, Value: value})
	lx.pos += n
	ok = true
	return
}

func (lx *lexer) labelRef() (ok bool, err error) {
	ch, _ := lx.peek()
	if ch != LABEL_PREFIX {
		return
	}

	n := lx.span(lx.pos+1, isAlpha)
	if n == 0 {
		return
	}

	lx.emit(Token{Kind: TOKEN_LABEL_REF, Text: lx.input[lx.pos+1 : lx.pos+1+n]})
	lx.pos += n + 1
	ok = true
	return
}

// expr recognizes $(...) with balanced parenthesis on a single line.
func (lx *lexer) expr() (ok bool, err error) {
	start := lx.pos + len(EXPR_PREFIX)
	if start > len(lx.input) || lx.input[lx.pos:start] != EXPR_PREFIX {
		return
	}

	depth := 1
	for end := start; end < len(lx.input); end++ {
		switch lx.input[end] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				lx.emit(Token{Kind: TOKEN_EXPR, Text: lx.input[start:end]})
				lx.pos = end + 1
				ok = true
				return
			}
		case '\n', EOF_SENTINEL:
			return
		}
	}

	return
}
