package asm

import (
	"iter"
	"log"
	"maps"

	"github.com/ezrec/lmc/internal"
)

// Resolver replaces label references and expressions with addresses.
type Resolver struct {
	Verbose   bool           // If set, logs each label binding.
	Strict    bool           // If set, duplicate label declarations are an error.
	Label     map[string]int // Map of labels to addresses, rebuilt by Resolve.
	Predefine map[string]int // Names available to expressions.
}

// Resolve resolves tokens with a default Resolver.
func Resolve(tokens []Token) (resolved []Token, err error) {
	rs := &Resolver{}
	return rs.Resolve(tokens)
}

// Resolve binds every label declaration to the address of the instruction
// that follows it, then drops the declarations and rewrites label
// references and expressions as TOKEN_ARG.
func (rs *Resolver) Resolve(tokens []Token) (resolved []Token, err error) {
	err = rs.declare(tokens)
	if err != nil {
		return
	}

	resolved = make([]Token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Kind {
		case TOKEN_LABEL_DECL:
			continue
		case TOKEN_LABEL_REF:
			addr, ok := rs.Label[tok.Text]
			if !ok {
				err = &ErrSyntax{LineNo: tok.LineNo, Err: ErrUndeclaredLabel(tok.Text)}
				return
			}
			tok = Token{Kind: TOKEN_ARG, Value: addr, LineNo: tok.LineNo}
		case TOKEN_EXPR:
			var value int
			value, err = evalExpr(tok.Text, rs.names())
			if err != nil {
				err = &ErrSyntax{LineNo: tok.LineNo, Err: err}
				return
			}
			tok = Token{Kind: TOKEN_ARG, Value: value, LineNo: tok.LineNo}
		}
		resolved = append(resolved, tok)
	}

	return
}

// declare builds the label table. The count of TOKEN_OP seen so far is the
// address of the next instruction.
func (rs *Resolver) declare(tokens []Token) (err error) {
	if rs.Label == nil {
		rs.Label = make(map[string]int, 16)
	}
	clear(rs.Label)

	count := 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TOKEN_OP:
			count++
		case TOKEN_LABEL_DECL:
			_, ok := rs.Label[tok.Text]
			if ok && rs.Strict {
				err = &ErrSyntax{LineNo: tok.LineNo, Err: ErrLabelDuplicate}
				return
			}
			if rs.Verbose {
				log.Printf("%v: %v = %02d", tok.LineNo, tok.Text, count)
			}
			rs.Label[tok.Text] = count
		}
	}

	return
}

// names lists predefines, then labels.
func (rs *Resolver) names() iter.Seq2[string, int] {
	return internal.Concat2(maps.All(rs.Predefine), maps.All(rs.Label))
}
