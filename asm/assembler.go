// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/lmc/cpu"
)

// Assembler assembles Little Man Computer source into a program.
type Assembler struct {
	Verbose bool           // If set, verbosely logs the assembler actions.
	Strict  bool           // If set, duplicate labels are rejected.
	Label   map[string]int // Map of labels to addresses from the last Parse.

	predefine map[string]int // Predefines for expressions.
}

// Predefine defines a new name, or redefines an existing name, for use in
// $(...) expressions.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// Parse assembles an input stream into a Program. As with Process, the
// last instruction must be terminated by a newline.
func (asm *Assembler) Parse(input io.Reader) (prog *cpu.Program, err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	source := string(data)

	defer func() {
		var syntax *ErrSyntax
		if errors.As(err, &syntax) && len(syntax.Line) == 0 {
			syntax.Line = sourceLine(source, syntax.LineNo)
		}
	}()

	tokens, err := Lex(source + string(EOF_SENTINEL))
	if err != nil {
		return
	}

	if asm.Verbose {
		log.Printf("asm: %v tokens", len(tokens))
	}

	rs := &Resolver{
		Verbose:   asm.Verbose,
		Strict:    asm.Strict,
		Predefine: asm.predefine,
	}
	tokens, err = rs.Resolve(tokens)
	asm.Label = rs.Label
	if err != nil {
		return
	}

	prog, err = ParseProgram(tokens)
	if err != nil {
		prog = nil
		return
	}

	if asm.Verbose {
		for _, op := range prog.Opcodes {
			log.Printf("%v: %02d %03d %v", op.LineNo, op.Addr, op.Instruction.Encode(), op.Instruction)
		}
	}

	return
}

// sourceLine returns the trimmed text of line lineno, 1 based.
func sourceLine(source string, lineno int) string {
	lines := strings.Split(source, "\n")
	if lineno < 1 || lineno > len(lines) {
		return ""
	}

	return strings.TrimSpace(lines[lineno-1])
}

// Process assembles the source file at path into a program image.
// The last instruction must end with a newline, or ErrUnexpectedEOF is
// returned.
func Process(path string) (words []cpu.Word, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &Assembler{}
	prog, err := asm.Parse(inf)
	if err != nil {
		return
	}

	words = prog.Binary()
	return
}
