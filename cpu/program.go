package cpu

import (
	"fmt"
	"iter"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Opcode is one assembled instruction and where it came from.
type Opcode struct {
	LineNo      int // Source line, 1 based.
	Addr        int // Memory address the instruction is loaded at.
	Instruction Instruction
}

// Program is an assembled program listing.
type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode loaded at addr, or nil.
func (prog *Program) Debug(addr int) (op *Opcode) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].Addr == addr {
			op = &prog.Opcodes[n]
			break
		}
	}

	return
}

// Instructions returns the bare instruction sequence.
func (prog *Program) Instructions() (insts []Instruction) {
	for _, op := range prog.Opcodes {
		insts = append(insts, op.Instruction)
	}

	return
}

// Binary returns the program image.
func (prog *Program) Binary() (words []Word) {
	for _, word := range prog.Words() {
		words = append(words, word)
	}

	return
}

// Words iterates over the program image by address.
func (prog *Program) Words() iter.Seq2[int, Word] {
	return func(yield func(addr int, word Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Addr, op.Instruction.Encode()) {
				return
			}
		}
	}
}

// Listing renders the program as an address, word, and source table.
func (prog *Program) Listing() string {
	tw := table.NewWriter()
	tw.AppendHeader(table.Row{"Addr", "Word", "Line", "Instruction"})
	for _, op := range prog.Opcodes {
		tw.AppendRow(table.Row{
			fmt.Sprintf("%02d", op.Addr),
			fmt.Sprintf("%03d", op.Instruction.Encode()),
			op.LineNo,
			op.Instruction.String(),
		})
	}
	tw.SetStyle(table.StyleLight)

	return tw.Render()
}
