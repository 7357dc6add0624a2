package asm

import (
	"strings"

	"github.com/ezrec/lmc/cpu"
)

// Parse parses resolved tokens into an instruction sequence.
func Parse(tokens []Token) (insts []cpu.Instruction, err error) {
	prog, err := ParseProgram(tokens)
	if err != nil {
		return
	}

	insts = prog.Instructions()
	return
}

// ParseProgram parses resolved tokens into a program listing, recording the
// source line and address of each instruction.
//
// Each TOKEN_OP must be followed by either a TOKEN_ARG operand or a
// TOKEN_NEWLINE. Any other TOKEN_ARG or TOKEN_NEWLINE is ignored.
// Programs longer than cpu.MEMORY_LIMIT instructions are rejected.
func ParseProgram(tokens []Token) (prog *cpu.Program, err error) {
	prog = &cpu.Program{}
	defer func() {
		if err != nil {
			prog = nil
		}
	}()

	for n, tok := range tokens {
		if !tok.Resolved() {
			err = &ErrSyntax{LineNo: tok.LineNo, Err: ErrTokenUnresolved}
			return
		}

		if tok.Kind != TOKEN_OP {
			continue
		}

		if n+1 >= len(tokens) {
			err = &ErrSyntax{LineNo: tok.LineNo, Err: ErrUnexpectedEOF}
			return
		}

		if len(prog.Opcodes) == cpu.MEMORY_LIMIT {
			err = &ErrSyntax{LineNo: tok.LineNo, Err: cpu.ErrTooManyInstructionsGiven}
			return
		}

		next := tokens[n+1]
		if !next.Resolved() {
			err = &ErrSyntax{LineNo: tok.LineNo, Err: ErrTokenUnresolved}
			return
		}

		var inst cpu.Instruction
		switch next.Kind {
		case TOKEN_ARG:
			inst, err = makeInstruction(tok.Text, &next.Value)
		case TOKEN_NEWLINE:
			inst, err = makeInstruction(tok.Text, nil)
		default:
			err = ErrNoArgNewlineOrComment
		}
		if err != nil {
			err = &ErrSyntax{LineNo: tok.LineNo, Err: err}
			return
		}

		prog.Opcodes = append(prog.Opcodes, cpu.Opcode{
			LineNo:      tok.LineNo,
			Addr:        len(prog.Opcodes),
			Instruction: inst,
		})
	}

	return
}

// makeInstruction checks a mnemonic and its optional operand.
func makeInstruction(mnemonic string, arg *int) (inst cpu.Instruction, err error) {
	op, ok := cpu.LookupOp(mnemonic)
	if !ok {
		err = ErrInstructionNotRecognised(strings.ToLower(mnemonic))
		return
	}

	switch {
	case op.HasAddress() && arg == nil:
		err = ErrNoArgumentPassedToOp
	case !op.HasAddress() && arg != nil:
		err = ErrUnexpectedArgPassedToOp
	case arg == nil:
		inst, err = cpu.MakeInstruction(op, 0)
	default:
		inst, err = cpu.MakeInstruction(op, *arg)
	}

	return
}
