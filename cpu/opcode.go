package cpu

import (
	"fmt"
	"strings"
)

// Word is a single memory cell, and a single encoded instruction.
type Word int64

const (
	MEMORY_LIMIT = 100 // Words of memory.
	WORD_LIMIT   = 999 // Largest valid encoded instruction.
	ADDR_LIMIT   = 99  // Largest address operand.
)

// Op is the instruction class.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_HLT = Op(0) // hlt
	OP_ADD = Op(1) // add
	OP_SUB = Op(2) // sub
	OP_STA = Op(3) // sta
	OP_LDA = Op(4) // lda
	OP_BRA = Op(5) // bra
	OP_BRZ = Op(6) // brz
	OP_BRP = Op(7) // brp
	OP_INP = Op(8) // inp
	OP_OUT = Op(9) // out
)

// Opcode class numbers, the hundreds digit of an encoded word.
const (
	CODE_HLT = 0
	CODE_ADD = 1
	CODE_SUB = 2
	CODE_STA = 3
	CODE_LDA = 5
	CODE_BRA = 6
	CODE_BRZ = 7
	CODE_BRP = 8
	CODE_IO  = 9

	CODE_IO_INP = 1 // Low digits of INP.
	CODE_IO_OUT = 2 // Low digits of OUT.
)

// opCode maps each addressed instruction class to its opcode.
var opCode = map[Op]Word{
	OP_ADD: CODE_ADD,
	OP_SUB: CODE_SUB,
	OP_STA: CODE_STA,
	OP_LDA: CODE_LDA,
	OP_BRA: CODE_BRA,
	OP_BRZ: CODE_BRZ,
	OP_BRP: CODE_BRP,
}

// codeOp maps opcodes back to their addressed instruction class.
var codeOp = map[Word]Op{
	CODE_ADD: OP_ADD,
	CODE_SUB: OP_SUB,
	CODE_STA: OP_STA,
	CODE_LDA: OP_LDA,
	CODE_BRA: OP_BRA,
	CODE_BRZ: OP_BRZ,
	CODE_BRP: OP_BRP,
}

// mnemonicMap maps lower case mnemonics to instruction classes.
var mnemonicMap = map[string]Op{
	"hlt": OP_HLT,
	"add": OP_ADD,
	"sub": OP_SUB,
	"sta": OP_STA,
	"lda": OP_LDA,
	"bra": OP_BRA,
	"brz": OP_BRZ,
	"brp": OP_BRP,
	"inp": OP_INP,
	"out": OP_OUT,
}

// LookupOp finds the instruction class for a mnemonic, ignoring case.
func LookupOp(mnemonic string) (op Op, ok bool) {
	op, ok = mnemonicMap[strings.ToLower(mnemonic)]
	return
}

// HasAddress returns true if the instruction class takes an address operand.
func (op Op) HasAddress() bool {
	_, ok := opCode[op]
	return ok
}

// Instruction is a decoded instruction. Addr is always zero for the
// niladic INP, OUT and HLT.
type Instruction struct {
	Op   Op
	Addr int
}

// MakeInstruction creates an instruction, validating the address operand.
func MakeInstruction(op Op, addr int) (inst Instruction, err error) {
	if !op.HasAddress() {
		inst = Instruction{Op: op}
		return
	}

	if addr < 0 || addr > ADDR_LIMIT {
		err = ErrAddress(addr)
		return
	}

	inst = Instruction{Op: op, Addr: addr}
	return
}

// Encode returns the word encoding of the instruction.
func (inst Instruction) Encode() (word Word) {
	switch inst.Op {
	case OP_HLT:
		word = CODE_HLT * 100
	case OP_INP:
		word = CODE_IO*100 + CODE_IO_INP
	case OP_OUT:
		word = CODE_IO*100 + CODE_IO_OUT
	case OP_ADD, OP_SUB, OP_STA, OP_LDA, OP_BRA, OP_BRZ, OP_BRP:
		word = opCode[inst.Op]*100 + Word(inst.Addr)
	}

	return
}

// Decode decodes a word into an instruction.
func Decode(word Word) (inst Instruction, err error) {
	if word < 0 {
		err = ErrInstructionCode{Code: int64(word), Limit: WORD_LIMIT}
		return
	}

	code := word / 100
	payload := word % 100

	switch code {
	case CODE_HLT:
		inst = Instruction{Op: OP_HLT}
	case CODE_IO:
		switch payload {
		case CODE_IO_INP:
			inst = Instruction{Op: OP_INP}
		case CODE_IO_OUT:
			inst = Instruction{Op: OP_OUT}
		default:
			err = ErrInstructionCode{Code: int64(payload), Limit: CODE_IO_OUT}
		}
	default:
		op, ok := codeOp[code]
		if !ok {
			err = ErrInstructionCode{Code: int64(code), Limit: CODE_IO}
			return
		}
		inst = Instruction{Op: op, Addr: int(payload)}
	}

	return
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() string {
	if inst.Op.HasAddress() {
		return fmt.Sprintf("%v %02d", inst.Op, inst.Addr)
	}

	return inst.Op.String()
}
