package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allInstructions() (insts []Instruction) {
	for op := OP_HLT; op <= OP_OUT; op++ {
		if !op.HasAddress() {
			insts = append(insts, Instruction{Op: op})
			continue
		}
		for addr := range ADDR_LIMIT + 1 {
			insts = append(insts, Instruction{Op: op, Addr: addr})
		}
	}
	return
}

func TestOpString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("hlt", OP_HLT.String())
	assert.Equal("lda", OP_LDA.String())
	assert.Equal("out", OP_OUT.String())
	assert.Equal("Op(10)", Op(10).String())
}

func TestLookupOp(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"ADD", "add", "Add", "aDd"} {
		op, ok := LookupOp(name)
		assert.True(ok, name)
		assert.Equal(OP_ADD, op, name)
	}

	_, ok := LookupOp("foo")
	assert.False(ok)
	_, ok = LookupOp("dat")
	assert.False(ok)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		inst Instruction
		word Word
	}){
		{Instruction{Op: OP_HLT}, 0},
		{Instruction{Op: OP_ADD, Addr: 99}, 199},
		{Instruction{Op: OP_SUB, Addr: 1}, 201},
		{Instruction{Op: OP_STA, Addr: 42}, 342},
		{Instruction{Op: OP_LDA, Addr: 0}, 500},
		{Instruction{Op: OP_BRA, Addr: 10}, 610},
		{Instruction{Op: OP_BRZ, Addr: 7}, 707},
		{Instruction{Op: OP_BRP, Addr: 88}, 888},
		{Instruction{Op: OP_INP}, 901},
		{Instruction{Op: OP_OUT}, 902},
	}

	for _, entry := range table {
		assert.Equal(entry.word, entry.inst.Encode(), entry.inst.String())
	}
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, inst := range allInstructions() {
		decoded, err := Decode(inst.Encode())
		assert.NoError(err, inst.String())
		assert.Equal(inst, decoded)
	}
}

func TestDecodeValidity(t *testing.T) {
	assert := assert.New(t)

	for word := Word(-200); word <= 1200; word++ {
		code := word / 100
		payload := word % 100

		valid := false
		switch {
		case word < 0:
		case code == 9:
			valid = payload == 1 || payload == 2
		case code <= 8 && code != 4:
			valid = true
		}

		_, err := Decode(word)
		if valid {
			assert.NoError(err, "word %v", word)
		} else {
			assert.True(errors.Is(err, ErrInstructionCode{}), "word %v", word)
		}
	}
}

func TestDecodeError(t *testing.T) {
	assert := assert.New(t)

	_, err := Decode(400)
	assert.Equal(ErrInstructionCode{Code: 4, Limit: 9}, err)

	_, err = Decode(903)
	assert.Equal(ErrInstructionCode{Code: 3, Limit: 2}, err)

	_, err = Decode(1000)
	assert.Equal(ErrInstructionCode{Code: 10, Limit: 9}, err)

	_, err = Decode(-1)
	assert.Equal(ErrInstructionCode{Code: -1, Limit: 999}, err)
}

func TestMakeInstruction(t *testing.T) {
	assert := assert.New(t)

	inst, err := MakeInstruction(OP_BRZ, 99)
	assert.NoError(err)
	assert.Equal(Instruction{Op: OP_BRZ, Addr: 99}, inst)

	_, err = MakeInstruction(OP_BRZ, 100)
	assert.ErrorIs(err, ErrMemoryOutOfBounds)
	assert.Equal(ErrAddress(100), err)

	_, err = MakeInstruction(OP_ADD, -1)
	assert.Error(err)

	inst, err = MakeInstruction(OP_OUT, 12)
	assert.NoError(err)
	assert.Equal(Instruction{Op: OP_OUT}, inst)
}

func TestInstructionString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("add 05", Instruction{Op: OP_ADD, Addr: 5}.String())
	assert.Equal("inp", Instruction{Op: OP_INP}.String())
}
