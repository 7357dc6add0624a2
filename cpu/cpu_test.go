package cpu

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

//go:generate go tool mockgen -write_package_comment=false -package=$GOPACKAGE -self_package=github.com/ezrec/lmc/cpu -destination=mock_console_test.go github.com/ezrec/lmc/cpu Console

func assemble(insts ...Instruction) (words []Word) {
	for _, inst := range insts {
		words = append(words, inst.Encode())
	}
	return
}

func TestCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	assert.False(cpu.Verbose)
	assert.Equal(0, cpu.Pc)
	assert.Equal(Word(0), cpu.Accumulator)
	assert.Equal([MEMORY_LIMIT]Word{}, cpu.Memory)
}

func TestCpuLoad(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	err := cpu.Load(nil)
	assert.ErrorIs(err, ErrNoInstructionsGiven)

	err = cpu.Load(make([]Word, MEMORY_LIMIT+1))
	assert.ErrorIs(err, ErrTooManyInstructionsGiven)

	full := make([]Word, MEMORY_LIMIT)
	for n := range full {
		full[n] = Word(n + 1)
	}
	err = cpu.Load(full)
	assert.NoError(err)
	assert.Equal(Word(100), cpu.Memory[99])

	// Shorter images leave the remaining cells alone.
	err = cpu.Load([]Word{901, 902})
	assert.NoError(err)
	assert.Equal(Word(901), cpu.Memory[0])
	assert.Equal(Word(902), cpu.Memory[1])
	assert.Equal(Word(3), cpu.Memory[2])
	assert.Equal(Word(100), cpu.Memory[99])
}

func TestCpuRunAdd(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	console := NewMockConsole(ctrl)
	gomock.InOrder(
		console.EXPECT().Input(1).Return("3\n", nil),
		console.EXPECT().Input(3).Return(" 4 ", nil),
		console.EXPECT().Output(5, Word(7)).Return(nil),
	)

	cpu := NewCpu()
	cpu.Console = console

	err := cpu.Load(assemble(
		Instruction{Op: OP_INP},
		Instruction{Op: OP_STA, Addr: 99},
		Instruction{Op: OP_INP},
		Instruction{Op: OP_ADD, Addr: 99},
		Instruction{Op: OP_OUT},
		Instruction{Op: OP_HLT},
	))
	assert.NoError(err)

	err = cpu.Run()
	assert.NoError(err)
	assert.Equal(Word(7), cpu.Accumulator)
	assert.Equal(Word(3), cpu.Memory[99])
	assert.Equal(6, cpu.Pc)
	assert.Equal(6, cpu.Ticks)
}

func TestCpuBranch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name        string
		op          Op
		accumulator Word
		pc          int
	}){
		{"bra", OP_BRA, 5, 42},
		{"bra_neg", OP_BRA, -5, 42},
		{"brz_zero", OP_BRZ, 0, 42},
		{"brz_pos", OP_BRZ, 5, 1},
		{"brz_neg", OP_BRZ, -5, 1},
		{"brp_pos", OP_BRP, 5, 42},
		{"brp_zero", OP_BRP, 0, 1},
		{"brp_neg", OP_BRP, -5, 1},
	}

	for _, entry := range table {
		cpu := NewCpu()
		err := cpu.Load(assemble(Instruction{Op: entry.op, Addr: 42}))
		assert.NoError(err, entry.name)

		cpu.Accumulator = entry.accumulator
		halted, err := cpu.Tick()
		assert.NoError(err, entry.name)
		assert.False(halted, entry.name)
		assert.Equal(entry.pc, cpu.Pc, entry.name)
		assert.Equal(entry.accumulator, cpu.Accumulator, entry.name)
	}
}

func TestCpuMemory(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.Load(assemble(
		Instruction{Op: OP_LDA, Addr: 10},
		Instruction{Op: OP_SUB, Addr: 11},
		Instruction{Op: OP_STA, Addr: 12},
		Instruction{Op: OP_HLT},
	))
	assert.NoError(err)
	cpu.Memory[10] = 5
	cpu.Memory[11] = 8

	err = cpu.Run()
	assert.NoError(err)
	assert.Equal(Word(-3), cpu.Accumulator)
	assert.Equal(Word(-3), cpu.Memory[12])
}

func TestCpuWrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.Load(assemble(
		Instruction{Op: OP_ADD, Addr: 10},
		Instruction{Op: OP_HLT},
	))
	assert.NoError(err)
	cpu.Accumulator = math.MaxInt64
	cpu.Memory[10] = 1

	err = cpu.Run()
	assert.NoError(err)
	assert.Equal(Word(math.MinInt64), cpu.Accumulator)
}

func TestCpuLoop(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Count down from 3.
	console := NewMockConsole(ctrl)
	gomock.InOrder(
		console.EXPECT().Input(1).Return("3", nil),
		console.EXPECT().Output(2, Word(3)).Return(nil),
		console.EXPECT().Output(2, Word(2)).Return(nil),
		console.EXPECT().Output(2, Word(1)).Return(nil),
	)

	cpu := NewCpu()
	cpu.Console = console
	err := cpu.Load(assemble(
		Instruction{Op: OP_INP},
		Instruction{Op: OP_OUT},
		Instruction{Op: OP_SUB, Addr: 6},
		Instruction{Op: OP_BRZ, Addr: 5},
		Instruction{Op: OP_BRA, Addr: 1},
		Instruction{Op: OP_HLT},
		Instruction{Op: OP_HLT},
	))
	assert.NoError(err)
	cpu.Memory[6] = 1

	err = cpu.Run()
	assert.NoError(err)
	assert.Equal(Word(0), cpu.Accumulator)
	assert.Equal(6, cpu.Pc)
}

func TestCpuRunOffEnd(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	image := make([]Word, MEMORY_LIMIT)
	for n := range image {
		image[n] = Instruction{Op: OP_LDA, Addr: 0}.Encode()
	}
	err := cpu.Load(image)
	assert.NoError(err)

	err = cpu.Run()
	assert.ErrorIs(err, ErrProgramDidntHalt)
	assert.ErrorIs(err, ErrMemoryOutOfBounds)
	assert.Equal(MEMORY_LIMIT, cpu.Pc)
	assert.Equal(MEMORY_LIMIT, cpu.Ticks)
}

func TestCpuDecodeError(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.Load([]Word{Instruction{Op: OP_BRA, Addr: 2}.Encode(), 0, 450})
	assert.NoError(err)

	err = cpu.Run()
	assert.Equal(ErrInstructionCode{Code: 4, Limit: 9}, err)
	assert.Equal(2, cpu.Pc)

	// Accumulator values stored over code are decoded too.
	cpu = NewCpu()
	err = cpu.Load(assemble(
		Instruction{Op: OP_LDA, Addr: 4},
		Instruction{Op: OP_STA, Addr: 2},
		Instruction{Op: OP_HLT},
	))
	assert.NoError(err)
	cpu.Memory[4] = -7

	err = cpu.Run()
	assert.ErrorIs(err, ErrInstructionCode{})
}

func TestCpuInput(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	console := NewMockConsole(ctrl)

	cpu := NewCpu()
	cpu.Console = console
	err := cpu.Load(assemble(Instruction{Op: OP_INP}, Instruction{Op: OP_HLT}))
	assert.NoError(err)

	console.EXPECT().Input(1).Return("abc", nil)
	err = cpu.Run()
	assert.ErrorIs(err, ErrInvalidInput)

	cpu.Reset()
	console.EXPECT().Input(1).Return("", io.EOF)
	err = cpu.Run()
	assert.ErrorIs(err, ErrInput)
	assert.ErrorIs(err, io.EOF)

	cpu.Reset()
	console.EXPECT().Input(1).Return("-12", nil)
	err = cpu.Run()
	assert.NoError(err)
	assert.Equal(Word(-12), cpu.Accumulator)
}

func TestCpuOutput(t *testing.T) {
	assert := assert.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := errors.New("broken pipe")
	console := NewMockConsole(ctrl)
	console.EXPECT().Output(1, Word(0)).Return(broken)

	cpu := NewCpu()
	cpu.Console = console
	err := cpu.Load(assemble(Instruction{Op: OP_OUT}, Instruction{Op: OP_HLT}))
	assert.NoError(err)

	err = cpu.Run()
	assert.ErrorIs(err, ErrOutput)
	assert.ErrorIs(err, broken)
}

func TestCpuConsoleMissing(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	err := cpu.Load(assemble(Instruction{Op: OP_INP}))
	assert.NoError(err)

	err = cpu.Run()
	assert.ErrorIs(err, ErrConsoleMissing)
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Pc = 12
	cpu.Accumulator = 34
	cpu.Ticks = 56
	cpu.Memory[7] = 89

	cpu.Reset()
	assert.Equal(0, cpu.Pc)
	assert.Equal(Word(0), cpu.Accumulator)
	assert.Equal(0, cpu.Ticks)
	assert.Equal(Word(89), cpu.Memory[7])
}

func TestCpuGetSet(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()

	assert.NoError(cpu.Set(99, 5))
	word, err := cpu.Get(99)
	assert.NoError(err)
	assert.Equal(Word(5), word)

	_, err = cpu.Get(100)
	assert.ErrorIs(err, ErrMemoryOutOfBounds)
	assert.ErrorIs(cpu.Set(-1, 0), ErrMemoryOutOfBounds)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Memory[0] = 901

	text := cpu.String()
	assert.Contains(text, "pc: 00")
	assert.Contains(text, "901")
}
