package cpu

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Cpu is the Little Man Computer simulation.
type Cpu struct {
	Verbose bool    // Set to enable verbose logging.
	Console Console // Target of INP and OUT.

	Pc          int                // Program counter.
	Accumulator Word               // Accumulator register.
	Memory      [MEMORY_LIMIT]Word // Main memory.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a new CPU with zeroed memory.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}

	return
}

// Load copies a program image into memory, starting at address 0.
// Memory past the end of the image is left as it was.
func (cpu *Cpu) Load(words []Word) (err error) {
	if len(words) == 0 {
		err = ErrNoInstructionsGiven
		return
	}

	if len(words) > MEMORY_LIMIT {
		err = ErrTooManyInstructionsGiven
		return
	}

	copy(cpu.Memory[:], words)

	if cpu.Verbose {
		log.Printf("cpu: loaded %v words", len(words))
	}

	return
}

// Reset the CPU registers. Memory is not cleared.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	cpu.Pc = 0
	cpu.Accumulator = 0
	cpu.Ticks = 0
}

// Get reads a word of memory.
func (cpu *Cpu) Get(addr int) (word Word, err error) {
	if addr < 0 || addr >= MEMORY_LIMIT {
		err = ErrAddress(addr)
		return
	}

	word = cpu.Memory[addr]
	return
}

// Set writes a word of memory.
func (cpu *Cpu) Set(addr int, word Word) (err error) {
	if addr < 0 || addr >= MEMORY_LIMIT {
		err = ErrAddress(addr)
		return
	}

	cpu.Memory[addr] = word
	return
}

// Fetch fetches and decodes the instruction at the program counter.
func (cpu *Cpu) Fetch() (inst Instruction, err error) {
	word, err := cpu.Get(cpu.Pc)
	if err != nil {
		err = errors.Join(ErrProgramDidntHalt, err)
		return
	}

	inst, err = Decode(word)
	return
}

// Tick executes a single fetch, decode, execute cycle.
func (cpu *Cpu) Tick() (halted bool, err error) {
	inst, err := cpu.Fetch()
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("%02d: %v", cpu.Pc, inst)
	}

	// Branches overwrite the advanced PC.
	cpu.Pc++
	cpu.Ticks++

	err = cpu.Execute(inst)
	if errors.Is(err, ErrHalt) {
		err = nil
		halted = true
	}

	return
}

// Run ticks until the program halts or fails.
func (cpu *Cpu) Run() (err error) {
	for {
		var halted bool
		halted, err = cpu.Tick()
		if halted || err != nil {
			return
		}
	}
}

// Execute executes a single decoded instruction.
// HLT is reported as ErrHalt.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	var value Word

	switch inst.Op {
	case OP_HLT:
		err = ErrHalt
	case OP_ADD:
		value, err = cpu.Get(inst.Addr)
		if err != nil {
			return
		}
		cpu.Accumulator += value
	case OP_SUB:
		value, err = cpu.Get(inst.Addr)
		if err != nil {
			return
		}
		cpu.Accumulator -= value
	case OP_STA:
		err = cpu.Set(inst.Addr, cpu.Accumulator)
	case OP_LDA:
		value, err = cpu.Get(inst.Addr)
		if err != nil {
			return
		}
		cpu.Accumulator = value
	case OP_BRA:
		cpu.Pc = inst.Addr
	case OP_BRZ:
		if cpu.Accumulator == 0 {
			cpu.Pc = inst.Addr
		}
	case OP_BRP:
		// Negative accumulators never branch.
		if cpu.Accumulator > 0 {
			cpu.Pc = inst.Addr
		}
	case OP_INP:
		err = cpu.input()
	case OP_OUT:
		err = cpu.output()
	default:
		err = ErrInstructionCode{Code: int64(inst.Op), Limit: int64(OP_OUT)}
	}

	return
}

// input reads one integer line from the console into the accumulator.
func (cpu *Cpu) input() (err error) {
	if cpu.Console == nil {
		err = ErrConsoleMissing
		return
	}

	line, err := cpu.Console.Input(cpu.Pc)
	if err != nil {
		err = errors.Join(ErrInput, err)
		return
	}

	value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		err = errors.Join(ErrInvalidInput, err)
		return
	}

	cpu.Accumulator = Word(value)
	return
}

// output sends the accumulator to the console.
func (cpu *Cpu) output() (err error) {
	if cpu.Console == nil {
		err = ErrConsoleMissing
		return
	}

	err = cpu.Console.Output(cpu.Pc, cpu.Accumulator)
	if err != nil {
		err = errors.Join(ErrOutput, err)
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	tw := table.NewWriter()
	tw.SetTitle("pc: %02d  acc: %v  ticks: %v", cpu.Pc, cpu.Accumulator, cpu.Ticks)

	header := table.Row{""}
	for col := range 10 {
		header = append(header, fmt.Sprintf("x%d", col))
	}
	tw.AppendHeader(header)

	for row := range MEMORY_LIMIT / 10 {
		line := table.Row{fmt.Sprintf("%dx", row)}
		for col := range 10 {
			line = append(line, fmt.Sprintf("%03d", cpu.Memory[row*10+col]))
		}
		tw.AppendRow(line)
	}

	return tw.Render()
}
