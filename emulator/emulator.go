// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs assembled programs on the Little Man Computer,
// reporting errors against the source line being executed.
package emulator

import (
	"log"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/io"
)

// Emulator state. CPU + program listing + tape.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.
	Image    []cpu.Word   // If set, loaded instead of the program binary.

	Tape io.Tape // Console for INP and OUT.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.Console = &emu.Tape

	return
}

// LoadImage replaces the program with a bare image, without source lines.
func (emu *Emulator) LoadImage(words []cpu.Word) {
	emu.Program = &cpu.Program{}
	for addr, word := range words {
		// Undecodable words are data; they fail only if executed.
		inst, err := cpu.Decode(word)
		if err != nil {
			continue
		}
		emu.Program.Opcodes = append(emu.Program.Opcodes, cpu.Opcode{Addr: addr, Instruction: inst})
	}
	emu.Image = words
}

// Reset loads the program into a cleared memory and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	clear(emu.Cpu.Memory[:])

	image := emu.Image
	if image == nil {
		image = emu.Program.Binary()
	}

	err = emu.Cpu.Load(image)
	if err != nil {
		return
	}

	emu.Cpu.Reset()
	emu.Tape.Rewind()

	return
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 if it has none.
func (emu *Emulator) LineNo() int {
	op := emu.Program.Debug(emu.Cpu.Pc)
	if op == nil {
		return 0
	}

	return op.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Addr: pc, Err: err}
		}
	}()

	done, err = emu.Cpu.Tick()
	if done && emu.Verbose {
		log.Printf("emulator: halted after %v ticks", emu.Cpu.Ticks)
	}

	return
}

// Run ticks until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
