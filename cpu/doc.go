// Package cpu implements the Little Man Computer instruction set and the
// virtual machine that runs it.
//
// The machine consists of a program counter (PC), a single signed
// accumulator, and 100 words of memory addressed 0 through 99. Every
// instruction is encoded as one decimal word, opcode*100 + address, with
// the niladic INP and OUT encoded as the complete words 901 and 902.
//
// Execution is a fetch, decode, advance, execute loop that terminates on
// HLT or on the first error. There is no cycle limit: a program that
// neither halts nor runs off the end of memory never returns from Run.
package cpu
