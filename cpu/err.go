package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Load errors
	ErrNoInstructionsGiven      = errors.New(f("no instructions were given"))
	ErrTooManyInstructionsGiven = errors.New(f("too many instructions given, not enough memory"))

	// Runtime errors
	ErrHalt              = errors.New(f("program halted"))
	ErrMemoryOutOfBounds = errors.New(f("memory access out of bounds"))
	ErrProgramDidntHalt  = errors.New(f("program did not halt"))
	ErrInvalidInput      = errors.New(f("input is not an integer"))
	ErrInput             = errors.New(f("input failed"))
	ErrOutput            = errors.New(f("output failed"))
	ErrConsoleMissing    = errors.New(f("no console attached"))
)

// ErrInstructionCode is returned when a word does not decode to an
// instruction. Code is the offending opcode, or the payload of an opcode 9
// word, and Limit the largest value that class accepts.
type ErrInstructionCode struct {
	Code  int64
	Limit int64
}

func (err ErrInstructionCode) Error() string {
	return f("instruction code %v not recognised, limit is %v", err.Code, err.Limit)
}

func (err ErrInstructionCode) Is(target error) (ok bool) {
	_, ok = target.(ErrInstructionCode)
	return
}

// ErrAddress reports an address outside of memory.
type ErrAddress int

func (err ErrAddress) Error() string {
	return f("address %v outside 0..%v", int(err), MEMORY_LIMIT-1)
}

func (err ErrAddress) Unwrap() error {
	return ErrMemoryOutOfBounds
}
