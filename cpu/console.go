package cpu

// Console is the machine's external I/O.
type Console interface {
	// Input blocks for one line of input for the INP at pc.
	Input(pc int) (line string, err error)
	// Output emits the accumulator value for the OUT at pc.
	Output(pc int, value Word) error
}
