package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ezrec/lmc/cpu"
)

// Tape is a line oriented console. Each INP reads one line from In, and
// each OUT writes one tagged line to Out. If Prompt is set, an input
// prompt is written to it before each read.
type Tape struct {
	In     io.Reader
	Out    io.Writer
	Prompt io.Writer

	reader *bufio.Reader
	source io.Reader
}

var _ cpu.Console = (*Tape)(nil)

// Rewind drops any buffered input.
func (tc *Tape) Rewind() {
	tc.reader = nil
	tc.source = nil
}

// Input reads the next line of input. A final line without a newline is
// still returned; io.EOF is only reported when no input remains.
func (tc *Tape) Input(pc int) (line string, err error) {
	if tc.In == nil {
		err = ErrTapeMissing
		return
	}

	if tc.reader == nil || tc.source != tc.In {
		tc.reader = bufio.NewReader(tc.In)
		tc.source = tc.In
	}

	if tc.Prompt != nil {
		fmt.Fprintf(tc.Prompt, "(PC @ %d) Input: ", pc)
	}

	line, err = tc.reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err != nil {
		return
	}

	line = strings.TrimRight(line, "\r\n")
	return
}

// Output writes the value tagged with the program counter.
func (tc *Tape) Output(pc int, value cpu.Word) (err error) {
	if tc.Out == nil {
		err = ErrTapeMissing
		return
	}

	_, err = fmt.Fprintf(tc.Out, "(PC @ %d) Output: %d\n", pc, value)
	return
}
