package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ezrec/lmc/cpu"
)

// Rom is a program image file: one decimal word per line. Blank lines and
// ';' comments are ignored when reading.
type Rom struct {
	Words []cpu.Word
}

var _ io.ReaderFrom = (*Rom)(nil)
var _ io.WriterTo = (*Rom)(nil)

// ReadFrom replaces the image with the words read from r.
func (rom *Rom) ReadFrom(r io.Reader) (n int64, err error) {
	var words []cpu.Word

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		text := scanner.Text()
		n += int64(len(text)) + 1
		lineno++

		text, _, _ = strings.Cut(text, ";")
		text = strings.TrimSpace(text)
		if len(text) == 0 {
			continue
		}

		value, perr := strconv.ParseInt(text, 10, 64)
		if perr != nil || value < 0 || value > cpu.WORD_LIMIT {
			err = ErrRomWord{LineNo: lineno, Text: text}
			return
		}

		if len(words) == cpu.MEMORY_LIMIT {
			err = cpu.ErrTooManyInstructionsGiven
			return
		}

		words = append(words, cpu.Word(value))
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	rom.Words = words
	return
}

// WriteTo writes the image to w as zero padded three digit words.
func (rom *Rom) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	for _, word := range rom.Words {
		var c int
		c, err = fmt.Fprintf(bw, "%03d\n", word)
		n += int64(c)
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}
