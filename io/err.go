package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeMissing = errors.New(f("tape not attached"))
)

// ErrRomWord reports a line of a program image that is not a word.
type ErrRomWord struct {
	LineNo int
	Text   string
}

func (err ErrRomWord) Error() string {
	return f("rom line %d '%v' is not a word", err.LineNo, err.Text)
}

func (err ErrRomWord) Is(target error) (ok bool) {
	_, ok = target.(ErrRomWord)
	return
}
