package io

import (
	"errors"

	"github.com/ezrec/tasm/translate"
)

var f = translate.From

var (
	// File system errors
	ErrNotDirectory = errors.New(f("not a directory"))
)

// ErrFormat is an unknown output format name.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("'%v' is not an output format (text, plain or binary)", string(err))
}

// ErrWordSyntax is an unreadable word in program text.
type ErrWordSyntax struct {
	LineNo int
	Text   string
}

func (err ErrWordSyntax) Error() string {
	return f("line %d '%v' is not a machine word", err.LineNo, err.Text)
}
