package io

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/ezrec/tasm/cpu"
)

// Format is a program output encoding.
type Format int

const (
	FORMAT_TEXT   = Format(0) // text
	FORMAT_PLAIN  = Format(1) // plain
	FORMAT_BINARY = Format(2) // binary
)

var formatMap = map[string]Format{
	"text":   FORMAT_TEXT,
	"plain":  FORMAT_PLAIN,
	"binary": FORMAT_BINARY,
}

// ParseFormat finds an output format by name.
func ParseFormat(name string) (format Format, err error) {
	format, ok := formatMap[strings.ToLower(name)]
	if !ok {
		err = ErrFormat(name)
	}
	return
}

func (format Format) String() string {
	for name, value := range formatMap {
		if value == format {
			return name
		}
	}
	return strconv.Itoa(int(format))
}

// Write encodes a word stream.
//
// FORMAT_TEXT writes one 0b-prefixed binary literal per line, FORMAT_PLAIN
// the bare binary digits, and FORMAT_BINARY four big-endian bytes per word.
func Write(w io.Writer, words iter.Seq[cpu.Word], format Format) (err error) {
	bw := bufio.NewWriter(w)

	for word := range words {
		switch format {
		case FORMAT_TEXT:
			_, err = bw.WriteString(word.String() + "\n")
		case FORMAT_PLAIN:
			_, err = bw.WriteString(word.Bits() + "\n")
		case FORMAT_BINARY:
			err = binary.Write(bw, binary.BigEndian, uint32(word))
		default:
			err = ErrFormat(format.String())
		}
		if err != nil {
			return
		}
	}

	err = bw.Flush()
	return
}

// Read decodes a word stream written by Write.
func Read(r io.Reader, format Format) (words []cpu.Word, err error) {
	switch format {
	case FORMAT_BINARY:
		br := bufio.NewReader(r)
		for {
			var value uint32
			err = binary.Read(br, binary.BigEndian, &value)
			if errors.Is(err, io.EOF) {
				err = nil
				return
			}
			if err != nil {
				return
			}
			words = append(words, cpu.Word(value))
		}
	case FORMAT_TEXT, FORMAT_PLAIN:
		scanner := bufio.NewScanner(r)
		lineno := 0
		for scanner.Scan() {
			lineno++
			text := strings.TrimSpace(scanner.Text())
			if len(text) == 0 {
				continue
			}
			digits := text
			if format == FORMAT_TEXT {
				var ok bool
				digits, ok = strings.CutPrefix(text, "0b")
				if !ok {
					err = ErrWordSyntax{LineNo: lineno, Text: text}
					return
				}
			}
			if len(digits) != cpu.WORD_SIZE {
				err = ErrWordSyntax{LineNo: lineno, Text: text}
				return
			}
			var value uint64
			value, err = strconv.ParseUint(digits, 2, cpu.WORD_SIZE)
			if err != nil {
				err = ErrWordSyntax{LineNo: lineno, Text: text}
				return
			}
			words = append(words, cpu.Word(value))
		}
		err = scanner.Err()
	default:
		err = ErrFormat(format.String())
	}

	return
}
