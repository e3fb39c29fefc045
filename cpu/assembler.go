// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"slices"
	"strings"
)

// Assembler is a single pass, fail-fast assembler for the toy machine.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines available to $() expressions.
}

// Predefine defines a new name, or redefines an existing one, for use in
// $() expressions.
func (asm *Assembler) Predefine(name string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{name: value}
	} else {
		asm.predefine[name] = value
	}
}

var exprRegexp = regexp.MustCompile(`\$\([^\$]*\)`)

// tokenize splits a line into its mnemonic and operand tokens.
func (asm *Assembler) tokenize(line string, lineno int) (words []string, err error) {
	// Do $() evaluations
	line = exprRegexp.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], lineno)
		if _err != nil && err == nil {
			err = _err
		}
		return value
	})
	if err != nil {
		return
	}

	words = strings.Fields(strings.ReplaceAll(line, ",", ""))
	return
}

// currentIp gets the index of the next word to be emitted.
func (asm *Assembler) currentIp() int {
	if len(asm.Opcode) == 0 {
		return 0
	}

	last := asm.Opcode[len(asm.Opcode)-1]

	return last.Ip + len(last.Codes)
}

// Parse parses an input stream into a Program. The first error stops the
// assembly and is returned as an *ErrSyntax; no Program is returned with it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var mnemonic string

	defer func() {
		if err != nil {
			prog = nil
			err = &ErrSyntax{LineNo: lineno, Line: line, Mnemonic: mnemonic, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1
		mnemonic = ""

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.tokenize(line, lineno)
		if err != nil {
			return
		}

		// no-op
		if len(words) == 0 {
			continue
		}

		mnemonic = words[0]
		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		// The failed line was never read.
		lineno += 1
		line = ""
		mnemonic = ""
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords assembles the words of one line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	if !IsMnemonic(words[0]) {
		err = ErrInstructionUnknown(words[0])
		return
	}

	instr, err := ParseInstruction(words[0], words[1:]...)
	if err != nil {
		return
	}

	codes, err := instr.Encode()
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, code := range codes {
			log.Printf("%v: %v %v\n", lineno, code, code.Opcode())
		}
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo: lineno,
		Ip:     asm.currentIp(),
		Words:  words,
		Codes:  codes,
	})

	return
}
