package cpu

import (
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/tasm/internal"
)

// Opcode represents a line of assembled code with its source location and
// generated machine words.
type Opcode struct {
	LineNo int      // Source line, 1-based.
	Ip     int      // Index of the first word in the program output.
	Words  []string // Source tokens, mnemonic first.
	Codes  []Word   // One word, or two when the operands overflow.
}

// All yields each word of the opcode with its index in the program output.
func (op *Opcode) All() iter.Seq2[int, Word] {
	return func(yield func(ip int, code Word) bool) {
		for n, code := range op.Codes {
			if !yield(op.Ip+n, code) {
				return
			}
		}
	}
}

// Program is the ordered output of an assembly run.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the opcode that emitted the word at ip.
func (prog *Program) Debug(ip int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if ip >= op.Ip && ip < op.Ip+len(op.Codes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  ip - op.Ip,
			}
			break
		}
	}

	return
}

// Codes yields every word of the program with its output index.
func (prog *Program) Codes() iter.Seq2[int, Word] {
	seqs := make([]iter.Seq2[int, Word], len(prog.Opcodes))
	for n := range prog.Opcodes {
		seqs[n] = prog.Opcodes[n].All()
	}
	return internal.IterSeq2Concat(seqs...)
}

// Words yields every word of the program in output order.
func (prog *Program) Words() iter.Seq[Word] {
	seqs := make([]iter.Seq[Word], len(prog.Opcodes))
	for n, op := range prog.Opcodes {
		seqs[n] = slices.Values(op.Codes)
	}
	return internal.IterSeqConcat(seqs...)
}

// Binary returns the program words as integers.
func (prog *Program) Binary() (bins []uint32) {
	for code := range prog.Words() {
		bins = append(bins, uint32(code))
	}

	return
}

// Listing writes a table of the program: source line, output index, source
// text and the emitted words.
func (prog *Program) Listing(w io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Line", "Ip", "Source", "Word", "Opcode"})

	for _, op := range prog.Opcodes {
		for ip, code := range op.All() {
			row := table.Row{"", ip, "", code.String(), code.Opcode().String()}
			if ip == op.Ip {
				row[0] = op.LineNo
				row[2] = strings.Join(op.Words, " ")
			}
			tw.AppendRow(row)
		}
	}

	tw.Render()
}
