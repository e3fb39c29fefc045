package cpu

import (
	"slices"
)

// mnemonic describes the operands an instruction accepts.
type mnemonic struct {
	Arity int
	// Reason explains a rejected second operand, keyed by the kind of the
	// first operand. NoFirst is used when the first operand kind is never
	// accepted. A first operand kind that takes every second kind has no
	// Reason.
	Reason  map[OperandKind]string
	NoFirst string
}

// mnemonicMap lists the instructions of the machine.
var mnemonicMap = map[string]*mnemonic{
	"add": {
		Arity: 2,
		Reason: map[OperandKind]string{
			OPERAND_REGISTER: f("add instruction can only add a constant value or a value from memory when storing in a register."),
			OPERAND_MEMORY:   f("add instruction can only add a value from a register when storing in a memory location."),
		},
		NoFirst: f("add instruction requires a register or memory location as the first argument."),
	},
	"mov": {
		Arity: 2,
		Reason: map[OperandKind]string{
			OPERAND_REGISTER: f("mov instruction only allows to store a constant value or a value from memory in a register."),
		},
		NoFirst: f("mov instruction requires a register or memory location as the first parameter."),
	},
}

// operandKinds lists every operand kind, in classification order.
var operandKinds = []OperandKind{OPERAND_REGISTER, OPERAND_CONSTANT, OPERAND_MEMORY}

// IsMnemonic returns true if name is an instruction of the machine.
func IsMnemonic(name string) bool {
	_, ok := mnemonicMap[name]
	return ok
}

// Allowed lists the operand kinds accepted at position index of the
// mnemonic, given the kinds of the operands before it.
func Allowed(name string, index int, before ...OperandKind) (kinds []OperandKind) {
	for form := range formOpcode {
		if form.Mnemonic != name {
			continue
		}
		var kind OperandKind
		switch index {
		case 0:
			kind = form.First
		case 1:
			if len(before) > 0 && form.First != before[0] {
				continue
			}
			kind = form.Second
		default:
			continue
		}
		if !slices.Contains(kinds, kind) {
			kinds = append(kinds, kind)
		}
	}

	slices.SortFunc(kinds, func(a, b OperandKind) int {
		return slices.Index(operandKinds, a) - slices.Index(operandKinds, b)
	})

	return
}

// Instruction is a mnemonic with its classified operands.
type Instruction struct {
	Mnemonic string
	Operands []Operand
}

// checkArgs verifies the number of operand tokens of an instruction.
func checkArgs(name string, args []string, required int) (err error) {
	if len(args) != required {
		err = ErrArity{Mnemonic: name, Required: required, Supplied: len(args)}
	}
	return
}

// reject explains why the instruction has no opcode for the operand kinds.
func (mn *mnemonic) reject(name string, first, second OperandKind) (err ErrOperandCombination) {
	err = ErrOperandCombination{Mnemonic: name, First: first, Second: second}
	reason, ok := mn.Reason[first]
	if !ok {
		reason = mn.NoFirst
	}
	err.Reason = reason
	return
}

// ParseInstruction checks the arity of a mnemonic, then the kind of each
// operand in order, and finally encodes the operand tokens. An operand kind
// that cannot follow the ones before it is reported before any operand is
// encoded.
func ParseInstruction(name string, args ...string) (instr *Instruction, err error) {
	mn, ok := mnemonicMap[name]
	if !ok {
		err = ErrInstructionUnknown(name)
		return
	}

	err = checkArgs(name, args, mn.Arity)
	if err != nil {
		return
	}

	var kinds []OperandKind
	for n, arg := range args {
		allowed := Allowed(name, n, kinds...)
		kind, ok := Classify(arg)
		if !ok {
			err = ErrOperandInvalid{
				Mnemonic: name,
				Token:    arg,
				Allowed:  allowed,
			}
			return
		}
		if !slices.Contains(allowed, kind) {
			first, second := kind, kind
			if n == 0 {
				second, _ = Classify(args[1])
			} else {
				first = kinds[0]
			}
			err = mn.reject(name, first, second)
			return
		}
		kinds = append(kinds, kind)
	}

	operands := make([]Operand, 0, len(args))
	for n, arg := range args {
		var opnd Operand
		opnd, err = ParseOperand(arg)
		if err != nil {
			err = &ErrOperand{Mnemonic: name, Index: n + 1, Err: err}
			return
		}
		operands = append(operands, opnd)
	}

	instr = &Instruction{
		Mnemonic: name,
		Operands: operands,
	}

	return
}

// Select picks the opcode variant for the kinds of the operands.
func (instr *Instruction) Select() (op CodeOp, err error) {
	mn, ok := mnemonicMap[instr.Mnemonic]
	if !ok {
		err = ErrInstructionUnknown(instr.Mnemonic)
		return
	}

	if len(instr.Operands) != mn.Arity {
		err = ErrArity{Mnemonic: instr.Mnemonic, Required: mn.Arity, Supplied: len(instr.Operands)}
		return
	}

	first := instr.Operands[0].Kind
	second := instr.Operands[1].Kind

	op, ok = LookupOpcode(instr.Mnemonic, first, second)
	if !ok {
		err = mn.reject(instr.Mnemonic, first, second)
	}

	return
}

// Encode selects the opcode of the instruction and packs it into one
// word, or two when the operands overflow.
func (instr *Instruction) Encode() (words []Word, err error) {
	op, err := instr.Select()
	if err != nil {
		return
	}

	words, err = Pack(op, instr.Operands[0].Field, instr.Operands[1].Field)
	if err != nil {
		err = &ErrOperand{Mnemonic: instr.Mnemonic, Index: 2, Err: err}
		return
	}

	return
}
