package cpu

import (
	"fmt"
)

// CodeOp is a 6-bit instruction opcode.
type CodeOp uint8

const (
	OP_MOV_REG_CONST = CodeOp(0b000000) // mov.reg.const
	OP_MOV_REG_MEM   = CodeOp(0b000001) // mov.reg.mem
	OP_MOV_MEM_CONST = CodeOp(0b000010) // mov.mem.const
	OP_MOV_MEM_MEM   = CodeOp(0b000011) // mov.mem.mem
	OP_MOV_MEM_REG   = CodeOp(0b000100) // mov.mem.reg
	OP_ADD_REG_CONST = CodeOp(0b000101) // add.reg.const
	OP_ADD_REG_MEM   = CodeOp(0b000110) // add.reg.mem
	OP_ADD_MEM_REG   = CodeOp(0b000111) // add.mem.reg
	OP_EXTEND        = CodeOp(0b111111) // extend
)

// Form is the mnemonic and operand kinds an opcode was selected for.
type Form struct {
	Mnemonic string
	First    OperandKind
	Second   OperandKind
}

func (form Form) String() string {
	return fmt.Sprintf("%v.%v.%v", form.Mnemonic, form.First, form.Second)
}

// opcodeForm maps every real opcode to its form.
var opcodeForm = map[CodeOp]Form{
	OP_MOV_REG_CONST: {"mov", OPERAND_REGISTER, OPERAND_CONSTANT},
	OP_MOV_REG_MEM:   {"mov", OPERAND_REGISTER, OPERAND_MEMORY},
	OP_MOV_MEM_CONST: {"mov", OPERAND_MEMORY, OPERAND_CONSTANT},
	OP_MOV_MEM_MEM:   {"mov", OPERAND_MEMORY, OPERAND_MEMORY},
	OP_MOV_MEM_REG:   {"mov", OPERAND_MEMORY, OPERAND_REGISTER},
	OP_ADD_REG_CONST: {"add", OPERAND_REGISTER, OPERAND_CONSTANT},
	OP_ADD_REG_MEM:   {"add", OPERAND_REGISTER, OPERAND_MEMORY},
	OP_ADD_MEM_REG:   {"add", OPERAND_MEMORY, OPERAND_REGISTER},
}

// formOpcode is the inverse of opcodeForm.
var formOpcode = func() map[Form]CodeOp {
	forms := make(map[Form]CodeOp, len(opcodeForm))
	for op, form := range opcodeForm {
		forms[form] = op
	}
	return forms
}()

// LookupOpcode selects the opcode for a mnemonic and its operand kinds.
func LookupOpcode(mnemonic string, first, second OperandKind) (op CodeOp, ok bool) {
	op, ok = formOpcode[Form{Mnemonic: mnemonic, First: first, Second: second}]
	return
}

// Form returns the mnemonic and operand kinds of the opcode.
func (op CodeOp) Form() (form Form, ok bool) {
	form, ok = opcodeForm[op]
	return
}

func (op CodeOp) String() string {
	if op == OP_EXTEND {
		return "extend"
	}
	form, ok := op.Form()
	if !ok {
		return fmt.Sprintf("op(%06b)", uint8(op))
	}
	return form.String()
}
