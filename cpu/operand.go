package cpu

import (
	"fmt"
	"math/big"
	"strings"
)

// OperandKind is the shape of an instruction operand.
type OperandKind int

const (
	OPERAND_REGISTER = OperandKind(0) // reg
	OPERAND_MEMORY   = OperandKind(1) // mem
	OPERAND_CONSTANT = OperandKind(2) // const
)

var operandKindName = map[OperandKind]string{
	OPERAND_REGISTER: "reg",
	OPERAND_MEMORY:   "mem",
	OPERAND_CONSTANT: "const",
}

func (kind OperandKind) String() string {
	name, ok := operandKindName[kind]
	if !ok {
		return fmt.Sprintf("OperandKind(%d)", int(kind))
	}
	return name
}

// Describe returns the user facing name of the operand kind.
func (kind OperandKind) Describe() string {
	switch kind {
	case OPERAND_REGISTER:
		return f("register")
	case OPERAND_MEMORY:
		return f("memory location")
	case OPERAND_CONSTANT:
		return f("constant value")
	}
	return kind.String()
}

// Width returns the fixed field width of the operand kind, or zero if the
// width depends on the value.
func (kind OperandKind) Width() Width {
	switch kind {
	case OPERAND_REGISTER:
		return REGISTER_BITS
	case OPERAND_MEMORY:
		return MEM_ADDR_BITS
	}
	return 0
}

// MEMORY_MARKER identifies a memory address token, as in 0x3ff.
const MEMORY_MARKER = "x"

// Operand is a classified and encoded instruction operand.
type Operand struct {
	Kind  OperandKind
	Token string // Source text of the operand.
	Field Field  // Encoded operand bits.
}

// Classify determines the operand kind of a token from its shape.
func Classify(token string) (kind OperandKind, ok bool) {
	switch {
	case len(token) == 0:
		return
	case isRegister(token):
		kind = OPERAND_REGISTER
	case isDecimal(token):
		kind = OPERAND_CONSTANT
	case strings.Contains(strings.ToLower(token), MEMORY_MARKER):
		kind = OPERAND_MEMORY
	default:
		return
	}
	ok = true
	return
}

// ParseOperand classifies a token and encodes it into its operand field.
func ParseOperand(token string) (opnd Operand, err error) {
	kind, ok := Classify(token)
	if !ok {
		err = ErrParseOperand(token)
		return
	}

	opnd = Operand{Kind: kind, Token: token}
	switch kind {
	case OPERAND_REGISTER:
		opnd.Field, err = EncodeRegister(token)
	case OPERAND_MEMORY:
		opnd.Field, err = EncodeMemory(token)
	case OPERAND_CONSTANT:
		opnd.Field, err = EncodeConstant(token)
	}

	return
}

func isRegister(token string) bool {
	_, ok := LookupRegister(token)
	return ok
}

func isDecimal(token string) bool {
	if len(token) == 0 {
		return false
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// EncodeConstant encodes an unsigned decimal token in its minimal width.
func EncodeConstant(token string) (fld Field, err error) {
	value, ok := new(big.Int).SetString(token, 10)
	if !isDecimal(token) || !ok {
		err = ErrParseNumber(token)
		return
	}

	width := value.BitLen()
	if width > WORD_SIZE {
		err = ErrConstantTooWide{Token: token, Width: width}
		return
	}

	fld = MinimalField(value.Uint64())
	return
}

// EncodeMemory encodes a hexadecimal memory address token, with or without
// a 0x prefix, as a MEM_ADDR_BITS wide field.
func EncodeMemory(token string) (fld Field, err error) {
	digits := token
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}

	value, ok := new(big.Int).SetString(digits, 16)
	if !ok || value.Sign() < 0 || strings.ContainsAny(digits, "+-_") {
		err = ErrParseAddress(token)
		return
	}

	if value.BitLen() > MEM_ADDR_BITS {
		err = ErrAddressRange{Token: token, Address: value.String()}
		return
	}

	fld = Field{Value: value.Uint64(), Width: MEM_ADDR_BITS}
	return
}

// EncodeRegister encodes a register name, ignoring case, as a REGISTER_BITS
// wide field.
func EncodeRegister(name string) (fld Field, err error) {
	reg, ok := LookupRegister(name)
	if !ok {
		err = ErrRegisterUnknown(name)
		return
	}

	fld = Field{Value: uint64(reg), Width: REGISTER_BITS}
	return
}
