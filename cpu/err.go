package cpu

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/tasm/translate"
)

var f = translate.From

var (
	// Word decode errors
	ErrWordMissing   = errors.New(f("word missing"))
	ErrWordCount     = errors.New(f("unexpected number of words"))
	ErrConstantWidth = errors.New(f("constant width unknown for a continued instruction"))
)

// ErrInstructionUnknown is a mnemonic that is not an instruction of the machine.
type ErrInstructionUnknown string

func (err ErrInstructionUnknown) Error() string {
	return f("%v is not a tasm instruction", string(err))
}

// ErrArity is an instruction given the wrong number of operands.
type ErrArity struct {
	Mnemonic string
	Required int
	Supplied int
}

func (err ErrArity) Error() string {
	return f("%v instruction requires %d arguments, but %d %v supplied.",
		err.Mnemonic, err.Required, err.Supplied, translate.Tense(err.Supplied))
}

// ErrOperandCombination is a pairing of operand kinds the instruction has no
// opcode for.
type ErrOperandCombination struct {
	Mnemonic string
	First    OperandKind
	Second   OperandKind
	Reason   string
}

func (err ErrOperandCombination) Error() string {
	if len(err.Reason) != 0 {
		return err.Reason
	}
	return f("%v instruction cannot combine a %v with a %v.",
		err.Mnemonic, err.First.Describe(), err.Second.Describe())
}

// ErrOperandInvalid is an operand token that is not a register, memory
// address or constant.
type ErrOperandInvalid struct {
	Mnemonic string
	Token    string
	Allowed  []OperandKind
}

func (err ErrOperandInvalid) Error() string {
	if len(err.Allowed) == 0 {
		return f("%v instruction cannot use '%v' as an argument.", err.Mnemonic, err.Token)
	}
	names := make([]string, len(err.Allowed))
	for n, kind := range err.Allowed {
		names[n] = kind.Describe()
	}
	return f("%v instruction cannot use '%v' as an argument, expected a %v.",
		err.Mnemonic, err.Token, strings.Join(names, f(" or a ")))
}

// ErrOperand locates an operand encoding error within an instruction.
type ErrOperand struct {
	Mnemonic string
	Index    int // 1-based operand position.
	Err      error
}

func (err *ErrOperand) Error() string {
	return f("%v argument %d: %v", err.Mnemonic, err.Index, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrConstantTooWide is a constant that needs more than WORD_SIZE bits.
type ErrConstantTooWide struct {
	Token string
	Width int
}

func (err ErrConstantTooWide) Error() string {
	return f("maximum data size is %d bits, however %v requires %d bits.", WORD_SIZE, err.Token, err.Width)
}

// ErrAddressRange is a memory address beyond MEM_MAX.
type ErrAddressRange struct {
	Token   string
	Address string // Decimal value of the address.
}

func (err ErrAddressRange) Error() string {
	return f("maximum memory address is %v, however address %v is referenced.", strconv.Itoa(MEM_MAX), err.Address)
}

// ErrRegisterUnknown is a name that is not a register.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseOperand string

func (err ErrParseOperand) Error() string {
	return f("'%v' is not a register, memory address or number", string(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseAddress string

func (err ErrParseAddress) Error() string {
	return f("'%v' is not a hexadecimal memory address", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrFieldWidth is an operand field too wide to pack.
type ErrFieldWidth struct {
	Width Width
	Limit Width
}

func (err ErrFieldWidth) Error() string {
	return f("field of %d bits exceeds the %d bits available", int(err.Width), int(err.Limit))
}

// ErrOpcode is a word carrying an opcode with no instruction form.
type ErrOpcode CodeOp

func (err ErrOpcode) Error() string {
	return f("bad opcode %06b", uint8(err))
}

// ErrSyntax locates an assembly error in the source.
type ErrSyntax struct {
	LineNo   int
	Line     string
	Mnemonic string
	Err      error
}

func (err *ErrSyntax) Error() string {
	return f("line %d: %v", err.LineNo, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}
