package cpu

import (
	"fmt"
	"math/bits"
)

const (
	WORD_SIZE     = 32                      // Bits in a machine word.
	OPCODE_BITS   = 6                       // Bits in an opcode.
	PAYLOAD_BITS  = WORD_SIZE - OPCODE_BITS // Bits following the opcode.
	REGISTER_BITS = 3                       // Bits in a register field.
	MEM_ADDR_BITS = 10                      // Bits in a memory address field.
	MEM_MAX       = (1 << MEM_ADDR_BITS) - 1
)

// Width is the number of bits in a field.
type Width uint8

// Mask returns the mask selecting the low w bits.
func (w Width) Mask() uint64 {
	return (uint64(1) << w) - 1
}

// Field is an operand value together with its encoded width.
type Field struct {
	Value uint64
	Width Width
}

// MinimalField encodes a value in as few bits as possible. Zero still
// occupies one bit.
func MinimalField(value uint64) Field {
	width := bits.Len64(value)
	if width == 0 {
		width = 1
	}
	return Field{Value: value, Width: Width(width)}
}

// Bits returns the field value limited to its width.
func (fld Field) Bits() uint64 {
	return fld.Value & fld.Width.Mask()
}

// String returns the field as zero-padded binary digits.
func (fld Field) String() string {
	return fmt.Sprintf("%0*b", int(fld.Width), fld.Bits())
}

// Word is a single 32-bit machine word.
type Word uint32

// MakeWord builds a word from an opcode and a right-aligned payload.
func MakeWord(op CodeOp, payload uint64) Word {
	return Word(uint32(op)<<PAYLOAD_BITS | uint32(payload&Width(PAYLOAD_BITS).Mask()))
}

// Opcode returns the opcode bits of the word.
func (word Word) Opcode() CodeOp {
	return CodeOp(word >> PAYLOAD_BITS)
}

// Payload returns the bits following the opcode.
func (word Word) Payload() uint64 {
	return uint64(word) & Width(PAYLOAD_BITS).Mask()
}

// Bits returns the word as 32 binary digits.
func (word Word) Bits() string {
	return fmt.Sprintf("%032b", uint32(word))
}

// String returns the word as a 0b-prefixed binary literal.
func (word Word) String() string {
	return "0b" + word.Bits()
}

// Pack assembles an opcode and its two operand fields into machine words.
//
// The second field is right-aligned, with unused high bits zero. If the fields
// do not fit, the first word carries OP_EXTEND, the first field and the high
// bits of the second field, and a continuation word carries the real opcode
// and the remaining low bits of the second field.
func Pack(op CodeOp, first, second Field) (words []Word, err error) {
	if first.Width > PAYLOAD_BITS {
		err = ErrFieldWidth{Width: first.Width, Limit: PAYLOAD_BITS}
		return
	}
	if second.Width > WORD_SIZE {
		err = ErrFieldWidth{Width: second.Width, Limit: WORD_SIZE}
		return
	}

	extra := OPCODE_BITS + int(first.Width) + int(second.Width) - WORD_SIZE
	if extra > PAYLOAD_BITS {
		err = ErrFieldWidth{Width: Width(extra), Limit: PAYLOAD_BITS}
		return
	}

	head := first.Bits() << (PAYLOAD_BITS - first.Width)

	if extra <= 0 {
		words = []Word{MakeWord(op, head|second.Bits())}
		return
	}

	high := second.Bits() >> extra
	low := second.Bits() & Width(extra).Mask()
	words = []Word{
		MakeWord(OP_EXTEND, head|high),
		MakeWord(op, low),
	}

	return
}

// Unpack is the inverse of Pack, given the widths of both operand fields.
func Unpack(words []Word, firstWidth, secondWidth Width) (op CodeOp, first, second Field, err error) {
	if len(words) == 0 {
		err = ErrWordMissing
		return
	}
	if firstWidth > PAYLOAD_BITS {
		err = ErrFieldWidth{Width: firstWidth, Limit: PAYLOAD_BITS}
		return
	}

	extra := OPCODE_BITS + int(firstWidth) + int(secondWidth) - WORD_SIZE

	lead := words[0]
	first = Field{
		Value: (lead.Payload() >> (PAYLOAD_BITS - firstWidth)) & firstWidth.Mask(),
		Width: firstWidth,
	}
	second.Width = secondWidth

	if lead.Opcode() != OP_EXTEND {
		if len(words) != 1 {
			err = ErrWordCount
			return
		}
		if extra > 0 {
			err = ErrFieldWidth{Width: firstWidth + secondWidth, Limit: PAYLOAD_BITS}
			return
		}
		op = lead.Opcode()
		second.Value = lead.Payload() & secondWidth.Mask()
		return
	}

	if len(words) != 2 {
		err = ErrWordCount
		return
	}
	if extra <= 0 || extra > PAYLOAD_BITS {
		err = ErrFieldWidth{Width: firstWidth + secondWidth, Limit: PAYLOAD_BITS}
		return
	}

	tail := words[1]
	op = tail.Opcode()
	high := lead.Payload() & Width(PAYLOAD_BITS-int(firstWidth)).Mask()
	low := tail.Payload() & Width(extra).Mask()
	second.Value = high<<extra | low

	return
}

// Decode recovers the opcode and operand fields of one assembled
// instruction, deriving the field widths from the opcode.
//
// constant is the width of a constant second operand. Zero selects the
// minimal width of the decoded value, which only works when the instruction
// was not split into a continuation word.
func Decode(words []Word, constant Width) (op CodeOp, first, second Field, err error) {
	if len(words) == 0 {
		err = ErrWordMissing
		return
	}

	op = words[0].Opcode()
	if op == OP_EXTEND {
		if len(words) != 2 {
			err = ErrWordCount
			return
		}
		op = words[1].Opcode()
	}

	form, ok := op.Form()
	if !ok {
		err = ErrOpcode(op)
		return
	}

	firstWidth := form.First.Width()
	secondWidth := form.Second.Width()
	if form.Second == OPERAND_CONSTANT {
		secondWidth = constant
		if secondWidth == 0 {
			if len(words) != 1 {
				err = ErrConstantWidth
				return
			}
			secondWidth = Width(PAYLOAD_BITS) - firstWidth
		}
	}

	op, first, second, err = Unpack(words, firstWidth, secondWidth)
	if err != nil {
		return
	}

	if form.Second == OPERAND_CONSTANT && constant == 0 {
		second = MinimalField(second.Value)
	}

	return
}
