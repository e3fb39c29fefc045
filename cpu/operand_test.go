package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	assert := assert.New(t)

	table := map[string]struct {
		kind OperandKind
		ok   bool
	}{
		"AC":    {OPERAND_REGISTER, true},
		"ir":    {OPERAND_REGISTER, true},
		"Pc":    {OPERAND_REGISTER, true},
		"0":     {OPERAND_CONSTANT, true},
		"1234":  {OPERAND_CONSTANT, true},
		"0x3FF": {OPERAND_MEMORY, true},
		"0X10":  {OPERAND_MEMORY, true},
		"x":     {OPERAND_MEMORY, true},
		"-5":    {0, false},
		"5.0":   {0, false},
		"foo":   {0, false},
		"":      {0, false},
	}

	for token, expected := range table {
		kind, ok := Classify(token)
		assert.Equal(expected.ok, ok, token)
		if expected.ok {
			assert.Equal(expected.kind, kind, token)
		}
	}
}

func TestEncodeConstant(t *testing.T) {
	assert := assert.New(t)

	fld, err := EncodeConstant("5")
	assert.NoError(err)
	assert.Equal(Field{5, 3}, fld)
	assert.Equal("101", fld.String())

	fld, err = EncodeConstant("0")
	assert.NoError(err)
	assert.Equal(Field{0, 1}, fld)

	fld, err = EncodeConstant("007")
	assert.NoError(err)
	assert.Equal(Field{7, 3}, fld)

	// Exactly WORD_SIZE bits.
	fld, err = EncodeConstant("4294967295")
	assert.NoError(err)
	assert.Equal(Field{0xffffffff, 32}, fld)

	_, err = EncodeConstant("4294967296")
	assert.ErrorIs(err, ErrConstantTooWide{Token: "4294967296", Width: 33})

	_, err = EncodeConstant("340282366920938463463374607431768211456")
	assert.ErrorIs(err, ErrConstantTooWide{Token: "340282366920938463463374607431768211456", Width: 129})

	_, err = EncodeConstant("-1")
	assert.ErrorIs(err, ErrParseNumber("-1"))

	_, err = EncodeConstant("+1")
	assert.ErrorIs(err, ErrParseNumber("+1"))
}

func TestEncodeMemory(t *testing.T) {
	assert := assert.New(t)

	fld, err := EncodeMemory("0x3FF")
	assert.NoError(err)
	assert.Equal(Field{1023, MEM_ADDR_BITS}, fld)
	assert.Equal("1111111111", fld.String())

	fld, err = EncodeMemory("0x1")
	assert.NoError(err)
	assert.Equal("0000000001", fld.String())

	fld, err = EncodeMemory("3ff")
	assert.NoError(err)
	assert.Equal(uint64(1023), fld.Value)

	_, err = EncodeMemory("0x400")
	assert.ErrorIs(err, ErrAddressRange{Token: "0x400", Address: "1024"})

	_, err = EncodeMemory("0xffffffffffffffffffff")
	assert.ErrorAs(err, &ErrAddressRange{})

	for _, bad := range []string{"0xZZ", "x10", "0x", "0x-1", "0x1_0"} {
		_, err = EncodeMemory(bad)
		assert.ErrorIs(err, ErrParseAddress(bad), bad)
	}
}

func TestEncodeRegister(t *testing.T) {
	assert := assert.New(t)

	for name, code := range map[string]uint64{"AC": 0, "dr": 1, "Cr": 2, "PC": 3, "ir": 4} {
		fld, err := EncodeRegister(name)
		assert.NoError(err)
		assert.Equal(Field{code, REGISTER_BITS}, fld, name)
	}

	_, err := EncodeRegister("R0")
	assert.ErrorIs(err, ErrRegisterUnknown("R0"))
}

func TestParseOperand(t *testing.T) {
	assert := assert.New(t)

	opnd, err := ParseOperand("dr")
	assert.NoError(err)
	assert.Equal(Operand{Kind: OPERAND_REGISTER, Token: "dr", Field: Field{1, 3}}, opnd)

	opnd, err = ParseOperand("0x3ff")
	assert.NoError(err)
	assert.Equal(Operand{Kind: OPERAND_MEMORY, Token: "0x3ff", Field: Field{1023, 10}}, opnd)

	opnd, err = ParseOperand("12")
	assert.NoError(err)
	assert.Equal(Operand{Kind: OPERAND_CONSTANT, Token: "12", Field: Field{12, 4}}, opnd)

	_, err = ParseOperand("foo")
	assert.ErrorIs(err, ErrParseOperand("foo"))

	_, err = ParseOperand("0x400")
	assert.ErrorAs(err, &ErrAddressRange{})
}

func TestOperandKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("reg", OPERAND_REGISTER.String())
	assert.Equal("mem", OPERAND_MEMORY.String())
	assert.Equal("const", OPERAND_CONSTANT.String())
	assert.Equal("OperandKind(7)", OperandKind(7).String())

	assert.Equal(Width(REGISTER_BITS), OPERAND_REGISTER.Width())
	assert.Equal(Width(MEM_ADDR_BITS), OPERAND_MEMORY.Width())
	assert.Equal(Width(0), OPERAND_CONSTANT.Width())
}

func TestRegister(t *testing.T) {
	assert := assert.New(t)

	reg, ok := LookupRegister("pc")
	assert.True(ok)
	assert.Equal(REG_PC, reg)
	assert.Equal("PC", reg.String())

	_, ok = LookupRegister("SP")
	assert.False(ok)

	assert.Equal("Register(9)", Register(9).String())
}
