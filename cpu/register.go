package cpu

import (
	"fmt"
	"strings"
)

// Register is a machine register index.
type Register int

const (
	REG_AC = Register(0) // AC
	REG_DR = Register(1) // DR
	REG_CR = Register(2) // CR
	REG_PC = Register(3) // PC
	REG_IR = Register(4) // IR
)

// registerMap is a map of upper-case register names to register codes.
var registerMap = map[string]Register{
	"AC": REG_AC,
	"DR": REG_DR,
	"CR": REG_CR,
	"PC": REG_PC,
	"IR": REG_IR,
}

// LookupRegister finds a register by name, ignoring case.
func LookupRegister(name string) (reg Register, ok bool) {
	reg, ok = registerMap[strings.ToUpper(name)]
	return
}

func (reg Register) String() string {
	for name, code := range registerMap {
		if code == reg {
			return name
		}
	}
	return fmt.Sprintf("Register(%d)", int(reg))
}
