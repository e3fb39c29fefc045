// Package cpu defines the instruction words of the toy machine and implements
// the tasm assembler for it.
//
// The machine has five 3-bit addressable registers (AC, DR, CR, PC, IR), a
// 10-bit memory address space, and 32-bit instruction words. Each word carries
// a 6-bit opcode in its high bits followed by the operand fields. When the
// operand fields do not fit in the 26 bits left after the opcode, the
// instruction spills into a continuation word, and the first word is tagged
// with the reserved OP_EXTEND opcode.
//
// The assembler is single pass and fail-fast: lines are assembled strictly in
// order and the first error ends the run.
package cpu
