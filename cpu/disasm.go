package cpu

import "fmt"

// operandWidth returns how many bytes of operand follow the opcode
// byte for mode, used by Disassemble to know how far to advance.
func operandWidth(mode addrMode) int {
	switch mode {
	case modeImplied, modeAccumulator:
		return 0
	case modeImmediate, modeZeroPage, modeZeroPageX, modeZeroPageY,
		modeIndexedIndirect, modeIndirectIndexed, modeRelative:
		return 1
	default:
		return 2
	}
}

// Disassemble formats the instruction at pc as a mnemonic plus
// operand, without executing it, and returns how many bytes forward
// the next instruction starts. Unknown opcodes disassemble as "???"
// and advance by one byte, mirroring how a monitor's hex dump would
// skip past something it can't decode.
func Disassemble(mem interface {
	Read(addr uint16) (uint8, error)
}, pc uint16) (string, int) {
	op, err := mem.Read(pc)
	if err != nil {
		return fmt.Sprintf("%04X: <read error>", pc), 1
	}
	def, ok := opcodes[op]
	if !ok {
		return fmt.Sprintf("%04X: %02X       ???", pc, op), 1
	}

	width := operandWidth(def.mode)
	var operand string
	switch width {
	case 1:
		b, _ := mem.Read(pc + 1)
		operand = formatOperand(def.mode, b, pc)
	case 2:
		lo, _ := mem.Read(pc + 1)
		hi, _ := mem.Read(pc + 2)
		operand = formatOperand(def.mode, uint16(hi)<<8|uint16(lo), pc)
	default:
		operand = ""
	}
	return fmt.Sprintf("%04X: %-4s %s", pc, def.insn.String(), operand), 1 + width
}

func formatOperand(mode addrMode, val any, pc uint16) string {
	switch mode {
	case modeImmediate:
		return fmt.Sprintf("#$%02X", val)
	case modeZeroPage:
		return fmt.Sprintf("$%02X", val)
	case modeZeroPageX:
		return fmt.Sprintf("$%02X,X", val)
	case modeZeroPageY:
		return fmt.Sprintf("$%02X,Y", val)
	case modeIndexedIndirect:
		return fmt.Sprintf("($%02X,X)", val)
	case modeIndirectIndexed:
		return fmt.Sprintf("($%02X),Y", val)
	case modeAbsolute:
		return fmt.Sprintf("$%04X", val)
	case modeAbsoluteX:
		return fmt.Sprintf("$%04X,X", val)
	case modeAbsoluteY:
		return fmt.Sprintf("$%04X,Y", val)
	case modeIndirect:
		return fmt.Sprintf("($%04X)", val)
	case modeRelative:
		offset := int8(val.(uint8))
		target := uint16(int32(pc) + 2 + int32(offset))
		return fmt.Sprintf("$%04X", target)
	default:
		return ""
	}
}
