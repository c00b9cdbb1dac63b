package cpu

// addrMode names a 6502 addressing mode. Page-boundary cycle penalties
// are not tracked since this core is instruction-level, not cycle
// accurate.
type addrMode int

const (
	modeImplied addrMode = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndexedIndirect // (zp,X)
	modeIndirectIndexed // (zp),Y
	modeRelative
)

// operandAddr resolves the effective address for a write or
// read-modify-write instruction. modeAccumulator and modeImplied have
// no address and must be handled by the caller.
func (c *Chip) operandAddr(mode addrMode) (uint16, error) {
	switch mode {
	case modeZeroPage:
		b, err := c.fetch()
		return uint16(b), err
	case modeZeroPageX:
		b, err := c.fetch()
		return uint16(b + c.X), err
	case modeZeroPageY:
		b, err := c.fetch()
		return uint16(b + c.Y), err
	case modeAbsolute:
		return c.fetchAbsolute()
	case modeAbsoluteX:
		addr, err := c.fetchAbsolute()
		return addr + uint16(c.X), err
	case modeAbsoluteY:
		addr, err := c.fetchAbsolute()
		return addr + uint16(c.Y), err
	case modeIndirect:
		ptr, err := c.fetchAbsolute()
		if err != nil {
			return 0, err
		}
		return c.readIndirectWithPageWrapBug(ptr)
	case modeIndexedIndirect:
		zp, err := c.fetch()
		if err != nil {
			return 0, err
		}
		ptr := uint16(zp + c.X)
		return c.readZPPointer(ptr)
	case modeIndirectIndexed:
		zp, err := c.fetch()
		if err != nil {
			return 0, err
		}
		base, err := c.readZPPointer(uint16(zp))
		if err != nil {
			return 0, err
		}
		return base + uint16(c.Y), nil
	default:
		return 0, &InvalidAddrModeError{Mode: mode}
	}
}

func (c *Chip) fetchAbsolute() (uint16, error) {
	lo, err := c.fetch()
	if err != nil {
		return 0, err
	}
	hi, err := c.fetch()
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readZPPointer reads a little-endian pointer out of zero page,
// wrapping within page zero the way the hardware does for (zp,X) and
// (zp),Y addressing.
func (c *Chip) readZPPointer(zp uint16) (uint16, error) {
	lo, err := c.mem.Read(zp & 0x00FF)
	if err != nil {
		return 0, err
	}
	hi, err := c.mem.Read((zp + 1) & 0x00FF)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readIndirectWithPageWrapBug reproduces JMP (indirect)'s hardware
// bug: when the pointer's low byte is 0xFF, the high byte is fetched
// from the start of the same page instead of the next page.
func (c *Chip) readIndirectWithPageWrapBug(ptr uint16) (uint16, error) {
	lo, err := c.mem.Read(ptr)
	if err != nil {
		return 0, err
	}
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	hi, err := c.mem.Read(hiAddr)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// readOperand resolves the operand value for a read-only instruction
// (ADC, AND, CMP, ...), handling immediate mode directly.
func (c *Chip) readOperand(mode addrMode) (uint8, error) {
	if mode == modeImmediate {
		return c.fetch()
	}
	addr, err := c.operandAddr(mode)
	if err != nil {
		return 0, err
	}
	return c.mem.Read(addr)
}

// InvalidAddrModeError reports a mode that has no addressable
// location (accumulator or implied) being resolved as one, which
// indicates a bug in the opcode table, not a runtime fault.
type InvalidAddrModeError struct {
	Mode addrMode
}

func (e *InvalidAddrModeError) Error() string {
	return "cpu: invalid addressing mode resolution"
}
