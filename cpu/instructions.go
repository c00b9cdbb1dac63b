package cpu

// opcodeDef binds one opcode byte to its mnemonic, addressing mode,
// and execution body.
type opcodeDef struct {
	insn Insn
	mode addrMode
	run  func(c *Chip, mode addrMode) (Insn, error)
}

func (c *Chip) adc(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnADC, err
	}
	carry := c.P & PCarry

	if c.P&PDecimal != 0 {
		// BCD add-with-carry. See http://6502.org/tutorials/decimal_mode.html.
		aLo := (c.A & 0x0F) + (val & 0x0F) + carry
		if aLo >= 0x0A {
			aLo = ((aLo + 0x06) & 0x0F) + 0x10
		}
		sum := uint16(c.A&0xF0) + uint16(val&0xF0) + uint16(aLo)
		if sum >= 0xA0 {
			sum += 0x60
		}
		res := uint8(sum & 0xFF)
		seq := (c.A & 0xF0) + (val & 0xF0) + aLo
		bin := c.A + val + carry
		c.overflowCheck(c.A, val, seq)
		c.carryCheck(sum)
		c.negativeCheck(seq)
		c.zeroCheck(bin)
		c.A = res
		return InsnADC, nil
	}

	sum := c.A + val + carry
	c.overflowCheck(c.A, val, sum)
	c.carryCheck(uint16(c.A) + uint16(val) + uint16(carry))
	c.loadRegister(&c.A, sum)
	return InsnADC, nil
}

func (c *Chip) sbc(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnSBC, err
	}
	if c.P&PDecimal != 0 {
		carry := c.P & PCarry
		aLo := int8(c.A&0x0F) - int8(val&0x0F) + int8(carry) - 1
		if aLo < 0 {
			aLo = ((aLo - 0x06) & 0x0F) - 0x10
		}
		sum := int16(c.A&0xF0) - int16(val&0xF0) + int16(aLo)
		if sum < 0x0000 {
			sum -= 0x60
		}
		res := uint8(sum & 0xFF)

		bin := c.A + ^val + carry
		c.overflowCheck(c.A, ^val, bin)
		c.negativeCheck(bin)
		c.carryCheck(uint16(c.A) + uint16(^val) + uint16(carry))
		c.zeroCheck(bin)
		c.A = res
		return InsnSBC, nil
	}
	carry := c.P & PCarry
	sum := c.A + ^val + carry
	c.overflowCheck(c.A, ^val, sum)
	c.carryCheck(uint16(c.A) + uint16(^val) + uint16(carry))
	c.loadRegister(&c.A, sum)
	return InsnSBC, nil
}

func (c *Chip) and(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnAND, err
	}
	c.loadRegister(&c.A, c.A&val)
	return InsnAND, nil
}

func (c *Chip) ora(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnORA, err
	}
	c.loadRegister(&c.A, c.A|val)
	return InsnORA, nil
}

func (c *Chip) eor(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnEOR, err
	}
	c.loadRegister(&c.A, c.A^val)
	return InsnEOR, nil
}

func (c *Chip) bit(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnBIT, err
	}
	c.P &^= PNegative | POverflow
	c.P |= val & (PNegative | POverflow)
	c.zeroCheck(c.A & val)
	return InsnBIT, nil
}

func (c *Chip) shiftLeft(mode addrMode, rotate bool) (uint8, error) {
	if mode == modeAccumulator {
		in := c.A
		carryIn := uint8(0)
		if rotate && c.P&PCarry != 0 {
			carryIn = 1
		}
		c.carryCheck(uint16(in) << 1)
		out := in<<1 | carryIn
		c.loadRegister(&c.A, out)
		return out, nil
	}
	addr, err := c.operandAddr(mode)
	if err != nil {
		return 0, err
	}
	in, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	carryIn := uint8(0)
	if rotate && c.P&PCarry != 0 {
		carryIn = 1
	}
	c.carryCheck(uint16(in) << 1)
	out := in<<1 | carryIn
	c.zeroCheck(out)
	c.negativeCheck(out)
	return out, c.mem.Write(addr, out)
}

func (c *Chip) shiftRight(mode addrMode, rotate bool) (uint8, error) {
	if mode == modeAccumulator {
		in := c.A
		carryIn := uint8(0)
		if rotate && c.P&PCarry != 0 {
			carryIn = 0x80
		}
		c.P &^= PCarry
		if in&0x01 != 0 {
			c.P |= PCarry
		}
		out := in>>1 | carryIn
		c.loadRegister(&c.A, out)
		return out, nil
	}
	addr, err := c.operandAddr(mode)
	if err != nil {
		return 0, err
	}
	in, err := c.mem.Read(addr)
	if err != nil {
		return 0, err
	}
	carryIn := uint8(0)
	if rotate && c.P&PCarry != 0 {
		carryIn = 0x80
	}
	c.P &^= PCarry
	if in&0x01 != 0 {
		c.P |= PCarry
	}
	out := in>>1 | carryIn
	c.zeroCheck(out)
	c.negativeCheck(out)
	return out, c.mem.Write(addr, out)
}

func (c *Chip) asl(mode addrMode) (Insn, error) { _, err := c.shiftLeft(mode, false); return InsnASL, err }
func (c *Chip) rol(mode addrMode) (Insn, error) { _, err := c.shiftLeft(mode, true); return InsnROL, err }
func (c *Chip) lsr(mode addrMode) (Insn, error) { _, err := c.shiftRight(mode, false); return InsnLSR, err }
func (c *Chip) ror(mode addrMode) (Insn, error) { _, err := c.shiftRight(mode, true); return InsnROR, err }

func (c *Chip) compare(reg uint8, mode addrMode) error {
	val, err := c.readOperand(mode)
	if err != nil {
		return err
	}
	diff := uint16(reg) - uint16(val)
	c.P &^= PCarry
	if reg >= val {
		c.P |= PCarry
	}
	c.zeroCheck(uint8(diff))
	c.negativeCheck(uint8(diff))
	return nil
}

func (c *Chip) cmp(mode addrMode) (Insn, error) { return InsnCMP, c.compare(c.A, mode) }
func (c *Chip) cpx(mode addrMode) (Insn, error) { return InsnCPX, c.compare(c.X, mode) }
func (c *Chip) cpy(mode addrMode) (Insn, error) { return InsnCPY, c.compare(c.Y, mode) }

func (c *Chip) incDec(mode addrMode, delta uint8) error {
	addr, err := c.operandAddr(mode)
	if err != nil {
		return err
	}
	val, err := c.mem.Read(addr)
	if err != nil {
		return err
	}
	val += delta
	c.zeroCheck(val)
	c.negativeCheck(val)
	return c.mem.Write(addr, val)
}

func (c *Chip) inc(mode addrMode) (Insn, error) { return InsnINC, c.incDec(mode, 1) }
func (c *Chip) dec(mode addrMode) (Insn, error) { return InsnDEC, c.incDec(mode, 0xFF) }

func (c *Chip) inx(addrMode) (Insn, error) { c.loadRegister(&c.X, c.X+1); return InsnINX, nil }
func (c *Chip) iny(addrMode) (Insn, error) { c.loadRegister(&c.Y, c.Y+1); return InsnINY, nil }
func (c *Chip) dex(addrMode) (Insn, error) { c.loadRegister(&c.X, c.X-1); return InsnDEX, nil }
func (c *Chip) dey(addrMode) (Insn, error) { c.loadRegister(&c.Y, c.Y-1); return InsnDEY, nil }

func (c *Chip) lda(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnLDA, err
	}
	c.loadRegister(&c.A, val)
	return InsnLDA, nil
}

func (c *Chip) ldx(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnLDX, err
	}
	c.loadRegister(&c.X, val)
	return InsnLDX, nil
}

func (c *Chip) ldy(mode addrMode) (Insn, error) {
	val, err := c.readOperand(mode)
	if err != nil {
		return InsnLDY, err
	}
	c.loadRegister(&c.Y, val)
	return InsnLDY, nil
}

func (c *Chip) sta(mode addrMode) (Insn, error) {
	addr, err := c.operandAddr(mode)
	if err != nil {
		return InsnSTA, err
	}
	return InsnSTA, c.mem.Write(addr, c.A)
}

func (c *Chip) stx(mode addrMode) (Insn, error) {
	addr, err := c.operandAddr(mode)
	if err != nil {
		return InsnSTX, err
	}
	return InsnSTX, c.mem.Write(addr, c.X)
}

func (c *Chip) sty(mode addrMode) (Insn, error) {
	addr, err := c.operandAddr(mode)
	if err != nil {
		return InsnSTY, err
	}
	return InsnSTY, c.mem.Write(addr, c.Y)
}

func (c *Chip) tax(addrMode) (Insn, error) { c.loadRegister(&c.X, c.A); return InsnTAX, nil }
func (c *Chip) tay(addrMode) (Insn, error) { c.loadRegister(&c.Y, c.A); return InsnTAY, nil }
func (c *Chip) txa(addrMode) (Insn, error) { c.loadRegister(&c.A, c.X); return InsnTXA, nil }
func (c *Chip) tya(addrMode) (Insn, error) { c.loadRegister(&c.A, c.Y); return InsnTYA, nil }
func (c *Chip) tsx(addrMode) (Insn, error) { c.loadRegister(&c.X, c.S); return InsnTSX, nil }
func (c *Chip) txs(addrMode) (Insn, error) { c.S = c.X; return InsnTXS, nil }

func (c *Chip) pha(addrMode) (Insn, error) { return InsnPHA, c.pushStack(c.A) }
func (c *Chip) pla(addrMode) (Insn, error) {
	val, err := c.popStack()
	if err != nil {
		return InsnPLA, err
	}
	c.loadRegister(&c.A, val)
	return InsnPLA, nil
}
func (c *Chip) php(addrMode) (Insn, error) {
	return InsnPHP, c.pushStack(c.P | PReserved | PBreak)
}
func (c *Chip) plp(addrMode) (Insn, error) {
	val, err := c.popStack()
	if err != nil {
		return InsnPLP, err
	}
	c.P = (val | PReserved) &^ PBreak
	return InsnPLP, nil
}

func (c *Chip) clc(addrMode) (Insn, error) { c.P &^= PCarry; return InsnCLC, nil }
func (c *Chip) sec(addrMode) (Insn, error) { c.P |= PCarry; return InsnSEC, nil }
func (c *Chip) cld(addrMode) (Insn, error) { c.P &^= PDecimal; return InsnCLD, nil }
func (c *Chip) sed(addrMode) (Insn, error) { c.P |= PDecimal; return InsnSED, nil }
func (c *Chip) cli(addrMode) (Insn, error) { c.P &^= PInterrupt; return InsnCLI, nil }
func (c *Chip) sei(addrMode) (Insn, error) { c.P |= PInterrupt; return InsnSEI, nil }
func (c *Chip) clv(addrMode) (Insn, error) { c.P &^= POverflow; return InsnCLV, nil }
func (c *Chip) nop(addrMode) (Insn, error) { return InsnNOP, nil }

func (c *Chip) jmp(mode addrMode) (Insn, error) {
	addr, err := c.operandAddr(mode)
	if err != nil {
		return InsnJMP, err
	}
	c.PC = addr
	return InsnJMP, nil
}

func (c *Chip) jsr(addrMode) (Insn, error) {
	addr, err := c.fetchAbsolute()
	if err != nil {
		return InsnJSR, err
	}
	ret := c.PC - 1
	if err := c.pushStack(uint8(ret >> 8)); err != nil {
		return InsnJSR, err
	}
	if err := c.pushStack(uint8(ret)); err != nil {
		return InsnJSR, err
	}
	c.PC = addr
	return InsnJSR, nil
}

func (c *Chip) rts(addrMode) (Insn, error) {
	lo, err := c.popStack()
	if err != nil {
		return InsnRTS, err
	}
	hi, err := c.popStack()
	if err != nil {
		return InsnRTS, err
	}
	c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	return InsnRTS, nil
}

func (c *Chip) rti(addrMode) (Insn, error) {
	p, err := c.popStack()
	if err != nil {
		return InsnRTI, err
	}
	lo, err := c.popStack()
	if err != nil {
		return InsnRTI, err
	}
	hi, err := c.popStack()
	if err != nil {
		return InsnRTI, err
	}
	c.P = (p | PReserved) &^ PBreak
	c.PC = uint16(hi)<<8 | uint16(lo)
	return InsnRTI, nil
}

func (c *Chip) brk(addrMode) (Insn, error) {
	c.PC++ // BRK's operand byte is a signature byte, skipped on return.
	if err := c.pushStack(uint8(c.PC >> 8)); err != nil {
		return InsnBRK, err
	}
	if err := c.pushStack(uint8(c.PC)); err != nil {
		return InsnBRK, err
	}
	if err := c.pushStack(c.P | PReserved | PBreak); err != nil {
		return InsnBRK, err
	}
	c.P |= PInterrupt
	lo, err := c.mem.Read(IRQVector)
	if err != nil {
		return InsnBRK, err
	}
	hi, err := c.mem.Read(IRQVector + 1)
	if err != nil {
		return InsnBRK, err
	}
	c.PC = uint16(hi)<<8 | uint16(lo)
	return InsnBRK, nil
}

// branch implements the conditional branch family: Bxx rel. cond is
// evaluated against the current P before the offset byte is consumed.
func (c *Chip) branch(insn Insn, cond bool) (Insn, error) {
	offset, err := c.fetch()
	if err != nil {
		return insn, err
	}
	if cond {
		c.PC = uint16(int32(c.PC) + int32(int8(offset)))
	}
	return insn, nil
}

func (c *Chip) bcc(addrMode) (Insn, error) { return c.branch(InsnBCC, c.P&PCarry == 0) }
func (c *Chip) bcs(addrMode) (Insn, error) { return c.branch(InsnBCS, c.P&PCarry != 0) }
func (c *Chip) beq(addrMode) (Insn, error) { return c.branch(InsnBEQ, c.P&PZero != 0) }
func (c *Chip) bne(addrMode) (Insn, error) { return c.branch(InsnBNE, c.P&PZero == 0) }
func (c *Chip) bmi(addrMode) (Insn, error) { return c.branch(InsnBMI, c.P&PNegative != 0) }
func (c *Chip) bpl(addrMode) (Insn, error) { return c.branch(InsnBPL, c.P&PNegative == 0) }
func (c *Chip) bvc(addrMode) (Insn, error) { return c.branch(InsnBVC, c.P&POverflow == 0) }
func (c *Chip) bvs(addrMode) (Insn, error) { return c.branch(InsnBVS, c.P&POverflow != 0) }
