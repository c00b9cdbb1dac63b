package cpu

// opcodes maps each of the 151 documented opcode bytes to its
// mnemonic, addressing mode and execution body. Byte values with no
// entry decode to UnimplementedOpcodeError, matching this core's
// Non-goal of reproducing undocumented-opcode behavior.
var opcodes = map[uint8]opcodeDef{
	0x69: {InsnADC, modeImmediate, (*Chip).adc},
	0x65: {InsnADC, modeZeroPage, (*Chip).adc},
	0x75: {InsnADC, modeZeroPageX, (*Chip).adc},
	0x6D: {InsnADC, modeAbsolute, (*Chip).adc},
	0x7D: {InsnADC, modeAbsoluteX, (*Chip).adc},
	0x79: {InsnADC, modeAbsoluteY, (*Chip).adc},
	0x61: {InsnADC, modeIndexedIndirect, (*Chip).adc},
	0x71: {InsnADC, modeIndirectIndexed, (*Chip).adc},

	0x29: {InsnAND, modeImmediate, (*Chip).and},
	0x25: {InsnAND, modeZeroPage, (*Chip).and},
	0x35: {InsnAND, modeZeroPageX, (*Chip).and},
	0x2D: {InsnAND, modeAbsolute, (*Chip).and},
	0x3D: {InsnAND, modeAbsoluteX, (*Chip).and},
	0x39: {InsnAND, modeAbsoluteY, (*Chip).and},
	0x21: {InsnAND, modeIndexedIndirect, (*Chip).and},
	0x31: {InsnAND, modeIndirectIndexed, (*Chip).and},

	0x0A: {InsnASL, modeAccumulator, (*Chip).asl},
	0x06: {InsnASL, modeZeroPage, (*Chip).asl},
	0x16: {InsnASL, modeZeroPageX, (*Chip).asl},
	0x0E: {InsnASL, modeAbsolute, (*Chip).asl},
	0x1E: {InsnASL, modeAbsoluteX, (*Chip).asl},

	0x90: {InsnBCC, modeRelative, (*Chip).bcc},
	0xB0: {InsnBCS, modeRelative, (*Chip).bcs},
	0xF0: {InsnBEQ, modeRelative, (*Chip).beq},
	0xD0: {InsnBNE, modeRelative, (*Chip).bne},
	0x30: {InsnBMI, modeRelative, (*Chip).bmi},
	0x10: {InsnBPL, modeRelative, (*Chip).bpl},
	0x50: {InsnBVC, modeRelative, (*Chip).bvc},
	0x70: {InsnBVS, modeRelative, (*Chip).bvs},

	0x24: {InsnBIT, modeZeroPage, (*Chip).bit},
	0x2C: {InsnBIT, modeAbsolute, (*Chip).bit},

	0x00: {InsnBRK, modeImplied, (*Chip).brk},

	0x18: {InsnCLC, modeImplied, (*Chip).clc},
	0xD8: {InsnCLD, modeImplied, (*Chip).cld},
	0x58: {InsnCLI, modeImplied, (*Chip).cli},
	0xB8: {InsnCLV, modeImplied, (*Chip).clv},

	0xC9: {InsnCMP, modeImmediate, (*Chip).cmp},
	0xC5: {InsnCMP, modeZeroPage, (*Chip).cmp},
	0xD5: {InsnCMP, modeZeroPageX, (*Chip).cmp},
	0xCD: {InsnCMP, modeAbsolute, (*Chip).cmp},
	0xDD: {InsnCMP, modeAbsoluteX, (*Chip).cmp},
	0xD9: {InsnCMP, modeAbsoluteY, (*Chip).cmp},
	0xC1: {InsnCMP, modeIndexedIndirect, (*Chip).cmp},
	0xD1: {InsnCMP, modeIndirectIndexed, (*Chip).cmp},

	0xE0: {InsnCPX, modeImmediate, (*Chip).cpx},
	0xE4: {InsnCPX, modeZeroPage, (*Chip).cpx},
	0xEC: {InsnCPX, modeAbsolute, (*Chip).cpx},

	0xC0: {InsnCPY, modeImmediate, (*Chip).cpy},
	0xC4: {InsnCPY, modeZeroPage, (*Chip).cpy},
	0xCC: {InsnCPY, modeAbsolute, (*Chip).cpy},

	0xC6: {InsnDEC, modeZeroPage, (*Chip).dec},
	0xD6: {InsnDEC, modeZeroPageX, (*Chip).dec},
	0xCE: {InsnDEC, modeAbsolute, (*Chip).dec},
	0xDE: {InsnDEC, modeAbsoluteX, (*Chip).dec},

	0xCA: {InsnDEX, modeImplied, (*Chip).dex},
	0x88: {InsnDEY, modeImplied, (*Chip).dey},

	0x49: {InsnEOR, modeImmediate, (*Chip).eor},
	0x45: {InsnEOR, modeZeroPage, (*Chip).eor},
	0x55: {InsnEOR, modeZeroPageX, (*Chip).eor},
	0x4D: {InsnEOR, modeAbsolute, (*Chip).eor},
	0x5D: {InsnEOR, modeAbsoluteX, (*Chip).eor},
	0x59: {InsnEOR, modeAbsoluteY, (*Chip).eor},
	0x41: {InsnEOR, modeIndexedIndirect, (*Chip).eor},
	0x51: {InsnEOR, modeIndirectIndexed, (*Chip).eor},

	0xE6: {InsnINC, modeZeroPage, (*Chip).inc},
	0xF6: {InsnINC, modeZeroPageX, (*Chip).inc},
	0xEE: {InsnINC, modeAbsolute, (*Chip).inc},
	0xFE: {InsnINC, modeAbsoluteX, (*Chip).inc},

	0xE8: {InsnINX, modeImplied, (*Chip).inx},
	0xC8: {InsnINY, modeImplied, (*Chip).iny},

	0x4C: {InsnJMP, modeAbsolute, (*Chip).jmp},
	0x6C: {InsnJMP, modeIndirect, (*Chip).jmp},

	0x20: {InsnJSR, modeAbsolute, (*Chip).jsr},

	0xA9: {InsnLDA, modeImmediate, (*Chip).lda},
	0xA5: {InsnLDA, modeZeroPage, (*Chip).lda},
	0xB5: {InsnLDA, modeZeroPageX, (*Chip).lda},
	0xAD: {InsnLDA, modeAbsolute, (*Chip).lda},
	0xBD: {InsnLDA, modeAbsoluteX, (*Chip).lda},
	0xB9: {InsnLDA, modeAbsoluteY, (*Chip).lda},
	0xA1: {InsnLDA, modeIndexedIndirect, (*Chip).lda},
	0xB1: {InsnLDA, modeIndirectIndexed, (*Chip).lda},

	0xA2: {InsnLDX, modeImmediate, (*Chip).ldx},
	0xA6: {InsnLDX, modeZeroPage, (*Chip).ldx},
	0xB6: {InsnLDX, modeZeroPageY, (*Chip).ldx},
	0xAE: {InsnLDX, modeAbsolute, (*Chip).ldx},
	0xBE: {InsnLDX, modeAbsoluteY, (*Chip).ldx},

	0xA0: {InsnLDY, modeImmediate, (*Chip).ldy},
	0xA4: {InsnLDY, modeZeroPage, (*Chip).ldy},
	0xB4: {InsnLDY, modeZeroPageX, (*Chip).ldy},
	0xAC: {InsnLDY, modeAbsolute, (*Chip).ldy},
	0xBC: {InsnLDY, modeAbsoluteX, (*Chip).ldy},

	0x4A: {InsnLSR, modeAccumulator, (*Chip).lsr},
	0x46: {InsnLSR, modeZeroPage, (*Chip).lsr},
	0x56: {InsnLSR, modeZeroPageX, (*Chip).lsr},
	0x4E: {InsnLSR, modeAbsolute, (*Chip).lsr},
	0x5E: {InsnLSR, modeAbsoluteX, (*Chip).lsr},

	0xEA: {InsnNOP, modeImplied, (*Chip).nop},

	0x09: {InsnORA, modeImmediate, (*Chip).ora},
	0x05: {InsnORA, modeZeroPage, (*Chip).ora},
	0x15: {InsnORA, modeZeroPageX, (*Chip).ora},
	0x0D: {InsnORA, modeAbsolute, (*Chip).ora},
	0x1D: {InsnORA, modeAbsoluteX, (*Chip).ora},
	0x19: {InsnORA, modeAbsoluteY, (*Chip).ora},
	0x01: {InsnORA, modeIndexedIndirect, (*Chip).ora},
	0x11: {InsnORA, modeIndirectIndexed, (*Chip).ora},

	0x48: {InsnPHA, modeImplied, (*Chip).pha},
	0x08: {InsnPHP, modeImplied, (*Chip).php},
	0x68: {InsnPLA, modeImplied, (*Chip).pla},
	0x28: {InsnPLP, modeImplied, (*Chip).plp},

	0x2A: {InsnROL, modeAccumulator, (*Chip).rol},
	0x26: {InsnROL, modeZeroPage, (*Chip).rol},
	0x36: {InsnROL, modeZeroPageX, (*Chip).rol},
	0x2E: {InsnROL, modeAbsolute, (*Chip).rol},
	0x3E: {InsnROL, modeAbsoluteX, (*Chip).rol},

	0x6A: {InsnROR, modeAccumulator, (*Chip).ror},
	0x66: {InsnROR, modeZeroPage, (*Chip).ror},
	0x76: {InsnROR, modeZeroPageX, (*Chip).ror},
	0x6E: {InsnROR, modeAbsolute, (*Chip).ror},
	0x7E: {InsnROR, modeAbsoluteX, (*Chip).ror},

	0x40: {InsnRTI, modeImplied, (*Chip).rti},
	0x60: {InsnRTS, modeImplied, (*Chip).rts},

	0xE9: {InsnSBC, modeImmediate, (*Chip).sbc},
	0xE5: {InsnSBC, modeZeroPage, (*Chip).sbc},
	0xF5: {InsnSBC, modeZeroPageX, (*Chip).sbc},
	0xED: {InsnSBC, modeAbsolute, (*Chip).sbc},
	0xFD: {InsnSBC, modeAbsoluteX, (*Chip).sbc},
	0xF9: {InsnSBC, modeAbsoluteY, (*Chip).sbc},
	0xE1: {InsnSBC, modeIndexedIndirect, (*Chip).sbc},
	0xF1: {InsnSBC, modeIndirectIndexed, (*Chip).sbc},

	0x38: {InsnSEC, modeImplied, (*Chip).sec},
	0xF8: {InsnSED, modeImplied, (*Chip).sed},
	0x78: {InsnSEI, modeImplied, (*Chip).sei},

	0x85: {InsnSTA, modeZeroPage, (*Chip).sta},
	0x95: {InsnSTA, modeZeroPageX, (*Chip).sta},
	0x8D: {InsnSTA, modeAbsolute, (*Chip).sta},
	0x9D: {InsnSTA, modeAbsoluteX, (*Chip).sta},
	0x99: {InsnSTA, modeAbsoluteY, (*Chip).sta},
	0x81: {InsnSTA, modeIndexedIndirect, (*Chip).sta},
	0x91: {InsnSTA, modeIndirectIndexed, (*Chip).sta},

	0x86: {InsnSTX, modeZeroPage, (*Chip).stx},
	0x96: {InsnSTX, modeZeroPageY, (*Chip).stx},
	0x8E: {InsnSTX, modeAbsolute, (*Chip).stx},

	0x84: {InsnSTY, modeZeroPage, (*Chip).sty},
	0x94: {InsnSTY, modeZeroPageX, (*Chip).sty},
	0x8C: {InsnSTY, modeAbsolute, (*Chip).sty},

	0xAA: {InsnTAX, modeImplied, (*Chip).tax},
	0xA8: {InsnTAY, modeImplied, (*Chip).tay},
	0xBA: {InsnTSX, modeImplied, (*Chip).tsx},
	0x8A: {InsnTXA, modeImplied, (*Chip).txa},
	0x9A: {InsnTXS, modeImplied, (*Chip).txs},
	0x98: {InsnTYA, modeImplied, (*Chip).tya},
}
