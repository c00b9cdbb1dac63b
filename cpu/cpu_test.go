package cpu

import (
	"testing"

	"manzana/memory"
)

func newTestChip(t *testing.T, program []uint8, pc uint16) (*Chip, *memory.RAM) {
	t.Helper()
	ram := memory.NewRAM()
	ram.Load(pc, program)
	c := New(ram, Allow)
	c.PC = pc
	return c, ram
}

func step(t *testing.T, c *Chip) RunExit {
	t.Helper()
	exit, err := c.Step(false)
	if err != nil {
		t.Fatalf("Step: unexpected error %v", err)
	}
	return exit
}

func TestLoadImmediateSetsFlags(t *testing.T) {
	tests := []struct {
		name string
		op   uint8
		want func(c *Chip) uint8
	}{
		{"LDA", 0xA9, func(c *Chip) uint8 { return c.A }},
		{"LDX", 0xA2, func(c *Chip) uint8 { return c.X }},
		{"LDY", 0xA0, func(c *Chip) uint8 { return c.Y }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c, _ := newTestChip(t, []uint8{test.op, 0x80}, 0x1000)
			exit := step(t, c)
			if exit.Kind != ExitExecuted {
				t.Fatalf("exit kind = %v, want ExitExecuted", exit.Kind)
			}
			if got := test.want(c); got != 0x80 {
				t.Errorf("register = %#02x, want 0x80", got)
			}
			if c.P&PNegative == 0 {
				t.Error("N flag not set for negative load")
			}
			if c.P&PZero != 0 {
				t.Error("Z flag incorrectly set")
			}
		})
	}
}

func TestStoreZeroPage(t *testing.T) {
	c, ram := newTestChip(t, []uint8{0xA9, 0x42, 0x85, 0x10}, 0x1000)
	step(t, c) // LDA #$42
	step(t, c) // STA $10
	got, err := ram.Read(0x0010)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != 0x42 {
		t.Errorf("ram[0x10] = %#02x, want 0x42", got)
	}
}

func TestADCBinary(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0xA9, 0x01, 0x69, 0x01}, 0x1000)
	step(t, c) // LDA #$01
	step(t, c) // ADC #$01
	if c.A != 0x02 {
		t.Errorf("A = %#02x, want 0x02", c.A)
	}
	if c.P&PCarry != 0 {
		t.Error("carry unexpectedly set")
	}
}

func TestADCDecimal(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0xF8, 0xA9, 0x79, 0x69, 0x14}, 0x1000)
	step(t, c) // SED
	step(t, c) // LDA #$79
	step(t, c) // ADC #$14 -> 79 + 14 = 93 BCD
	if c.A != 0x93 {
		t.Errorf("A = %#02x, want 0x93 (BCD 93)", c.A)
	}
}

func TestSBCBorrow(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0x38, 0xA9, 0x05, 0xE9, 0x06}, 0x1000)
	step(t, c) // SEC (no borrow going in)
	step(t, c) // LDA #$05
	step(t, c) // SBC #$06 -> 5-6 = -1 = 0xFF, carry clear (borrow)
	if c.A != 0xFF {
		t.Errorf("A = %#02x, want 0xFF", c.A)
	}
	if c.P&PCarry != 0 {
		t.Error("carry set, want clear (borrow occurred)")
	}
}

func TestPHAPLARoundTrip(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0xA9, 0x55, 0x48, 0xA9, 0x00, 0x68}, 0x1000)
	c.S = 0xFD
	step(t, c) // LDA #$55
	step(t, c) // PHA
	step(t, c) // LDA #$00
	step(t, c) // PLA
	if c.A != 0x55 {
		t.Errorf("A = %#02x, want 0x55 after PLA", c.A)
	}
}

func TestPHPPLPRoundTrip(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0x38, 0x08, 0x18, 0x28}, 0x1000)
	c.S = 0xFD
	step(t, c) // SEC
	step(t, c) // PHP
	step(t, c) // CLC
	step(t, c) // PLP
	if c.P&PCarry == 0 {
		t.Error("carry flag lost across PHP/PLP round trip")
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, ram := newTestChip(t, []uint8{0x20, 0x00, 0x20}, 0x1000)
	ram.Load(0x2000, []uint8{0x60}) // RTS
	c.S = 0xFD
	step(t, c) // JSR $2000
	if c.PC != 0x2000 {
		t.Fatalf("PC = %#04x after JSR, want 0x2000", c.PC)
	}
	step(t, c) // RTS
	if c.PC != 0x1003 {
		t.Errorf("PC = %#04x after RTS, want 0x1003", c.PC)
	}
}

func TestStackWraparoundDisallow(t *testing.T) {
	ram := memory.NewRAM()
	c := New(ram, Disallow)
	c.PC = 0x1000
	c.S = 0x00
	ram.Load(0x1000, []uint8{0x48}) // PHA
	_, err := c.Step(false)
	if err == nil {
		t.Fatal("expected StackOverflowError, got nil")
	}
	if _, ok := err.(*StackOverflowError); !ok {
		t.Errorf("err = %T, want *StackOverflowError", err)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, ram := newTestChip(t, []uint8{0x6C, 0xFF, 0x20}, 0x1000)
	ram.Load(0x20FF, []uint8{0x34})
	ram.Load(0x2000, []uint8{0x12}) // hardware bug reads high byte from $2000, not $2100
	ram.Load(0x2100, []uint8{0x99})
	step(t, c)
	if c.PC != 0x1234 {
		t.Errorf("PC = %#04x, want 0x1234 (page-wrap bug)", c.PC)
	}
}

func TestBranchBackwards(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0xF0, 0xFE}, 0x1002)
	c.P |= PZero
	step(t, c)
	if c.PC != 0x1002 {
		t.Errorf("PC = %#04x, want 0x1002 (branch to self)", c.PC)
	}
}

func TestUnimplementedOpcode(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0x02}, 0x1000) // no documented opcode 0x02
	_, err := c.Step(false)
	if err == nil {
		t.Fatal("expected UnimplementedOpcodeError, got nil")
	}
	if _, ok := err.(*UnimplementedOpcodeError); !ok {
		t.Errorf("err = %T, want *UnimplementedOpcodeError", err)
	}
}

func TestBRKSetsInterruptAndPushesPC(t *testing.T) {
	c, ram := newTestChip(t, []uint8{0x00}, 0x1000)
	ram.Load(IRQVector, []uint8{0x00, 0x20})
	c.S = 0xFD
	exit := step(t, c)
	if exit.Insn != InsnBRK {
		t.Errorf("Insn = %v, want InsnBRK", exit.Insn)
	}
	if c.PC != 0x2000 {
		t.Errorf("PC = %#04x, want 0x2000 (IRQ vector)", c.PC)
	}
	if c.P&PInterrupt == 0 {
		t.Error("interrupt flag not set after BRK")
	}
	hi, _ := ram.Read(0x01FD)
	lo, _ := ram.Read(0x01FC)
	if ret := uint16(hi)<<8 | uint16(lo); ret != 0x1002 {
		t.Errorf("pushed PC = %#04x, want 0x1002 (BRK address + 2)", ret)
	}
}

func TestResetLoadsVectorAndSetsInterruptFlag(t *testing.T) {
	ram := memory.NewRAM()
	ram.Load(ResetVector, []uint8{0x00, 0x30})
	c := New(ram, Allow)
	c.P &^= PInterrupt
	c.SetResetPending()
	exit := step(t, c)
	if exit.Kind != ExitInterrupt || exit.Interrupt != InterruptReset {
		t.Fatalf("exit = %+v, want reset interrupt", exit)
	}
	if c.PC != 0x3000 {
		t.Errorf("PC = %#04x, want 0x3000", c.PC)
	}
	if c.P&PInterrupt == 0 {
		t.Error("interrupt flag not set after reset")
	}
}

func TestIRQMaskedByInterruptFlag(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0xEA}, 0x1000) // NOP
	c.P |= PInterrupt
	exit, err := c.Step(true) // IRQ line raised
	if err != nil {
		t.Fatalf("Step: unexpected error %v", err)
	}
	if exit.Kind != ExitExecuted || exit.Insn != InsnNOP {
		t.Errorf("exit = %+v, want NOP executed (IRQ masked)", exit)
	}
}

func TestCompareFlags(t *testing.T) {
	c, _ := newTestChip(t, []uint8{0xA9, 0x10, 0xC9, 0x10}, 0x1000)
	step(t, c) // LDA #$10
	step(t, c) // CMP #$10
	if c.P&PZero == 0 {
		t.Error("Z flag not set for equal compare")
	}
	if c.P&PCarry == 0 {
		t.Error("C flag not set for A >= operand")
	}
}
