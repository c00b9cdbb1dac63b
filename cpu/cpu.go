// Package cpu implements an instruction-level MOS 6502 core: one Step
// call fetches, decodes and executes exactly one instruction. This
// trades the cycle-exact bus timing a hardware-accurate emulator needs
// for the simpler run loop a monitor ROM actually depends on.
package cpu

import (
	"fmt"

	"manzana/memory"
)

// Flag bits of the P (status) register. Bit 5 has no named flag and
// always reads back as 1.
const (
	PNegative  = uint8(0x80)
	POverflow  = uint8(0x40)
	PReserved  = uint8(0x20)
	PBreak     = uint8(0x10)
	PDecimal   = uint8(0x08)
	PInterrupt = uint8(0x04)
	PZero      = uint8(0x02)
	PCarry     = uint8(0x01)
)

// Interrupt and reset vector addresses.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// StackWraparound selects whether the stack pointer wraps within page
// one (the NMOS behavior) or faults at the page boundary. The Apple 1's
// monitor ROM never exercises the boundary, so this only matters for
// tests that want to observe the fault path.
type StackWraparound int

const (
	// Allow wraps S modulo 256, matching real NMOS 6502 hardware.
	Allow StackWraparound = iota
	// Disallow reports StackOverflowError instead of wrapping.
	Disallow
)

// UnimplementedOpcodeError is returned by Step when the fetched opcode
// has no documented behavior. The 6502 leaves 105 opcode values
// undefined; this core only implements the 151 documented ones.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unimplemented opcode %#02x at %#04x", e.Opcode, e.PC)
}

// StackOverflowError is returned by Step when StackWraparound is
// Disallow and a push or pop would cross page one's boundary.
type StackOverflowError struct {
	S uint8
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("cpu: stack pointer %#02x overflowed with wraparound disallowed", e.S)
}

// Insn names the instruction executed by a Step call, for callers
// that need to react to specific mnemonics (the Apple 1 driver resets
// on BRK).
type Insn int

// ExitKind distinguishes why Step returned.
type ExitKind int

const (
	// ExitExecuted means one instruction ran to completion.
	ExitExecuted ExitKind = iota
	// ExitInterrupt means Step serviced a reset, IRQ or NMI instead of
	// fetching the next instruction.
	ExitInterrupt
)

// InterruptKind names which interrupt source Step serviced.
type InterruptKind int

const (
	InterruptNone InterruptKind = iota
	InterruptIRQ
	InterruptNMI
	InterruptReset
)

// RunExit reports the outcome of one Step call.
type RunExit struct {
	Kind      ExitKind
	Insn      Insn
	Interrupt InterruptKind
}

// Chip is a MOS 6502 register file and execution engine bound to a
// memory.Memory implementation.
type Chip struct {
	A, X, Y, S uint8
	PC         uint16
	P          uint8

	mem        memory.Memory
	wraparound StackWraparound

	resetPending bool
	nmiPending   bool
}

// New returns a Chip wired to mem. The chip powers up with interrupts
// masked and P's reserved bit set, matching real hardware; callers
// that want the classic Apple 1 boot sequence still need to call
// SetResetPending and set S explicitly (see apple1.Manzana).
func New(mem memory.Memory, wraparound StackWraparound) *Chip {
	return &Chip{
		mem:        mem,
		wraparound: wraparound,
		P:          PReserved | PInterrupt,
	}
}

// SetResetPending arms a reset to be serviced on the next Step call,
// the way asserting /RES does on real hardware.
func (c *Chip) SetResetPending() {
	c.resetPending = true
}

// RaiseNMI arms a non-maskable interrupt to be serviced on the next
// Step call.
func (c *Chip) RaiseNMI() {
	c.nmiPending = true
}

// Step services a pending reset or NMI, services IRQ if irqLine is
// raised and P.I is clear, or otherwise fetches, decodes and executes
// exactly one instruction.
func (c *Chip) Step(irqLine bool) (RunExit, error) {
	if c.resetPending {
		c.resetPending = false
		return c.serviceReset()
	}
	if c.nmiPending {
		c.nmiPending = false
		return c.serviceInterrupt(NMIVector, InterruptNMI)
	}
	if irqLine && c.P&PInterrupt == 0 {
		return c.serviceInterrupt(IRQVector, InterruptIRQ)
	}
	return c.execute()
}

func (c *Chip) serviceReset() (RunExit, error) {
	lo, err := c.mem.Read(ResetVector)
	if err != nil {
		return RunExit{}, err
	}
	hi, err := c.mem.Read(ResetVector + 1)
	if err != nil {
		return RunExit{}, err
	}
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.P |= PInterrupt
	return RunExit{Kind: ExitInterrupt, Interrupt: InterruptReset}, nil
}

func (c *Chip) serviceInterrupt(vector uint16, kind InterruptKind) (RunExit, error) {
	if err := c.pushStack(uint8(c.PC >> 8)); err != nil {
		return RunExit{}, err
	}
	if err := c.pushStack(uint8(c.PC)); err != nil {
		return RunExit{}, err
	}
	if err := c.pushStack((c.P | PReserved) &^ PBreak); err != nil {
		return RunExit{}, err
	}
	c.P |= PInterrupt
	lo, err := c.mem.Read(vector)
	if err != nil {
		return RunExit{}, err
	}
	hi, err := c.mem.Read(vector + 1)
	if err != nil {
		return RunExit{}, err
	}
	c.PC = uint16(hi)<<8 | uint16(lo)
	return RunExit{Kind: ExitInterrupt, Interrupt: kind}, nil
}

func (c *Chip) fetch() (uint8, error) {
	v, err := c.mem.Read(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC++
	return v, nil
}

func (c *Chip) execute() (RunExit, error) {
	op, err := c.fetch()
	if err != nil {
		return RunExit{}, err
	}
	def, ok := opcodes[op]
	if !ok {
		return RunExit{}, &UnimplementedOpcodeError{Opcode: op, PC: c.PC - 1}
	}
	insn, err := def.run(c, def.mode)
	if err != nil {
		return RunExit{}, err
	}
	return RunExit{Kind: ExitExecuted, Insn: insn}, nil
}

func (c *Chip) pushStack(val uint8) error {
	addr := uint16(0x0100) + uint16(c.S)
	if err := c.mem.Write(addr, val); err != nil {
		return err
	}
	if c.S == 0x00 && c.wraparound == Disallow {
		return &StackOverflowError{S: c.S}
	}
	c.S--
	return nil
}

func (c *Chip) popStack() (uint8, error) {
	if c.S == 0xFF && c.wraparound == Disallow {
		return 0, &StackOverflowError{S: c.S}
	}
	c.S++
	addr := uint16(0x0100) + uint16(c.S)
	return c.mem.Read(addr)
}

func (c *Chip) zeroCheck(reg uint8) {
	c.P &^= PZero
	if reg == 0 {
		c.P |= PZero
	}
}

func (c *Chip) negativeCheck(reg uint8) {
	c.P &^= PNegative
	if reg&PNegative != 0 {
		c.P |= PNegative
	}
}

func (c *Chip) carryCheck(res uint16) {
	c.P &^= PCarry
	if res >= 0x100 {
		c.P |= PCarry
	}
}

// overflowCheck sets V when the ALU result's sign disagrees with both
// operands' sign, the two's-complement overflow condition. See
// http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (c *Chip) overflowCheck(reg, arg, res uint8) {
	c.P &^= POverflow
	if (reg^res)&(arg^res)&0x80 != 0 {
		c.P |= POverflow
	}
}

func (c *Chip) loadRegister(reg *uint8, val uint8) {
	*reg = val
	c.zeroCheck(val)
	c.negativeCheck(val)
}
