// Package memory defines the basic interface for working with a 6502
// family memory map. Unlike a bus-accurate Bank (which never fails),
// this Memory contract allows a region to reject an access -- the
// Apple 1 board uses this to fault writes aimed at ROM.
package memory

import "fmt"

// ErrKind distinguishes the reasons a Memory access can fail.
type ErrKind int

const (
	// ReadOnlyAddress indicates a write targeted an address that cannot
	// be written, such as the ROM region.
	ReadOnlyAddress ErrKind = iota
	// OutOfRange indicates an access outside the addressable space.
	// Unreachable for a uint16 address against a full 64k map, kept
	// for parity with memory regions smaller than 64k.
	OutOfRange
)

// Error reports a failed Memory access.
type Error struct {
	Kind ErrKind
	Addr uint16
}

func (e *Error) Error() string {
	switch e.Kind {
	case ReadOnlyAddress:
		return fmt.Sprintf("memory: address %#04x is read-only", e.Addr)
	case OutOfRange:
		return fmt.Sprintf("memory: address %#04x is out of range", e.Addr)
	default:
		return fmt.Sprintf("memory: unknown error at %#04x", e.Addr)
	}
}

// Memory is the contract the CPU reads and writes through. Unlike the
// teacher's Bank, both operations can fail: a fault is a first-class
// outcome of stepping the CPU, not a programming error.
type Memory interface {
	// Read returns the data byte stored at addr, or an error if addr
	// cannot be read.
	Read(addr uint16) (uint8, error)
	// Write updates addr with val, or returns an error (for example
	// ReadOnlyAddress) leaving the store untouched.
	Write(addr uint16, val uint8) error
}

// RAM is a flat 65,536 byte store with no MMIO side effects anywhere
// in its range. It implements Memory directly and is used by cpu
// package tests in place of a Board, the way the teacher's flatMemory
// test double stands in for a full bus.
type RAM struct {
	bytes [65536]uint8
}

// NewRAM returns a zeroed 64k RAM.
func NewRAM() *RAM {
	return &RAM{}
}

// Read implements Memory.
func (r *RAM) Read(addr uint16) (uint8, error) {
	return r.bytes[addr], nil
}

// Write implements Memory.
func (r *RAM) Write(addr uint16, val uint8) error {
	r.bytes[addr] = val
	return nil
}

// Load copies data into RAM starting at addr. Used by tests to seed
// known programs without going through the seed-file CLI path.
func (r *RAM) Load(addr uint16, data []uint8) {
	copy(r.bytes[int(addr):], data)
}
