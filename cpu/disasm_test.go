package cpu

import (
	"strings"
	"testing"

	"manzana/memory"
)

func TestDisassembleImmediate(t *testing.T) {
	ram := memory.NewRAM()
	ram.Load(0x1000, []uint8{0xA9, 0x42})
	line, n := Disassemble(ram, 0x1000)
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
	if !strings.Contains(line, "LDA") || !strings.Contains(line, "#$42") {
		t.Errorf("line = %q, want LDA #$42", line)
	}
}

func TestDisassembleUnknownOpcode(t *testing.T) {
	ram := memory.NewRAM()
	ram.Load(0x1000, []uint8{0x02})
	line, n := Disassemble(ram, 0x1000)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
	if !strings.Contains(line, "???") {
		t.Errorf("line = %q, want ???", line)
	}
}
