// Package rom embeds the monitor image that occupies the Apple 1's
// top 256 bytes of address space.
//
// The real WozMon dump was not available to generate this from, and
// the board treats the ROM as a sealed byte blob regardless of its
// contents, so this ships a compact hand-assembled monitor instead: a
// keyboard-echo loop wired through KBD/KBDCR/DSP the same way the
// original does, with every vector (reset, IRQ/BRK, NMI) routed back
// to its entry point. It boots, echoes typed characters to the
// display, and answers BRK-as-reset the same way the real monitor
// would, without claiming byte-for-byte parity with the 1976 original.
package rom

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

// Size is the fixed footprint of the monitor image, matching the
// board's ROM region.
const Size = 256

//go:embed monitor.hex
var monitorHex string

// Monitor is the parsed 256 byte monitor image, ready to be copied
// into a Board's top address region.
var Monitor = mustParse(monitorHex)

func mustParse(hex string) [Size]uint8 {
	var out [Size]uint8
	i := 0
	for _, tok := range strings.Fields(hex) {
		if i >= Size {
			panic(fmt.Sprintf("rom: monitor.hex has more than %d bytes", Size))
		}
		b, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			panic(fmt.Sprintf("rom: invalid byte %q in monitor.hex: %v", tok, err))
		}
		out[i] = uint8(b)
		i++
	}
	if i != Size {
		panic(fmt.Sprintf("rom: monitor.hex has %d bytes, want %d", i, Size))
	}
	return out
}
