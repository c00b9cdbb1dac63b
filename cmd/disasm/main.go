// Command disasm disassembles a raw binary as 6502 machine code
// starting at a given load address, useful for inspecting a seed file
// or the embedded monitor image before running it.
package main

import (
	"fmt"
	"os"
	"strconv"

	"manzana/cpu"
	"manzana/memory"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <file> <hex-load-addr>\n", os.Args[0])
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	addr, err := strconv.ParseUint(os.Args[2], 16, 16)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid hex load address:", err)
		os.Exit(2)
	}

	ram := memory.NewRAM()
	ram.Load(uint16(addr), data)

	pc := uint16(addr)
	end := uint16(addr) + uint16(len(data))
	for pc < end {
		line, n := cpu.Disassemble(ram, pc)
		fmt.Println(line)
		pc += uint16(n)
	}
}
