// Command romgen validates a monitor.hex-style listing (whitespace
// separated hex bytes, any line layout) and reports whether it is a
// well-formed 256 byte ROM image, the same check rom.Monitor's init
// performs on the image this repository embeds.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"manzana/rom"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <hex-listing>\n", os.Args[0])
		os.Exit(2)
	}
	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	n := 0
	for _, tok := range strings.Fields(string(data)) {
		if _, err := strconv.ParseUint(tok, 16, 8); err != nil {
			fmt.Fprintf(os.Stderr, "invalid byte %q: %v\n", tok, err)
			os.Exit(1)
		}
		n++
	}
	if n != rom.Size {
		fmt.Fprintf(os.Stderr, "%s has %d bytes, want %d\n", os.Args[1], n, rom.Size)
		os.Exit(1)
	}
	fmt.Printf("%s: valid %d byte ROM image\n", os.Args[1], rom.Size)
}
