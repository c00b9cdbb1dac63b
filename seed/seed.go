// Package seed parses the CLI's seed-file argument: a comma-separated
// list of path[:HEX_ADDR] entries describing RAM regions to load
// before boot.
package seed

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Region is one parsed seed-file entry: the bytes read from Path,
// destined for RAM starting at Addr.
type Region struct {
	Path string
	Addr uint16
	Data []uint8
}

// romStart bounds how high a seed region may load; it must not reach
// into the ROM region the board treats as read-only.
const romStart = uint16(0xFF00)

// ParseError reports why a seed-file spec was rejected.
type ParseError struct {
	Spec   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("seed: invalid spec %q: %s", e.Spec, e.Reason)
}

// Parse reads and validates every entry in a comma-separated
// path[:HEX_ADDR] list. Entries are implicitly addressed back-to-back
// starting at 0x0000 when no address is given, matching the original
// CLI's "next address after the previous region" convention. Load
// addresses must strictly increase and regions must not overlap or
// reach romStart.
func Parse(spec string) ([]Region, error) {
	if spec == "" {
		return nil, nil
	}
	var regions []Region
	next := uint16(0)
	for _, entry := range strings.Split(spec, ",") {
		path, addr, err := splitEntry(entry, next)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ParseError{Spec: entry, Reason: err.Error()}
		}
		if addr < next {
			return nil, &ParseError{Spec: entry, Reason: "load address does not strictly increase over the previous region"}
		}
		end := uint32(addr) + uint32(len(data))
		if end > uint32(romStart) {
			return nil, &ParseError{Spec: entry, Reason: fmt.Sprintf("region [%#04x,%#04x) overlaps ROM_START %#04x", addr, end, romStart)}
		}
		regions = append(regions, Region{Path: path, Addr: addr, Data: data})
		next = uint16(end)
	}
	return regions, nil
}

func splitEntry(entry string, defaultAddr uint16) (string, uint16, error) {
	path, hexAddr, hasAddr := strings.Cut(entry, ":")
	if path == "" {
		return "", 0, &ParseError{Spec: entry, Reason: "missing path"}
	}
	if !hasAddr {
		return path, defaultAddr, nil
	}
	v, err := strconv.ParseUint(hexAddr, 16, 16)
	if err != nil {
		return "", 0, &ParseError{Spec: entry, Reason: fmt.Sprintf("invalid hex address %q", hexAddr)}
	}
	return path, uint16(v), nil
}
