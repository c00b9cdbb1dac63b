package terminal

import (
	"github.com/nsf/termbox-go"

	"manzana/tecla"
)

const (
	cols = 40
	rows = 24
)

// Display renders tecla.Key events from the emulator onto a 40x24
// glyph grid, the Apple 1's display geometry. The termbox lifecycle
// (alternate screen + raw mode) is managed by this package's Init and
// Close, not by Display.
type Display struct {
	in         <-chan tecla.Key
	col, row   int
}

// Init acquires the terminal: enters termbox's raw/alternate-screen
// mode. Callers must pair every successful Init with a Close, ideally
// via defer, so the terminal is restored on every exit path including
// a panic.
func Init() error {
	return termbox.Init()
}

// Close restores the terminal to its prior state. Safe to call after
// a partially-failed Init.
func Close() {
	termbox.Close()
}

// NewDisplay returns a Display that renders keys received on in.
// Init must have been called first.
func NewDisplay(in <-chan tecla.Key) *Display {
	return &Display{in: in}
}

// Run consumes keys until the channel closes or a PowerOff event
// arrives.
func (d *Display) Run() {
	for key := range d.in {
		if key.IsPowerOff() {
			return
		}
		d.render(key)
	}
}

func (d *Display) render(key tecla.Key) {
	switch {
	case key.IsEnter():
		d.col = 0
		d.row = (d.row + 1) % rows
	case key.IsBackspace(), key.IsEsc():
		// No visible effect on the Apple 1's display.
	default:
		code, ok := key.IsChar()
		if !ok {
			return
		}
		// DSP writes always arrive as Char, since board.Write forwards
		// the masked byte regardless of its value; a bare CR from the
		// CPU lands here rather than as the Enter kind.
		if code == 0x0D {
			d.col = 0
			d.row = (d.row + 1) % rows
			return
		}
		if code < 0x20 || code > 0x5F {
			return
		}
		termbox.SetCell(d.col, d.row, rune(code), termbox.ColorGreen, termbox.ColorBlack)
		termbox.Flush()
		d.col++
		if d.col >= cols {
			d.col = 0
			d.row = (d.row + 1) % rows
		}
	}
}
