// Package terminal implements the host-side keyboard and display
// collaborators: the goroutines that translate a real terminal's raw
// mode into tecla.Key events for the emulator, and the emulator's
// display output back into characters on screen.
package terminal

import (
	"github.com/nsf/termbox-go"

	"manzana/tecla"
)

// Keyboard polls termbox for key events in its own goroutine and
// forwards them as tecla.Key values, the way termbox-backed keyboard
// collaborators in the wider ecosystem do.
type Keyboard struct {
	out  chan<- tecla.Key
	done chan struct{}
}

// NewKeyboard returns a Keyboard that will send events on out.
// termbox must already have been initialized by the caller through
// this package's Init (both collaborators share one terminal).
func NewKeyboard(out chan<- tecla.Key) *Keyboard {
	return &Keyboard{out: out, done: make(chan struct{})}
}

// Run polls termbox events until Stop is called or a PowerOff-mapped
// key arrives, at which point it sends tecla.PowerOff and returns.
func (k *Keyboard) Run() {
	for {
		select {
		case <-k.done:
			return
		default:
		}
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}
		key, stop := mapEvent(ev)
		k.out <- key
		if stop {
			return
		}
	}
}

// Stop requests Run return after its current PollEvent call.
// termbox.Interrupt unblocks that call immediately.
func (k *Keyboard) Stop() {
	close(k.done)
	termbox.Interrupt()
}

// mapEvent implements the keyboard mapping table: letters are
// uppercased and, like digits, sent as Char, Enter/Esc/Backspace map to their named
// events, and End is the power switch.
func mapEvent(ev termbox.Event) (tecla.Key, bool) {
	switch ev.Key {
	case termbox.KeyEnter:
		return tecla.Enter, false
	case termbox.KeyEsc:
		return tecla.Esc, false
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return tecla.Backspace, false
	case termbox.KeyEnd:
		return tecla.PowerOff, true
	case termbox.KeySpace:
		return tecla.Char(' '), false
	}
	if ev.Ch != 0 {
		ch := ev.Ch
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		return tecla.Char(uint8(ch)), false
	}
	return tecla.Char(0), false
}
