package terminal

import (
	"testing"

	"github.com/nsf/termbox-go"

	"manzana/tecla"
)

func TestMapEvent(t *testing.T) {
	cases := []struct {
		name     string
		ev       termbox.Event
		want     tecla.Key
		wantStop bool
	}{
		{"enter", termbox.Event{Key: termbox.KeyEnter}, tecla.Enter, false},
		{"esc", termbox.Event{Key: termbox.KeyEsc}, tecla.Esc, false},
		{"backspace", termbox.Event{Key: termbox.KeyBackspace}, tecla.Backspace, false},
		{"backspace2", termbox.Event{Key: termbox.KeyBackspace2}, tecla.Backspace, false},
		{"end is power off", termbox.Event{Key: termbox.KeyEnd}, tecla.PowerOff, true},
		{"space", termbox.Event{Key: termbox.KeySpace}, tecla.Char(' '), false},
		{"lowercase letter uppercased", termbox.Event{Ch: 'a'}, tecla.Char('A'), false},
		{"uppercase letter passes through", termbox.Event{Ch: 'Q'}, tecla.Char('Q'), false},
		{"digit passes through", termbox.Event{Ch: '7'}, tecla.Char('7'), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, stop := mapEvent(tc.ev)
			if got != tc.want {
				t.Errorf("mapEvent(%+v) key = %v, want %v", tc.ev, got, tc.want)
			}
			if stop != tc.wantStop {
				t.Errorf("mapEvent(%+v) stop = %v, want %v", tc.ev, stop, tc.wantStop)
			}
		})
	}
}
