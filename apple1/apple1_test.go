package apple1

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"manzana/tecla"
)

func newTestManzana(t *testing.T) (*Manzana, chan tecla.Key, chan tecla.Key) {
	t.Helper()
	kbdIn := make(chan tecla.Key, 1024)
	dspOut := make(chan tecla.Key, 1024)
	pwrOut := make(chan struct{}, 1)
	return New(Config{
		KeyboardIn:  kbdIn,
		DisplayOut:  dspOut,
		PowerOffOut: pwrOut,
		PowerOffIn:  pwrOut,
		Log:         zerolog.New(io.Discard),
	}), kbdIn, dspOut
}

func TestRunEchoesKeyboardToDisplay(t *testing.T) {
	m, kbdIn, dspOut := newTestManzana(t)
	done := make(chan error, 1)
	go func() { done <- m.Run() }()

	kbdIn <- tecla.Char('H')

	select {
	case key := <-dspOut:
		code, ok := key.IsChar()
		if !ok || code != 'H' {
			t.Errorf("display got %v, want Char('H')", key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for echoed character")
	}

	kbdIn <- tecla.PowerOff
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned error %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Run to exit on power off")
	}
}

func TestNewAcceptsSeedRegionBelowROM(t *testing.T) {
	kbdIn := make(chan tecla.Key, 1024)
	dspOut := make(chan tecla.Key, 1024)
	pwrOut := make(chan struct{}, 1)
	m := New(Config{
		KeyboardIn:  kbdIn,
		DisplayOut:  dspOut,
		PowerOffOut: pwrOut,
		PowerOffIn:  pwrOut,
		Seed:        []SeedRegion{{Addr: 0x0200, Data: []uint8{0xDE, 0xAD}}},
		Log:         zerolog.New(io.Discard),
	})
	if m == nil {
		t.Fatal("New returned nil")
	}
}
