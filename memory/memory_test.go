package memory

import "testing"

func TestRAMReadWrite(t *testing.T) {
	r := NewRAM()
	if err := r.Write(0x1234, 0xAB); err != nil {
		t.Fatalf("Write: unexpected error %v", err)
	}
	got, err := r.Read(0x1234)
	if err != nil {
		t.Fatalf("Read: unexpected error %v", err)
	}
	if got != 0xAB {
		t.Errorf("Read(0x1234) = %#02x, want 0xAB", got)
	}
}

func TestRAMLoad(t *testing.T) {
	r := NewRAM()
	r.Load(0xFF00, []uint8{0x01, 0x02, 0x03})
	for i, want := range []uint8{0x01, 0x02, 0x03} {
		got, err := r.Read(0xFF00 + uint16(i))
		if err != nil {
			t.Fatalf("Read: unexpected error %v", err)
		}
		if got != want {
			t.Errorf("Read(0xFF00+%d) = %#02x, want %#02x", i, got, want)
		}
	}
}

func TestErrorString(t *testing.T) {
	e := &Error{Kind: ReadOnlyAddress, Addr: 0xFF00}
	if e.Error() == "" {
		t.Error("Error() returned empty string")
	}
}
