package n64

import (
	"encoding/binary"
	"testing"
)

// buildROM synthesizes a minimal flat-image ROM: magic word, header fields
// and the payload at its fixed offset.
func buildROM(entry uint32, size uint32, payload []byte) []byte {
	rom := make([]byte, 0x1000+len(payload))
	binary.BigEndian.PutUint32(rom[0x00:], 0x80371240)
	binary.BigEndian.PutUint32(rom[0x08:], entry)
	binary.BigEndian.PutUint32(rom[0x10:], size)
	copy(rom[0x1000:], payload)
	return rom
}

func TestNewCartridge(t *testing.T) {
	cart, err := NewCartridge(buildROM(0x80100000, 0x2000, []byte{0x01, 0x02}))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cart.Entry(), uint32(0x80100000); got != want {
		t.Fatalf("cart.Entry: got=0x%08x, want=0x%08x", got, want)
	}
	if got, want := cart.ImageSize(), uint32(0x2000); got != want {
		t.Fatalf("cart.ImageSize: got=0x%08x, want=0x%08x", got, want)
	}
}

func TestNewCartridgeInvalid(t *testing.T) {
	rom := buildROM(0x80100000, 0x2000, nil)
	rom[0] = 0x00
	if _, err := NewCartridge(rom); err == nil {
		t.Fatal("NewCartridge accepted a ROM without the magic word")
	}
	if _, err := NewCartridge(rom[:0x20]); err == nil {
		t.Fatal("NewCartridge accepted a ROM shorter than the header")
	}
}

func TestCartridgeReadPastEnd(t *testing.T) {
	cart, err := NewCartridge(buildROM(0x80100000, 0x2000, []byte{0xFF}))
	if err != nil {
		t.Fatal(err)
	}
	if got := cart.read32(uint32(len(cart.data))); got != 0 {
		t.Fatalf("read past ROM end: got=0x%08x, want=0x00000000", got)
	}
}
