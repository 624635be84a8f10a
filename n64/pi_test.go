package n64

import "testing"

func newTestPI(latency int) (*PI, *RDRAM) {
	payload := make([]byte, 256)
	for i := range payload {
		payload[i] = byte(i)
	}
	cart, _ := NewCartridge(buildROM(0x80100000, uint32(len(payload)), payload))
	rdram := NewRDRAM(8 << 20)
	return NewPI(rdram, cart, &Trace{}, latency), rdram
}

func TestPIDMA(t *testing.T) {
	pi, rdram := newTestPI(0)
	pi.writeDRAMAddr(0x80100000)
	pi.writeCartAddr(0x10001000)
	pi.writeWrLen(256 - 1)
	if got := pi.readStatus(); got != 0 {
		t.Fatalf("pi.readStatus: got=0x%02x, want=0x00", got)
	}
	for i := uint32(0); i < 256; i++ {
		if got, want := rdram.read(0x100000+i), byte(i); got != want {
			t.Fatalf("rdram at 0x%08x: got=0x%02x, want=0x%02x", 0x100000+i, got, want)
		}
	}
}

func TestPIDMAPastROMEnd(t *testing.T) {
	pi, rdram := newTestPI(0)
	rdram.write(0x100000+300, 0x55)
	pi.writeDRAMAddr(0x80100000)
	pi.writeCartAddr(0x10001000)
	pi.writeWrLen(512 - 1)
	if got := rdram.read(0x100000 + 300); got != 0 {
		t.Fatalf("rdram past ROM end: got=0x%02x, want=0x00", got)
	}
}

func TestPIDMALatency(t *testing.T) {
	pi, rdram := newTestPI(3)
	pi.writeDRAMAddr(0x80100000)
	pi.writeCartAddr(0x10001000)
	pi.writeWrLen(256 - 1)
	if got := rdram.read(0x100000); got != 0 {
		t.Fatal("transfer completed before being polled")
	}
	polls := 0
	for pi.readStatus()&(PIStatusDMABusy|PIStatusIOBusy) != 0 {
		polls++
	}
	if polls == 0 {
		t.Fatal("pi was never busy")
	}
	for i := uint32(0); i < 256; i++ {
		if got, want := rdram.read(0x100000+i), byte(i); got != want {
			t.Fatalf("rdram at 0x%08x: got=0x%02x, want=0x%02x", 0x100000+i, got, want)
		}
	}
}
