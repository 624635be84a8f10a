package n64

import "testing"

func newTestSP(latency int) (*SP, *RDRAM) {
	rdram := NewRDRAM(8 << 20)
	return NewSP(rdram, &Trace{}, latency), rdram
}

// The reserved-region erase: a 32 KiB transfer out of the 4 KiB IMEM bank,
// wrapping around the zeroed bank eight times.
func TestSPDMAToRDRAM(t *testing.T) {
	sp, rdram := newTestSP(0)
	base := uint32(8<<20 - 32*1024)
	for i := uint32(0); i < 32*1024; i++ {
		rdram.write(base+i, 0xAA)
	}
	rdram.write(base-1, 0xBB)
	sp.writeRSPAddr(0xA4001000)
	sp.writeDRAMAddr(base)
	sp.startDMA((32-1)<<12|(1024-1), true)
	if got := sp.readDMABusy(); got != 0 {
		t.Fatalf("sp.readDMABusy: got=%d, want=0", got)
	}
	for i := uint32(0); i < 32*1024; i++ {
		if got := rdram.read(base + i); got != 0 {
			t.Fatalf("rdram at 0x%08x: got=0x%02x, want=0x00", base+i, got)
		}
	}
	if got := rdram.read(base - 1); got != 0xBB {
		t.Fatalf("rdram below the target region: got=0x%02x, want=0xbb", got)
	}
}

// The DMEM erase: reading from RDRAM past the installed size, which is
// always zero, into everything but the boot flags.
func TestSPDMAFromRDRAM(t *testing.T) {
	sp, _ := newTestSP(0)
	for i := range sp.dmem {
		sp.dmem[i] = 0xAA
	}
	sp.writeDRAMAddr(0x00802000)
	sp.writeRSPAddr(0xA4000010)
	sp.startDMA(4096-16-1, false)
	for i := 0; i < 16; i++ {
		if got := sp.dmem[i]; got != 0xAA {
			t.Fatalf("dmem at 0x%02x: got=0x%02x, want=0xaa", i, got)
		}
	}
	for i := 16; i < len(sp.dmem); i++ {
		if got := sp.dmem[i]; got != 0 {
			t.Fatalf("dmem at 0x%03x: got=0x%02x, want=0x00", i, got)
		}
	}
}

func TestSPDMAQueue(t *testing.T) {
	sp, rdram := newTestSP(2)
	rdram.write(0x1000, 0xAA)
	rdram.write(0x2000, 0xAA)
	sp.writeRSPAddr(0xA4001000)
	sp.writeDRAMAddr(0x1000)
	sp.startDMA(1024-1, true)
	sp.writeDRAMAddr(0x2000)
	sp.startDMA(1024-1, true)
	if got := sp.readDMAFull(); got != 1 {
		t.Fatalf("sp.readDMAFull: got=%d, want=1", got)
	}
	for sp.readDMABusy() != 0 {
	}
	if got := rdram.read(0x1000); got != 0 {
		t.Fatalf("first transfer not applied: got=0x%02x, want=0x00", got)
	}
	if got := rdram.read(0x2000); got != 0 {
		t.Fatalf("queued transfer not applied: got=0x%02x, want=0x00", got)
	}
}
