package n64

import "testing"

func TestSIPIFWrite(t *testing.T) {
	si := NewSI(&Trace{}, 0)
	si.writePIF(PIFCommandOffset, PIFCmdTerminateBoot)
	if !si.TerminateBootReceived() {
		t.Fatal("PIF did not receive the terminate boot command")
	}
	if !si.InterruptPending() {
		t.Fatal("no completion interrupt raised")
	}
	if got := si.readStatus() & SIStatusInterrupt; got == 0 {
		t.Fatal("interrupt bit not visible in SI_STATUS")
	}
	si.writeStatus(0)
	if si.InterruptPending() {
		t.Fatal("status write did not acknowledge the interrupt")
	}
}

func TestSIPIFWriteLatency(t *testing.T) {
	si := NewSI(&Trace{}, 3)
	si.writePIF(PIFCommandOffset, PIFCmdTerminateBoot)
	if si.TerminateBootReceived() {
		t.Fatal("transaction completed before being polled")
	}
	for si.readStatus()&(SIStatusDMABusy|SIStatusIOBusy) != 0 {
	}
	if !si.TerminateBootReceived() {
		t.Fatal("PIF did not receive the terminate boot command")
	}
	si.writeStatus(0)
	if si.InterruptPending() {
		t.Fatal("status write did not acknowledge the interrupt")
	}
}

func TestSIPIFRAM(t *testing.T) {
	si := NewSI(&Trace{}, 0)
	si.writePIF(0x10, 0x12345678)
	if got, want := si.readPIF32(0x10), uint32(0x12345678); got != want {
		t.Fatalf("pif ram at 0x10: got=0x%08x, want=0x%08x", got, want)
	}
	if si.TerminateBootReceived() {
		t.Fatal("a write outside the command word terminated boot")
	}
}
