package boot

import "github.com/jyane/jn64/n64"

// cleanup is the final boot stage. It runs from ROM, never from the RDRAM it
// is about to erase, so it is free to scrub every loader breadcrumb before
// jumping to the application. The two implementations correspond to the two
// firmware builds: normalCleanup notifies the PIF and sets up the
// application stack, compatCleanup leaves both to the application.
type cleanup interface {
	run(l *Loader, entry uint32)
}

type normalCleanup struct{}

func (normalCleanup) run(l *Loader, entry uint32) {
	// Tell the PIF boot is done. The transaction is slow, so start it now
	// and only wait on it at the end.
	l.pifTerminateBoot()

	memSize := l.read32(n64.SPDMEMBase + n64.BootFlagsOffset)

	l.console.CPU.ClearCache()

	l.clearReservedRDRAM(memSize)
	l.clearDMEM(n64.BootFlagsSize)

	// Waiting also drains the completion interrupt, so it is not left
	// pending for the application.
	l.siWait()

	// The clears are normally long finished by the time slow ROM execution
	// gets here, but the stack about to be placed at the end of RDRAM must
	// not race a transfer that is still moving.
	l.spWaitIdle()

	l.console.CPU.SetStackPointer(StackTop(memSize))
	l.console.CPU.Jump(entry)
}

type compatCleanup struct{}

func (compatCleanup) run(l *Loader, entry uint32) {
	memSize := l.read32(n64.OSMemSizeAddr)

	l.console.CPU.ClearCache()

	l.clearReservedRDRAM(memSize)
	l.clearDMEM(0)

	l.spWaitIdle()

	l.console.CPU.Jump(entry)
}

// clearReservedRDRAM erases the reserved loader region at the end of RDRAM
// by DMAing out of the zeroed IMEM bank, which the transfer wraps around.
// The length word counts whole 1024-byte rows, hence the build-time size
// constraint in layout.go.
func (l *Loader) clearReservedRDRAM(memSize uint32) {
	for l.read32(n64.SPDMAFullReg) != 0 {
	}
	l.write32(n64.SPRSPAddrReg, n64.SPIMEMBase)
	l.write32(n64.SPDRAMAddrReg, memSize-totalReservedSize)
	l.write32(n64.SPWrLenReg, ((totalReservedSize>>10)-1)<<12|(1024-1))
}

// clearDMEM erases DMEM past the first preserve bytes, again by DMA: the
// source is an RDRAM region past the largest installed size, which reads as
// zero.
func (l *Loader) clearDMEM(preserve uint32) {
	for l.read32(n64.SPDMAFullReg) != 0 {
	}
	l.write32(n64.SPDRAMAddrReg, emptyRDRAMAddr)
	l.write32(n64.SPRSPAddrReg, n64.SPDMEMBase+preserve)
	l.write32(n64.SPRdLenReg, 0x1000-preserve-1)
}

// spWaitIdle polls until the SP DMA engine is fully idle, not merely able to
// accept another transfer.
func (l *Loader) spWaitIdle() {
	for l.read32(n64.SPDMABusyReg) != 0 {
	}
}

// pifTerminateBoot posts the boot-complete command to the PIF mailbox.
// Without it the PIF halts the CPU five seconds after reset.
func (l *Loader) pifTerminateBoot() {
	l.write32(n64.PIFRAMBase+n64.PIFCommandOffset, n64.PIFCmdTerminateBoot)
}

// siWait polls until the SI transaction is over, then acknowledges its
// interrupt.
func (l *Loader) siWait() {
	for l.read32(n64.SIStatusReg)&(n64.SIStatusDMABusy|n64.SIStatusIOBusy) != 0 {
	}
	l.write32(n64.SIStatusReg, 0)
}
