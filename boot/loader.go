// Package boot implements the tail of the console's boot sequence: a flat
// binary loader that copies the application image out of cartridge ROM, and
// a cleanup stage that erases every trace of the loader before jumping to
// the application entry point.
package boot

import (
	"github.com/golang/glog"

	"github.com/jyane/jn64/n64"
)

// Loader drives the two boot stages against a console. The real firmware
// never returns from Run; the simulation returns to the caller once the jump
// to the entry point has been latched.
type Loader struct {
	console *n64.Console
	bus     *n64.CPUBus
	cleanup cleanup
}

// New creates a Loader. compat selects the cleanup variant built for titles
// that notify the PIF themselves; the choice is fixed for the lifetime of
// the loader, the way the firmware fixes it at build time.
func New(c *n64.Console, compat bool) *Loader {
	l := &Loader{console: c, bus: c.Bus}
	if compat {
		l.cleanup = compatCleanup{}
	} else {
		l.cleanup = normalCleanup{}
	}
	l.scribbleFootprint()
	return l
}

// scribbleFootprint dirties the memory the loader occupies while running:
// the reserved region at the end of RDRAM and the DMEM scratch area past the
// boot flags. The cleanup stage has to erase all of it.
func (l *Loader) scribbleFootprint() {
	base := LoaderBase(l.console.MemSize())
	for a := base; a < base+totalReservedSize; a += 4 {
		l.write32(a, 0xDEADBEEF)
	}
	for a := uint32(n64.SPDMEMBase + n64.BootFlagsSize); a < n64.SPDMEMBase+0x1000; a += 4 {
		l.write32(a, 0xDEADBEEF)
	}
}

// Run executes the flat binary loader and chains into the cleanup stage.
func (l *Loader) Run() {
	l.cleanup.run(l, l.loadImage())
}

// loadImage copies the flat application image from cartridge ROM to its load
// address and returns the entry point.
func (l *Loader) loadImage() uint32 {
	entry := l.read32(romEntryAddr)
	size := l.read32(romSizeAddr)
	if size == 0 || size > maxMemSize-(entry&0x1FFFFFFF)-totalReservedSize {
		glog.V(1).Infof("Header size rejected, falling back: size=%d", size)
		size = fallbackImageSize
	}

	l.piReadAsync(entry, romPayloadAddr, size)
	l.piWait()

	l.console.ResetRCP()

	return entry
}

// piReadAsync programs a cartridge-to-RDRAM transfer. It waits for the PI to
// accept a new transfer and returns while the copy proceeds in hardware.
func (l *Loader) piReadAsync(dramAddr uint32, cartAddr uint32, length uint32) {
	for l.read32(n64.PIStatusReg)&(n64.PIStatusDMABusy|n64.PIStatusIOBusy) != 0 {
	}
	l.write32(n64.PIDRAMAddrReg, dramAddr)
	l.write32(n64.PICartAddrReg, cartAddr)
	l.write32(n64.PIWrLenReg, length-1)
}

// piWait polls until the PI is idle. Data the transfer was supposed to
// produce must not be touched before this returns.
func (l *Loader) piWait() {
	for l.read32(n64.PIStatusReg)&(n64.PIStatusDMABusy|n64.PIStatusIOBusy) != 0 {
	}
}

// read32 reads a word from an address the firmware knows is mapped. The
// firmware has no error path; a failed access here is a bug in the boot code
// itself.
func (l *Loader) read32(address uint32) uint32 {
	v, err := l.bus.Read32(address)
	if err != nil {
		panic(err)
	}
	return v
}

func (l *Loader) write32(address uint32, data uint32) {
	if err := l.bus.Write32(address, data); err != nil {
		panic(err)
	}
}
