package n64

import (
	"fmt"

	"github.com/golang/glog"
)

// PI register addresses (physical).
const (
	PIDRAMAddrReg = 0x04600000
	PICartAddrReg = 0x04600004
	PIRdLenReg    = 0x04600008
	PIWrLenReg    = 0x0460000C
	PIStatusReg   = 0x04600010
)

// PI_STATUS bits.
const (
	PIStatusDMABusy uint32 = 0x01
	PIStatusIOBusy  uint32 = 0x02
)

// Cartridge ROM base on the PI bus.
const cartROMBase = 0x10000000

// PI is the cartridge bus DMA engine. A transfer is programmed by writing
// the RDRAM address, the cartridge address and finally the length minus one.
// The engine holds a single transfer at a time; software must poll PI_STATUS
// until the busy bits drop before programming the next one. Programming the
// length while a transfer is in flight corrupts the hardware, so the
// simulation panics there.
type PI struct {
	rdram *RDRAM
	cart  *Cartridge
	trace *Trace

	dramAddr uint32
	cartAddr uint32
	length   uint32

	// status polls left until the current transfer completes
	pending int
	latency int
}

func NewPI(rdram *RDRAM, cart *Cartridge, trace *Trace, latency int) *PI {
	return &PI{rdram: rdram, cart: cart, trace: trace, latency: latency}
}

func (p *PI) writeDRAMAddr(v uint32) {
	p.dramAddr = v & 0x00FFFFFF
}

func (p *PI) writeCartAddr(v uint32) {
	p.cartAddr = v & 0x1FFFFFFF
}

// writeWrLen starts a cartridge-to-RDRAM transfer of v+1 bytes.
func (p *PI) writeWrLen(v uint32) {
	if p.pending > 0 {
		panic(fmt.Sprintf("PI DMA issued while busy: dram=0x%08x, cart=0x%08x", p.dramAddr, p.cartAddr))
	}
	p.length = v + 1
	glog.V(2).Infof("PI DMA: dram=0x%08x, cart=0x%08x, length=%d", p.dramAddr, p.cartAddr, p.length)
	p.trace.add(TracePIDMA)
	if p.latency == 0 {
		p.complete()
	} else {
		p.pending = p.latency
	}
}

// writeRdLen would start a transfer to the cartridge, only meaningful for
// writable storage.
func (p *PI) writeRdLen(v uint32) {
	glog.Infof("Unimplemented PI DMA to cartridge: length=%d", v+1)
}

func (p *PI) complete() {
	cart := p.cartAddr - cartROMBase
	for i := uint32(0); i < p.length; i++ {
		p.rdram.write(p.dramAddr+i, p.cart.read(cart+i))
	}
	p.trace.add(TracePIDone)
}

// readStatus returns the PI status word. Polling the status is what advances
// a pending transfer in this simulation.
func (p *PI) readStatus() uint32 {
	if p.pending > 0 {
		p.pending--
		if p.pending > 0 {
			return PIStatusDMABusy
		}
		p.complete()
	}
	return 0
}

// writeStatus clears the PI interrupt on real hardware. No PI interrupt is
// modeled.
func (p *PI) writeStatus(v uint32) {
}

// reset returns the latches to their power-on values.
func (p *PI) reset() {
	p.dramAddr = 0
	p.cartAddr = 0
}
