package n64

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/glog"
)

// SI register addresses (physical).
const (
	SIDRAMAddrReg = 0x04800000
	SIStatusReg   = 0x04800018
)

// SI_STATUS bits.
const (
	SIStatusDMABusy   uint32 = 0x0001
	SIStatusIOBusy    uint32 = 0x0002
	SIStatusInterrupt uint32 = 0x1000
)

// PIF RAM (physical). The last word is the command word the PIF watches.
const (
	PIFRAMBase       = 0x1FC007C0
	PIFCommandOffset = 0x3C

	pifRAMSize = 0x40
)

// PIFCmdTerminateBoot tells the PIF the boot sequence is over. If it never
// arrives, the PIF halts the CPU five seconds after reset.
const PIFCmdTerminateBoot uint32 = 0x8

// SI is the serial interface to the PIF, the console's supervisory
// controller. A single-word write to PIF RAM goes out as a serial
// transaction: the SI stays busy while it is in flight and raises an
// interrupt on completion, which stays pending until acknowledged with a
// status write.
type SI struct {
	trace *Trace

	pifRAM   [pifRAMSize]byte
	dramAddr uint32

	// the in-flight PIF write
	wrOffset uint32
	wrValue  uint32

	// status polls left until the transaction completes
	pending int
	latency int

	interrupt     bool
	terminateBoot bool
}

func NewSI(trace *Trace, latency int) *SI {
	return &SI{trace: trace, latency: latency}
}

// writePIF posts a single-word write to PIF RAM.
func (s *SI) writePIF(offset uint32, v uint32) {
	if s.pending > 0 {
		panic(fmt.Sprintf("SI transaction issued while busy: offset=0x%02x", offset))
	}
	s.wrOffset = offset & 0x3C
	s.wrValue = v
	glog.V(2).Infof("SI PIF write: offset=0x%02x, data=0x%08x", s.wrOffset, v)
	s.trace.add(TraceSIWrite)
	if s.latency == 0 {
		s.complete()
	} else {
		s.pending = s.latency
	}
}

func (s *SI) readPIF32(offset uint32) uint32 {
	return binary.BigEndian.Uint32(s.pifRAM[offset&0x3C:])
}

func (s *SI) complete() {
	binary.BigEndian.PutUint32(s.pifRAM[s.wrOffset:], s.wrValue)
	if s.wrOffset == PIFCommandOffset && s.wrValue&PIFCmdTerminateBoot != 0 {
		s.terminateBoot = true
	}
	s.interrupt = true
	s.trace.add(TraceSIDone)
}

// readStatus returns the SI status word. Polling the status is what advances
// a pending transaction in this simulation.
func (s *SI) readStatus() uint32 {
	if s.pending > 0 {
		s.pending--
		if s.pending > 0 {
			return SIStatusIOBusy
		}
		s.complete()
	}
	if s.interrupt {
		return SIStatusInterrupt
	}
	return 0
}

// writeStatus acknowledges the SI interrupt; the written value is ignored by
// the hardware.
func (s *SI) writeStatus(v uint32) {
	if s.interrupt {
		s.interrupt = false
		s.trace.add(TraceSIAck)
	}
}

func (s *SI) writeDRAMAddr(v uint32) {
	s.dramAddr = v & 0x00FFFFFF
}

// TerminateBootReceived reports whether the PIF has been told that boot is
// complete.
func (s *SI) TerminateBootReceived() bool {
	return s.terminateBoot
}

// InterruptPending reports whether a completion interrupt is waiting.
func (s *SI) InterruptPending() bool {
	return s.interrupt
}
