package n64

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/glog"
)

// SP register addresses (physical).
const (
	SPRSPAddrReg  = 0x04040000
	SPDRAMAddrReg = 0x04040004
	SPRdLenReg    = 0x04040008
	SPWrLenReg    = 0x0404000C
	SPStatusReg   = 0x04040010
	SPDMAFullReg  = 0x04040014
	SPDMABusyReg  = 0x04040018
)

// SP_STATUS bits.
const (
	SPStatusHalt    uint32 = 0x01
	SPStatusDMABusy uint32 = 0x04
	SPStatusDMAFull uint32 = 0x08
)

// RSP memory (physical). Bit 12 of an RSP DMA address selects the IMEM bank.
const (
	SPDMEMBase = 0x04000000
	SPIMEMBase = 0x04001000

	spMemSize = 0x1000
)

type spTransfer struct {
	rspAddr  uint32
	dramAddr uint32
	length   uint32
	toRDRAM  bool

	// status polls left until the transfer completes
	pending int
}

// SP is the RSP interface: the 4 KiB DMEM and IMEM banks and the DMA engine
// that moves data between them and RDRAM. The engine runs one transfer and
// queues one more; SP_DMA_FULL reports whether the queue slot is taken and
// SP_DMA_BUSY whether anything is still moving.
//
// A transfer addresses a single bank and wraps around inside it, which is
// what makes a 32 KiB transfer out of the 4 KiB IMEM bank work: the bank
// contents repeat. IMEM is left zeroed by the earlier boot stages, so such a
// transfer erases the RDRAM side.
type SP struct {
	rdram *RDRAM
	trace *Trace

	dmem [spMemSize]byte
	imem [spMemSize]byte

	rspAddr  uint32
	dramAddr uint32

	active  *spTransfer
	queued  *spTransfer
	latency int
}

func NewSP(rdram *RDRAM, trace *Trace, latency int) *SP {
	return &SP{rdram: rdram, trace: trace, latency: latency}
}

func (s *SP) writeRSPAddr(v uint32) {
	s.rspAddr = v & 0x1FFF
}

func (s *SP) writeDRAMAddr(v uint32) {
	s.dramAddr = v & 0x00FFFFFF
}

// startDMA issues a transfer. The length word encodes (rows-1)<<12 in bits
// 12-19 and (row length in bytes)-1 in bits 0-11; the hardware moves
// rows*rowLength bytes. Issuing while the queue slot is taken corrupts the
// hardware, so the simulation panics there.
func (s *SP) startDMA(v uint32, toRDRAM bool) {
	if s.queued != nil {
		panic(fmt.Sprintf("SP DMA issued while full: rsp=0x%08x, dram=0x%08x", s.rspAddr, s.dramAddr))
	}
	rows := ((v >> 12) & 0xFF) + 1
	rowLength := (v & 0xFFF) + 1
	t := &spTransfer{
		rspAddr:  s.rspAddr,
		dramAddr: s.dramAddr,
		length:   rows * rowLength,
		toRDRAM:  toRDRAM,
		pending:  s.latency,
	}
	glog.V(2).Infof("SP DMA: rsp=0x%04x, dram=0x%08x, length=%d, toRDRAM=%v", t.rspAddr, t.dramAddr, t.length, toRDRAM)
	if toRDRAM {
		s.trace.add(TraceSPWrite)
	} else {
		s.trace.add(TraceSPRead)
	}
	if s.active == nil {
		s.active = t
	} else {
		s.queued = t
	}
	if s.latency == 0 {
		s.tick()
	}
}

func (s *SP) complete(t *spTransfer) {
	bank := &s.dmem
	if t.rspAddr&0x1000 != 0 {
		bank = &s.imem
	}
	base := t.rspAddr & (spMemSize - 1)
	for i := uint32(0); i < t.length; i++ {
		if t.toRDRAM {
			s.rdram.write(t.dramAddr+i, bank[(base+i)&(spMemSize-1)])
		} else {
			bank[(base+i)&(spMemSize-1)] = s.rdram.read(t.dramAddr + i)
		}
	}
	s.trace.add(TraceSPDone)
}

// tick advances the engine by one status poll.
func (s *SP) tick() {
	for s.active != nil && s.active.pending == 0 {
		s.complete(s.active)
		s.active, s.queued = s.queued, nil
	}
	if s.active != nil {
		s.active.pending--
	}
}

func (s *SP) readDMAFull() uint32 {
	s.tick()
	if s.queued != nil {
		return 1
	}
	return 0
}

func (s *SP) readDMABusy() uint32 {
	s.tick()
	if s.active != nil {
		return 1
	}
	return 0
}

func (s *SP) readStatus() uint32 {
	s.tick()
	v := SPStatusHalt // the RSP itself stays halted throughout boot
	if s.active != nil {
		v |= SPStatusDMABusy
	}
	if s.queued != nil {
		v |= SPStatusDMAFull
	}
	return v
}

// writeStatus sets and clears the RSP run state, which boot never changes.
func (s *SP) writeStatus(v uint32) {
	glog.Infof("Unimplemented SP status write: data=0x%08x", v)
}

func (s *SP) readDMEM32(offset uint32) uint32 {
	return binary.BigEndian.Uint32(s.dmem[offset&0xFFC:])
}

func (s *SP) writeDMEM32(offset uint32, v uint32) {
	binary.BigEndian.PutUint32(s.dmem[offset&0xFFC:], v)
}

func (s *SP) readIMEM32(offset uint32) uint32 {
	return binary.BigEndian.Uint32(s.imem[offset&0xFFC:])
}

func (s *SP) writeIMEM32(offset uint32, v uint32) {
	binary.BigEndian.PutUint32(s.imem[offset&0xFFC:], v)
}

// reset returns the DMA latches to their power-on values. DMEM and IMEM
// contents are untouched.
func (s *SP) reset() {
	s.rspAddr = 0
	s.dramAddr = 0
}
