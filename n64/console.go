package n64

import "fmt"

const (
	// Boot flags live in the first 16 bytes of DMEM; the first word is the
	// installed memory size, written by the earlier boot stages.
	BootFlagsOffset = 0x0
	BootFlagsSize   = 0x10

	// OSMemSizeAddr is the legacy location of the memory size word, for
	// titles that predate the boot flags area.
	OSMemSizeAddr = 0x80000318
)

type Console struct {
	RDRAM *RDRAM
	Cart  *Cartridge
	PI    *PI
	SP    *SP
	SI    *SI
	CPU   *CPU
	Bus   *CPUBus
	Trace *Trace
}

// NewConsole wires the hardware together and leaves it in the state the
// earlier boot stages would: the installed memory size recorded in the boot
// flags and at the legacy address. latency is the number of status polls a
// DMA engine or SI transaction stays pending for; 0 completes everything
// instantly.
func NewConsole(cart *Cartridge, memSize uint32, latency int) (*Console, error) {
	if memSize != 4<<20 && memSize != 8<<20 {
		return nil, fmt.Errorf("Unsupported RDRAM size: 0x%08x.", memSize)
	}
	trace := &Trace{}
	rdram := NewRDRAM(memSize)
	pi := NewPI(rdram, cart, trace, latency)
	sp := NewSP(rdram, trace, latency)
	si := NewSI(trace, latency)
	cpu := NewCPU(trace)
	bus := NewCPUBus(rdram, sp, pi, si, cart)
	sp.writeDMEM32(BootFlagsOffset, memSize)
	rdram.write32(OSMemSizeAddr&0x1FFFFFFF, memSize)
	return &Console{rdram, cart, pi, sp, si, cpu, bus, trace}, nil
}

// MemSize returns the installed RDRAM size in bytes.
func (c *Console) MemSize() uint32 {
	return c.RDRAM.size()
}

// ResetRCP returns the RCP bus latches to their power-on values. Memory
// contents, DMEM and IMEM included, are untouched.
func (c *Console) ResetRCP() {
	c.PI.reset()
	c.SP.reset()
	c.Trace.add(TraceRCPReset)
}
