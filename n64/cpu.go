package n64

// Cache geometry of the VR4300: 16 KiB instruction cache with 32-byte lines,
// 8 KiB data cache with 16-byte lines.
const (
	icacheLines = 512
	dcacheLines = 512
)

// CPU holds the little CPU state the boot hand-off touches: the cache line
// valid bits, the stack pointer and the program counter.
type CPU struct {
	icacheValid [icacheLines]bool
	dcacheValid [dcacheLines]bool

	sp uint32
	pc uint32

	handedOff bool
	trace     *Trace
}

// NewCPU creates a CPU with every cache line valid, the state the earlier
// boot stages leave it in.
func NewCPU(trace *Trace) *CPU {
	c := &CPU{trace: trace}
	for i := range c.icacheValid {
		c.icacheValid[i] = true
	}
	for i := range c.dcacheValid {
		c.dcacheValid[i] = true
	}
	return c
}

// ClearCache invalidates every line of both caches, as the cop0 index-store
// loop in the firmware does.
func (c *CPU) ClearCache() {
	for i := range c.icacheValid {
		c.icacheValid[i] = false
	}
	for i := range c.dcacheValid {
		c.dcacheValid[i] = false
	}
	c.trace.add(TraceCacheClear)
}

// CacheInvalidated reports whether no cache line is left valid.
func (c *CPU) CacheInvalidated() bool {
	for i := range c.icacheValid {
		if c.icacheValid[i] {
			return false
		}
	}
	for i := range c.dcacheValid {
		if c.dcacheValid[i] {
			return false
		}
	}
	return true
}

func (c *CPU) SetStackPointer(v uint32) {
	c.sp = v
	c.trace.add(TraceStack)
}

func (c *CPU) StackPointer() uint32 {
	return c.sp
}

func (c *CPU) PC() uint32 {
	return c.pc
}

// Jump transfers control to the application entry point. Nothing of the boot
// sequence runs after this; in the simulation the caller unwinds back to the
// harness with the hand-off latched.
func (c *CPU) Jump(entry uint32) {
	c.pc = entry
	c.handedOff = true
	c.trace.add(TraceJump)
}

// HandedOff reports whether control has left the boot sequence.
func (c *CPU) HandedOff() bool {
	return c.handedOff
}
