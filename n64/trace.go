package n64

// Hardware events recorded during the boot sequence, in the order they
// happen. The integration tests assert on these, and the debug console can
// print them.
const (
	TracePIDMA      = "pi: dma"
	TracePIDone     = "pi: done"
	TraceRCPReset   = "rcp: reset"
	TraceCacheClear = "cpu: cache clear"
	TraceSPWrite    = "sp: dma to rdram"
	TraceSPRead     = "sp: dma from rdram"
	TraceSPDone     = "sp: done"
	TraceSIWrite    = "si: pif write"
	TraceSIDone     = "si: done"
	TraceSIAck      = "si: interrupt ack"
	TraceStack      = "cpu: stack"
	TraceJump       = "cpu: jump"
)

type Trace struct {
	events []string
}

func (t *Trace) add(event string) {
	t.events = append(t.events, event)
}

// Events returns the recorded events in order.
func (t *Trace) Events() []string {
	return t.events
}
