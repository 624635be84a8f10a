package n64

import "testing"

func TestCPUClearCache(t *testing.T) {
	cpu := NewCPU(&Trace{})
	if cpu.CacheInvalidated() {
		t.Fatal("caches start out invalidated; boot leaves them polluted")
	}
	cpu.ClearCache()
	if !cpu.CacheInvalidated() {
		t.Fatal("ClearCache left valid lines behind")
	}
}

func TestCPUJump(t *testing.T) {
	cpu := NewCPU(&Trace{})
	if cpu.HandedOff() {
		t.Fatal("hand-off latched before Jump")
	}
	cpu.SetStackPointer(0x807FFFF0)
	cpu.Jump(0x80100000)
	if !cpu.HandedOff() {
		t.Fatal("Jump did not latch the hand-off")
	}
	if got, want := cpu.PC(), uint32(0x80100000); got != want {
		t.Fatalf("cpu.pc: got=0x%08x, want=0x%08x", got, want)
	}
	if got, want := cpu.StackPointer(), uint32(0x807FFFF0); got != want {
		t.Fatalf("cpu.sp: got=0x%08x, want=0x%08x", got, want)
	}
}
