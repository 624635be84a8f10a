package n64

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DebugConsole wraps a Console for inspecting it through stdio after (or
// between) boot runs.
// commands:
//   p:
//     print a hardware unit.
//   m:
//     dump memory words through the CPU bus.
//   t:
//     print the event trace.
//   q:
//     quit.
type DebugConsole struct {
	*Console
}

func NewDebugConsole(c *Console) *DebugConsole {
	return &DebugConsole{c}
}

func (c *DebugConsole) basePrint() {
	fmt.Println("--------------------------------------------------")
	fmt.Printf("CPU: PC=0x%08x, SP=0x%08x, handed off=%v\n",
		c.CPU.PC(), c.CPU.StackPointer(), c.CPU.HandedOff())
	fmt.Printf("SI:  boot done=%v, interrupt pending=%v\n",
		c.SI.TerminateBootReceived(), c.SI.InterruptPending())
	fmt.Printf("Recorded events: %d\n", len(c.Trace.Events()))
}

func (c *DebugConsole) printCommand(args []string) {
	if len(args) < 2 {
		c.basePrint()
		return
	}
	switch args[1] {
	case "c", "cpu":
		fmt.Printf("%+v\n", *c.CPU)
	case "pi":
		fmt.Printf("%+v\n", *c.PI)
	case "sp":
		fmt.Printf("%+v\n", *c.SP)
	case "si":
		fmt.Printf("%+v\n", *c.SI)
	case "ca", "cartridge":
		fmt.Printf("%+v\n", *c.Cart)
	}
}

func (c *DebugConsole) memCommand(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("Usage: m <hex address> [words]")
	}
	address, err := strconv.ParseUint(strings.TrimPrefix(args[1], "0x"), 16, 32)
	if err != nil {
		return err
	}
	words := 4
	if len(args) > 2 {
		words, err = strconv.Atoi(args[2])
		if err != nil {
			return err
		}
	}
	for i := 0; i < words; i++ {
		a := uint32(address) + uint32(i)*4
		v, err := c.Bus.Read32(a)
		if err != nil {
			return err
		}
		fmt.Printf("0x%08x: 0x%08x\n", a, v)
	}
	return nil
}

func (c *DebugConsole) traceCommand() {
	for _, e := range c.Trace.Events() {
		fmt.Println(e)
	}
}

func (c *DebugConsole) quitCommand() {
	fmt.Println("Quitting.")
	os.Exit(0)
}

func (c *DebugConsole) Step() error {
	fmt.Printf("Debugger mode, 'q' to quit \n>> ")
	in := bufio.NewReader(os.Stdin)
	line, err := in.ReadString('\n')
	if err != nil {
		return err
	}
	args := strings.Split(strings.TrimSuffix(line, "\n"), " ")
	command := args[0]
	switch command {
	case "p", "print":
		c.printCommand(args)
	case "m", "mem":
		if err := c.memCommand(args); err != nil {
			return err
		}
	case "t", "trace":
		c.traceCommand()
	case "q", "quit":
		c.quitCommand()
	default:
		return fmt.Errorf("Unkonwn command %s", line)
	}
	return nil
}
