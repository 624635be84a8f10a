package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/pprof"

	"github.com/bradleyjkemp/memviz"
	"github.com/golang/glog"

	"github.com/jyane/jn64/boot"
	"github.com/jyane/jn64/n64"
	"github.com/jyane/jn64/statsview"
)

var (
	path       = flag.String("path", "./rom/sample1.z64", "path to N64 ROM file")
	memSize    = flag.Int("memsize", 8<<20, "installed RDRAM size in bytes")
	compat     = flag.Bool("compat", false, "use the compatibility cleanup variant")
	latency    = flag.Int("latency", 4, "DMA latency in status polls, 0 completes transfers instantly")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	debug      = flag.Bool("debug", false, "run as debug mode")
	memvizPath = flag.String("memviz", "", "write a graphviz dump of the console state to file")
	stats      = flag.Bool("statsview", false, "launch the stats server (needs the statsview build tag)")
)

// readFile reads file as bytes
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func main() {
	flag.Parse()
	if *cpuprofile != "" {
		f, err := os.Create("cpu.pprof")
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			glog.Warning("statsview is not built in, rebuild with -tags statsview")
		}
	}
	buf, err := readFile(*path)
	if err != nil {
		glog.Fatalln("Failed to read: " + *path)
	}
	cart, err := n64.NewCartridge(buf)
	if err != nil {
		glog.Fatalln("Failed to load the cartridge: ", err)
	}
	glog.Infof("Loaded cartridge: entry=0x%08x, size=%d", cart.Entry(), cart.ImageSize())
	console, err := n64.NewConsole(cart, uint32(*memSize), *latency)
	if err != nil {
		glog.Fatalln("Failed to initiate Console: ", err)
	}

	loader := boot.New(console, *compat)
	loader.Run()

	fmt.Printf("Handed off: pc=0x%08x, sp=0x%08x\n", console.CPU.PC(), console.CPU.StackPointer())
	for _, e := range console.Trace.Events() {
		fmt.Println("  " + e)
	}
	if *memvizPath != "" {
		f, err := os.Create(*memvizPath)
		if err != nil {
			glog.Fatal("Failed to create memviz dump: ", err)
		}
		defer f.Close()
		memviz.Map(f, console)
	}
	if *debug {
		dc := n64.NewDebugConsole(console)
		for {
			if err := dc.Step(); err != nil {
				glog.Error(err)
			}
		}
	}
}
