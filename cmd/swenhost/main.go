// Command swenhost is the reference host CLI: it parses a .swen source
// file, lowers it to IR, schedules it into tiles, and reports the result.
// It performs no backend submission of its own — it proves the core
// pipeline (lexer -> parser -> lowerer -> scheduler) runs clean on real
// input, the way nagac (cmd/nagac) proves a shader compiles end-to-end.
//
// Usage:
//
//	swenhost [-width W] [-height H] <input.swen>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mirror-shades/swen/ir"
	"github.com/mirror-shades/swen/parser"
	"github.com/mirror-shades/swen/swenlog"
	"github.com/mirror-shades/swen/tile"
)

var (
	width   = flag.Int("width", 0, "viewport width in pixels (default: desktop size)")
	height  = flag.Int("height", 0, "viewport height in pixels (default: desktop size)")
	verbose = flag.Bool("v", false, "enable trace logging")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		if err := swenlog.SetLogWriter(os.Stderr); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not enable logging: %v\n", err)
		}
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		usage()
		os.Exit(1)
	}

	source, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}

	root, err := parser.Parse(source, parser.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		os.Exit(1)
	}
	if root.Desktop == nil {
		fmt.Fprintln(os.Stderr, "Error: no desktop in parsed root")
		os.Exit(1)
	}

	buf := ir.NewIRBuffer(ir.DefaultMaxIRInstructions)
	if err := ir.Lower(root.Desktop, buf, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Lowering error: %v\n", err)
		os.Exit(1)
	}

	w, h := int32(*width), int32(*height)
	if w == 0 {
		w = root.Desktop.Size.X
	}
	if h == 0 {
		h = root.Desktop.Size.Y
	}

	scheduler := tile.NewTileScheduler(tile.DefaultConfig())
	scheduler.Reset(w, h)
	snapshot, err := scheduler.Schedule(buf.Instructions(), buf.FrameNumber())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scheduling error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("frame %d: %d instructions, %d tiles (%d solid, %d edge), viewport %dx%d\n",
		snapshot.FrameNumber, len(buf.Instructions()), snapshot.Stats.TotalTiles,
		snapshot.Stats.SolidTiles, snapshot.Stats.EdgeTiles, w, h)

	swenlog.FlushLog()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: swenhost [options] <input.swen>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
