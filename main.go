package main

import (
	"fmt"
	"os"
	"runtime"

	"quadview/gman"
	"quadview/gman/glplotter"
)

func init() {
	// This is needed to arrange that main() runs on main thread.
	// See documentation for functions that are only allowed to be called from the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(glplotter.NewGLFW(glplotter.DefaultConfig().SwapInterval)))
}

// run draws the default quad until the window closes and returns the process
// exit code.
func run(platform glplotter.Platform) int {
	err := glplotter.Run(glplotter.DefaultConfig(), platform, gman.DefaultQuad())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
