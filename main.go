// main holds the entry logic for the bugtally CLI.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/entolab/bugtally/cmd"
	"github.com/entolab/bugtally/internal/archive"
	"github.com/entolab/bugtally/internal/contract"
)

func main() {
	os.Exit(run())
}

// run executes the CLI and returns the process exit code. Archive cleanup
// lives here so os.Exit never skips it.
func run() int {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "⚠️  Interrupted")
		archive.CloseArchive()
		os.Exit(1)
	}()

	cmd.SetArchiveManager(archive.Manager)

	defer archive.CloseArchive()

	err := cmd.Execute()
	if perr := cmd.StopProfiling(); perr != nil {
		contract.LogWarn("Failed to stop profiling", perr)
	}
	if err != nil {
		fmt.Println("❌", err)
		return 1
	}
	return 0
}
