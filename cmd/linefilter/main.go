package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gcstr/linefilter/internal/cli"
)

var (
	execCLI      = cli.Execute
	notifySignal = signal.Notify
)

func main() {
	os.Exit(run())
}

// run executes the CLI with a context that is canceled on SIGINT or SIGTERM.
func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	notifySignal(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	return execCLI(ctx)
}
