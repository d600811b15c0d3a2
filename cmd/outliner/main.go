package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Context with signal handling so a batch run can drain cleanly
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
