package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattgren/dugout/internal/cli"
	"github.com/mattgren/dugout/pkg/logger"
)

func main() {
	// Initialize logging first; the CLI adjusts the level once the
	// configuration is loaded.
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
