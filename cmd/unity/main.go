package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyballingall/unity-markup/internal/app"
	"github.com/andyballingall/unity-markup/internal/fs"
)

func main() {
	// Create context that cancels on SIGINT (Ctrl+C) or SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr, fs.NewEnvProvider()); err != nil {
		stop()
		//nolint:gocritic // os.Exit is intentional
		os.Exit(1)
	}
}
