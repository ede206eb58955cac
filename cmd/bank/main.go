// cmd/bank/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	app "branch-ledger/internal"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create and initialize the application
	application := app.NewApplication()
	if err := application.Initialize(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	// The menu blocks on stdin, so an interrupt has to end the process here.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		application.Logger.Info("Interrupted, discarding in-memory state.")
		_ = application.Shutdown(context.Background())
		os.Exit(130)
	}()

	menu := application.NewMenu(os.Stdin, os.Stdout)
	if err := menu.Run(ctx); err != nil {
		application.Logger.Error("Menu stopped unexpectedly", "error", err)
		os.Exit(1)
	}

	if err := application.Shutdown(ctx); err != nil {
		application.Logger.Error("Application shutdown failed", "error", err)
		os.Exit(1)
	}
}
