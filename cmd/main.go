package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"slsbundler.dev/cli/internal/interfaces/cli"
	"slsbundler.dev/cli/internal/interfaces/di"
)

func main() {
	container := di.NewContainer()

	// Cancelling the context stops a running webpack child
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx, container.GetCLIContainer())
}
