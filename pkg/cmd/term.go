package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func TermSignalAwaiter(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	<-ctx.Done()
	return nil
}
