package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/hoshibmatchi/hoshi-client/pkg/log"
)

// HandleAppPanic must be deferred directly by main, recover has no effect in nested calls.
func HandleAppPanic(ctx context.Context, logger log.Logger) {
	if msg := recover(); msg != nil {
		ReportAppPanic(ctx, logger, msg)
	}
}

// ReportAppPanic logs the recovered value and terminates the process.
func ReportAppPanic(ctx context.Context, logger log.Logger, msg any) {
	logger.WithField("panic", log.Fields{
		"message": fmt.Sprintf("%v", msg),
		"stack":   string(debug.Stack()),
	}).Error(ctx, "app failed with panic")
	os.Exit(1)
}
