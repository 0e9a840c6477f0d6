package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext yields a context canceled on the usual termination signals.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
