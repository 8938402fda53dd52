/*
* Copyright (c) 2023-present unTill Pro, Ltd.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voedger/kommon/pkg/goutils/logger"
)

// ExecCommandAndCatchInterrupt executes cmd with context which is cancelled on interrupt signal
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(context.Background(), cmd.ExecuteContext)
}

func goAndCatchInterrupt(ctx context.Context, f func(ctx context.Context) error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- f(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		logger.Info("interrupted, waiting for command to finish...")
	}
	return <-done
}
