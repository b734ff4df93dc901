package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger, _ := zap.NewProduction()
		logger.Sugar().Errorf("reimb-parser: %v", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}
