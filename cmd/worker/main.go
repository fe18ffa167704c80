package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"airwave/config"
	"airwave/di"
	"airwave/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	di.InitializeWorker().Run(ctx)
}
