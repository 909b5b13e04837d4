package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	appkg "github.com/xenking/shop-kiosk/internal/app"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := appkg.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return err
	}

	lg, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return err
	}
	defer func() { _ = lg.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := appkg.Run(ctx, lg, cfg, os.Stdin, os.Stdout); err != nil {
		lg.Error("shop kiosk failed", zap.Error(err))
		return err
	}
	return nil
}
