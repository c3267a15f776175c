package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tutorbase/backend/internal/app"
	"github.com/tutorbase/backend/internal/config"
	"github.com/tutorbase/backend/internal/service"
)

var Version = "dev"

func main() {
	rootCmd := newRootCmd(openRefunder, os.Stdout)
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRefunder connects with the same configuration the API server uses
func openRefunder(ctx context.Context) (service.Refunder, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.Logger.NewLogger("refundctl")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return a.Refunds, a.Close, nil
}
