// Package main provides a CLI for seeding a local jim-carrier backend with
// demo users, listings, orders and reviews.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/nicolaics/jim-carrier-seed/internal/platform/config"
	apperrors "github.com/nicolaics/jim-carrier-seed/internal/platform/errors"

	seedcmd "github.com/nicolaics/jim-carrier-seed/internal/cmd/seed"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		if apperrors.GetCode(err).Input() {
			config.Exitf("Error: %v\nRun with -h for usage.", err)
		}
		config.Exitf("Error: %v", err)
	}
}
