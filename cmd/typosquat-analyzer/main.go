package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/internal/cli"
)

func main() {
	// TYPOSQUAT_* settings may live in a local .env file.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	// After the first signal, restore default handling so a second one kills
	// the process even if the run is stuck.
	context.AfterFunc(ctx, stop)

	code := cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
