package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/shopflow/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/shopflow/config.toml)")
	catalogPath := flag.String("catalog", "", "TOML catalog file (optional, defaults to the built-in sample)")
	theme := flag.String("theme", "", "color theme: ShopFlow, Nightfox or Slate (optional)")
	logFile := flag.String("log", "", "log file path (optional)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		CatalogPath: *catalogPath,
		Theme:       *theme,
		LogFile:     *logFile,
		LogLevel:    *logLevel,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "shopflow: %v\n", err)
		return 1
	}
	return 0
}
