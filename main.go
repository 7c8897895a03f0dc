package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-sparse-gol/utils"
)

const defaultConfigFile = "config.json"

func main() {
	configFile := flag.String("config", defaultConfigFile, "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - defaults apply where config.json or GOL_* variables are missing
	config, err := utils.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %+v\n", err)
		os.Exit(2)
	}

	level, _ := utils.ParseLogLevel(config.LogLevel) // checked by Validate
	logger := utils.NewLogger(os.Stderr, level)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, config, logger); err != nil {
		logger.Errorf("%+v", err)
		stop()
		os.Exit(1)
	}
}
