package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/abimaelfv/titulacion-cli/internal/cli"
	"github.com/abimaelfv/titulacion-cli/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			returnError = fmt.Errorf("panic recovered: %v", r)
		}
	}()

	cfg := config.New()
	logger := newLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	displayAppname(cfg.AppName)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return app.Root().ExecuteContext(ctx)
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
