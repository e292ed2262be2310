package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/bedrock-server-manager/internal/app"
	"github.com/MKhiriev/bedrock-server-manager/internal/config"
	"github.com/MKhiriev/bedrock-server-manager/internal/logger"
	"github.com/MKhiriev/bedrock-server-manager/internal/service"
	"github.com/MKhiriev/bedrock-server-manager/internal/store"
	"github.com/MKhiriev/bedrock-server-manager/models"
	"github.com/rs/zerolog"
)

const role = "bedrock-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run loads both startup documents and reports them. Every failure is
// logged to stderr before it is returned, so the caller only has to pick the
// exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.GetStructuredConfig(args)
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintf(stdout, "Usage of %s:\n", role)
		config.Usage(stdout)
		return nil
	}
	if err != nil {
		bootstrapLogger(stdout, stderr).Error().Err(err).Msg(app.MsgConfigsFailed)
		return err
	}

	log, err := newLogger(cfg.Logging, stdout, stderr)
	if err != nil {
		bootstrapLogger(stdout, stderr).Error().Err(err).Msg("error creating logger")
		return err
	}

	storages := store.NewStorages(cfg.Files)
	services := service.NewServices(storages, log)

	services.StartupReporter.ReportBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx = log.WithContext(ctx)
	loaded, err := services.ConfigLoader.Load(ctx)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgConfigLoadFailed)
		return err
	}

	services.StartupReporter.Report(loaded)
	return nil
}

func newLogger(cfg config.Logging, stdout, stderr io.Writer) (*logger.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("error parsing log level: %w", err)
	}

	return logger.New(role, logger.Options{
		Level:  level,
		Format: logger.Format(strings.ToLower(cfg.Format)),
		Out:    stdout,
		ErrOut: stderr,
	}), nil
}

// bootstrapLogger is used before the configured logger exists.
func bootstrapLogger(stdout, stderr io.Writer) *logger.Logger {
	return logger.New(role, logger.Options{Level: zerolog.InfoLevel, Out: stdout, ErrOut: stderr})
}
