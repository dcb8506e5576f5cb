// Command layerfs runs a single operation against a layered filesystem made
// of up to three base paths and one write directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/layerfs"
	"github.com/desertwitch/layerfs/internal/configuration"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

// run executes one command line. Failures are logged here, before the log
// file is closed.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	setupLogging(stderr, nil, false)

	opts, err := parseOptions(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("Invalid usage", "err", err)
		}

		return err
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, err := establishSettings(configHandler, opts)
	if err != nil {
		slog.Error("Failed to establish settings", "err", err)

		return err
	}

	var logFile io.Writer
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Error("Failed to open log file", "path", opts.logFile, "err", err)

			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()

		logFile = f
	}

	setupLogging(stderr, logFile, settings.Debug)

	if err := execute(opts, settings, stdin, stdout); err != nil {
		slog.Error("Command failed", "command", opts.command, "err", err)

		return err
	}

	return nil
}

func execute(opts *options, settings *configuration.Settings, stdin io.Reader, stdout io.Writer) error {
	fsHandler := layerfs.NewHandler(&layerfs.OS{}, &layerfs.Unix{})
	if err := fsHandler.Setup(descriptorFromSettings(settings)); err != nil {
		return fmt.Errorf("failed to set up layered filesystem: %w", err)
	}
	defer func() {
		if err := fsHandler.Shutdown(); err != nil {
			slog.Warn("Failed to shut down layered filesystem", "err", err)
		}
	}()

	slog.Debug("Running command", "command", opts.command, "args", opts.args, "version", Version)

	app := NewApp(fsHandler, stdin, stdout)
	app.Hash = layerfs.ChecksumAlgorithm(opts.hash)

	return app.Run(opts.command, opts.args)
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		ExitCode = 1
	}
}
