package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/desertwitch/layerfs"
	"github.com/desertwitch/layerfs/internal/configuration"
)

type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)

	return nil
}

type options struct {
	configFile string
	logFile    string
	writeDir   string
	basePaths  stringSlice
	hash       string
	debug      bool

	command string
	args    []string
}

func parseOptions(args []string, output io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("layerfs", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: layerfs [flags] <command> [argument]")
		fmt.Fprintln(output, "Commands: mounts, cwd, exists, info, sum, read, write, append, delete, mkdir")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.configFile, "config", "", "read settings from this environment file")
	fs.StringVar(&opts.writeDir, "write-dir", "", "directory receiving all modifications")
	fs.Var(&opts.basePaths, "base", "base path to mount (repeatable, last one wins)")
	fs.StringVar(&opts.hash, "hash", string(layerfs.ChecksumBLAKE3), "checksum algorithm for sum (blake3, xxhash)")
	fs.StringVar(&opts.logFile, "log-file", "", "also append JSON logs to this file")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if fs.NArg() == 0 {
		fs.Usage()

		return nil, fmt.Errorf("%w: no command given", ErrUsage)
	}

	opts.command = fs.Arg(0)
	opts.args = fs.Args()[1:]

	return opts, nil
}

// establishSettings reads the configuration file, if any, and applies the
// command line flags on top of it.
func establishSettings(configHandler *configuration.Handler, opts *options) (*configuration.Settings, error) {
	settings := &configuration.Settings{}

	if opts.configFile != "" {
		s, err := configHandler.EstablishSettings(opts.configFile)
		if err != nil {
			return nil, err
		}
		settings = s
	}

	if opts.writeDir != "" {
		settings.WriteDir = opts.writeDir
	}

	if len(opts.basePaths) > 0 {
		if len(opts.basePaths) > layerfs.MaxMounts {
			return nil, fmt.Errorf("%w: %d given, at most %d", ErrTooManyBasePaths, len(opts.basePaths), layerfs.MaxMounts)
		}

		settings.BasePaths = [layerfs.MaxMounts]string{}
		copy(settings.BasePaths[:], opts.basePaths)
	}

	if opts.debug {
		settings.Debug = true
	}

	return settings, nil
}

func descriptorFromSettings(settings *configuration.Settings) layerfs.Descriptor {
	return layerfs.Descriptor{
		WriteDir:  settings.WriteDir,
		BasePaths: settings.BasePaths,
	}
}
