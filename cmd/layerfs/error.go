package main

import "errors"

var (
	// ErrUsage occurs when the command line cannot be parsed.
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownCommand occurs when an unsupported command is given.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument occurs when a command is missing its argument.
	ErrMissingArgument = errors.New("missing argument")

	// ErrTooManyBasePaths occurs when more base paths are given than can be
	// mounted.
	ErrTooManyBasePaths = errors.New("too many base paths")
)
