package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/layerfs"
)

type fsHandler interface {
	Mounts() ([]string, error)
	Cwd() (string, error)
	Exists(name string) (bool, error)
	GetInfo(name string) (layerfs.Info, error)
	ChecksumWith(name string, algorithm layerfs.ChecksumAlgorithm) (string, error)
	Read(name string) (*layerfs.Buffer, error)
	Free(b *layerfs.Buffer) error
	Write(name string, data []byte) error
	Append(name string, data []byte) error
	Delete(name string) error
	Mkdir(path string) error
}

// App runs a single command against a set up layered filesystem.
type App struct {
	fsHandler fsHandler
	stdin     io.Reader
	stdout    io.Writer
	styles    *styles

	// Hash is the checksum algorithm used by the sum command.
	Hash layerfs.ChecksumAlgorithm
}

// NewApp returns a pointer to a new [App].
func NewApp(fsHandler fsHandler, stdin io.Reader, stdout io.Writer) *App {
	return &App{
		fsHandler: fsHandler,
		stdin:     stdin,
		stdout:    stdout,
		styles:    newStyles(lipgloss.NewRenderer(stdout)),
		Hash:      layerfs.ChecksumBLAKE3,
	}
}

// Run executes command with its arguments.
func (app *App) Run(command string, args []string) error {
	switch command {
	case "mounts":
		return app.mounts()
	case "cwd":
		return app.cwd()
	}

	if len(args) != 1 {
		return fmt.Errorf("(app-%s) %w: expected exactly one name", command, ErrMissingArgument)
	}
	name := args[0]

	switch command {
	case "exists":
		return app.exists(name)
	case "info":
		return app.info(name)
	case "sum":
		return app.sum(name)
	case "read":
		return app.read(name)
	case "write":
		return app.write(name, false)
	case "append":
		return app.write(name, true)
	case "delete":
		return wrapCommand(command, app.fsHandler.Delete(name))
	case "mkdir":
		return wrapCommand(command, app.fsHandler.Mkdir(name))
	default:
		return fmt.Errorf("(app) %w: %s", ErrUnknownCommand, command)
	}
}

func wrapCommand(command string, err error) error {
	if err != nil {
		return fmt.Errorf("(app-%s) %w", command, err)
	}

	return nil
}

func (app *App) mounts() error {
	mounts, err := app.fsHandler.Mounts()
	if err != nil {
		return fmt.Errorf("(app-mounts) %w", err)
	}

	fmt.Fprintln(app.stdout, app.styles.renderMounts(mounts))

	return nil
}

func (app *App) cwd() error {
	wd, err := app.fsHandler.Cwd()
	if err != nil {
		return fmt.Errorf("(app-cwd) %w", err)
	}

	fmt.Fprintln(app.stdout, wd)

	return nil
}

func (app *App) exists(name string) error {
	ok, err := app.fsHandler.Exists(name)
	if err != nil {
		return fmt.Errorf("(app-exists) %w", err)
	}

	fmt.Fprintln(app.stdout, app.styles.renderExists(name, ok))

	return nil
}

func (app *App) info(name string) error {
	info, err := app.fsHandler.GetInfo(name)
	if err != nil {
		return fmt.Errorf("(app-info) %w", err)
	}

	fmt.Fprintln(app.stdout, app.styles.renderInfo(name, info))

	return nil
}

func (app *App) sum(name string) error {
	sum, err := app.fsHandler.ChecksumWith(name, app.Hash)
	if err != nil {
		return fmt.Errorf("(app-sum) %w", err)
	}

	fmt.Fprintf(app.stdout, "%s  %s\n", sum, name)

	return nil
}

func (app *App) read(name string) error {
	buf, err := app.fsHandler.Read(name)
	if err != nil {
		return fmt.Errorf("(app-read) %w", err)
	}
	defer app.fsHandler.Free(buf) //nolint:errcheck

	if _, err := app.stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("(app-read) %w", err)
	}

	return nil
}

func (app *App) write(name string, appendData bool) error {
	data, err := io.ReadAll(app.stdin)
	if err != nil {
		return fmt.Errorf("(app-write) failed to read input: %w", err)
	}

	if appendData {
		err = app.fsHandler.Append(name, data)
	} else {
		err = app.fsHandler.Write(name, data)
	}

	if err != nil {
		return fmt.Errorf("(app-write) %w", err)
	}

	return nil
}
