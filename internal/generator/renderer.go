package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

var (
	// ErrEmptyBuildCommand is returned when the configured build command has no program.
	ErrEmptyBuildCommand = errors.New("build command is empty")
	// ErrBuildCommandNotFound is returned when the build program is not on PATH.
	ErrBuildCommandNotFound = errors.New("build command not found")
	// ErrBuildCommandFailed is returned when the build program exits unsuccessfully.
	ErrBuildCommandFailed = errors.New("build command failed")
)

// Renderer performs the site generator's own build after the menu is written.
// Swapping it lets tests and dry runs skip the external program.
type Renderer interface {
	Execute(ctx context.Context, dir string) error
}

// CommandRenderer runs a command line in dir. The line is split on whitespace;
// no shell is involved.
type CommandRenderer struct {
	Command string
}

func (r CommandRenderer) Execute(ctx context.Context, dir string) error {
	args := strings.Fields(r.Command)
	if len(args) == 0 {
		return ErrEmptyBuildCommand
	}
	program, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBuildCommandNotFound, args[0], err)
	}

	// #nosec G204 -- the command comes from the site configuration
	cmd := exec.CommandContext(ctx, program, args[1:]...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	slog.Info("Running site build", slog.String("command", r.Command), logfields.Path(dir))

	err = cmd.Run()
	if out := stdout.String(); out != "" {
		slog.Debug("build stdout", slog.String("output", out))
	}
	if errOut := stderr.String(); errOut != "" {
		slog.Warn("build stderr", slog.String("error_output", errOut))
	}
	if err != nil {
		output := strings.TrimSpace(stderr.String())
		if output == "" {
			output = strings.TrimSpace(stdout.String())
		}
		if output != "" {
			return fmt.Errorf("%w: %w: %s", ErrBuildCommandFailed, err, output)
		}
		return fmt.Errorf("%w: %w", ErrBuildCommandFailed, err)
	}
	return nil
}

// NoopRenderer performs no rendering; only the menu files are written.
type NoopRenderer struct{}

func (NoopRenderer) Execute(_ context.Context, dir string) error {
	slog.Debug("NoopRenderer skipping build", logfields.Path(dir))
	return nil
}
