package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/gorewood/nextkit/internal/config"
	"github.com/gorewood/nextkit/internal/logging"
	"github.com/gorewood/nextkit/internal/output"
)

// runtime bundles what every command needs once flags are parsed.
type runtime struct {
	root    string
	cfg     *config.Config
	files   []string
	printer *output.Printer
	logger  *zap.Logger
}

// stringFlag reads a flag from the command or its persistent parents.
func stringFlag(flags *pflag.FlagSet, name string) string {
	flag := flags.Lookup(name)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// projectRoot resolves --dir to an absolute directory that must exist.
func projectRoot(cmd *cobra.Command) (string, error) {
	dir := stringFlag(cmd.Flags(), "dir")
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", output.NewUserError(fmt.Sprintf("invalid --dir %q: %v", dir, err))
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", output.NewUserError("project directory not found: " + dir)
		}
		return "", output.NewSystemErrorWithCause("reading project directory "+dir, err)
	}
	if !info.IsDir() {
		return "", output.NewUserError("not a directory: " + dir)
	}
	return abs, nil
}

// newRuntime builds the printer, configuration and logger for cmd.
//
// Errors are rendered through the printer before they are returned, so the
// caller can return them as-is.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	flags := cmd.Flags()
	out := cmd.OutOrStdout()
	jsonMode := isJSONMode(cmd)

	colorMode, err := output.ParseColorMode(stringFlag(flags, "color"))
	if err != nil {
		return nil, fail(output.NewPrinter(out, jsonMode, false).WithStderr(cmd.ErrOrStderr()), err)
	}
	printer := output.NewPrinter(out, jsonMode, output.ResolveColorMode(colorMode, output.IsTTY(out))).
		WithStderr(cmd.ErrOrStderr())

	root, err := projectRoot(cmd)
	if err != nil {
		return nil, fail(printer, err)
	}

	loaded, err := config.Load(root, stringFlag(flags, "config"))
	if err != nil {
		return nil, fail(printer, output.NewUserError(err.Error()))
	}
	cfg := loaded.Config

	level := cfg.Log.Level
	if v := stringFlag(flags, "log-level"); v != "" {
		level = v
	}
	format := cfg.Log.Format
	if v := stringFlag(flags, "log-format"); v != "" {
		format = v
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return nil, fail(printer, output.NewUserError(err.Error()))
	}
	logger.Debug("runtime ready",
		zap.String("root", root),
		zap.Strings("config_files", loaded.Files),
	)

	return &runtime{
		root:    root,
		cfg:     cfg,
		files:   loaded.Files,
		printer: printer,
		logger:  logger,
	}, nil
}

// fail prints err and returns it marked silent so fang does not print it again.
func fail(printer *output.Printer, err error) error {
	printer.Error(err)
	exitErr := &output.ExitError{}
	if !errors.As(err, &exitErr) {
		return &output.ExitError{Code: output.ExitIssues, Message: err.Error(), Cause: err, Silent: true}
	}
	return &output.ExitError{Code: exitErr.Code, Message: exitErr.Message, Cause: err, Silent: true}
}
