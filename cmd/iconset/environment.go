package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconset/internal/config"
	"github.com/provide-io/iconset/pkg/icongen"
	"github.com/provide-io/iconset/pkg/logging"
)

// environment bundles everything a command needs, built from the process
// environment and flags. Converter and Installer stay nil for commands that
// never convert.
type environment struct {
	Config    config.Config
	Logger    hclog.Logger
	Reporter  *icongen.Reporter
	Converter icongen.Converter
	Installer icongen.Installer

	closeLog func() error
	errOut   io.Writer
}

// Close releases the log file. A failed close is reported on stderr since
// the logger may be the thing that broke.
func (e *environment) Close() {
	if err := e.closeLog(); err != nil {
		fmt.Fprintf(e.errOut, "Warning: closing log file %s: %v\n", e.Config.LogPath, err)
	}
}

// newLoggingEnvironment reads ICONSET_* and sets up the logger and reporter
// only. Converter settings are read but not validated.
func newLoggingEnvironment(cliLogLevel string) (*environment, error) {
	var cfg config.Config
	if err := config.ParseEnv(&cfg); err != nil {
		return nil, err
	}

	levelSpec, levelSource := logging.ResolveLevel(cliLogLevel, cfg.LogLevel)
	if err := logging.ValidateLevel(levelSpec); err != nil {
		return nil, fmt.Errorf("%s: %w", levelSource, err)
	}

	output, closeLog, err := logging.OpenOutput(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("ICONSET_LOG_PATH %q: %w", cfg.LogPath, err)
	}
	logger := logging.NewLogger("iconset", levelSpec, output)
	logger.Debug("🔧 Logger configured", "level", levelSpec, "source", levelSource)

	return &environment{
		Config:   cfg,
		Logger:   logger,
		Reporter: icongen.NewReporter(os.Stdout, !color.NoColor),
		closeLog: closeLog,
		errOut:   os.Stderr,
	}, nil
}

// newEnvironment also applies the backend override and builds the
// converter. Flags win over ICONSET_* variables.
func newEnvironment(cliLogLevel, cliBackend string) (*environment, error) {
	env, err := newLoggingEnvironment(cliLogLevel)
	if err != nil {
		return nil, err
	}
	if cliBackend != "" {
		env.Config.Backend = cliBackend
	}
	if err := env.Config.Validate(); err != nil {
		env.Close()
		return nil, err
	}

	conv, inst, err := newConverter(env.Config, env.Logger)
	if err != nil {
		env.Close()
		return nil, err
	}
	env.Logger.Debug("🔧 Converter selected", "backend", env.Config.Backend, "converter", conv.Name())
	env.Converter, env.Installer = conv, inst
	return env, nil
}

func newConverter(cfg config.Config, logger hclog.Logger) (icongen.Converter, icongen.Installer, error) {
	switch cfg.Backend {
	case config.BackendNative:
		n := icongen.NewNative(logger)
		return n, n, nil
	case config.BackendImageMagick:
		m, err := icongen.NewImageMagick(cfg.ConvertBin, cfg.InstallCommand, logger)
		if err != nil {
			return nil, nil, err
		}
		return m, m, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
