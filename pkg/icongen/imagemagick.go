package icongen

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/provide-io/iconset/internal/cmdline"
)

// Defaults for the ImageMagick converter.
const (
	DefaultConvertBin     = "convert"
	DefaultInstallCommand = "brew install imagemagick"
)

// ImageMagick drives the ImageMagick convert binary. It is both the
// Converter and the Installer for itself.
type ImageMagick struct {
	Bin            string
	InstallCommand []string
	Logger         hclog.Logger
}

// NewImageMagick builds a converter for bin, installable with installCommand
// (a shell-style command line). Empty values fall back to the defaults.
func NewImageMagick(bin, installCommand string, logger hclog.Logger) (*ImageMagick, error) {
	if bin == "" {
		bin = DefaultConvertBin
	}
	if installCommand == "" {
		installCommand = DefaultInstallCommand
	}
	argv, err := cmdline.Split(installCommand)
	if err != nil {
		return nil, fmt.Errorf("parse install command %q: %w", installCommand, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("install command is empty")
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &ImageMagick{
		Bin:            bin,
		InstallCommand: argv,
		Logger:         logger.Named("imagemagick"),
	}, nil
}

func (m *ImageMagick) Name() string { return "ImageMagick" }

// Probe runs "<bin> -version". A zero exit status means the tool is usable;
// a missing binary or any other failure means it is not.
func (m *ImageMagick) Probe(ctx context.Context) bool {
	out, err := runTool(ctx, m.Logger, m.Bin, "-version")
	if err != nil {
		m.Logger.Debug("🔍 Converter probe failed", "bin", m.Bin, "error", err)
		return false
	}
	m.Logger.Debug("🔍 Converter available", "bin", m.Bin, "version", firstLine(out))
	return true
}

// Args returns the convert arguments for req, excluding the binary itself.
func (m *ImageMagick) Args(req Request) []string {
	return []string{
		req.Source,
		"-resize", req.Dimensions(),
		"-background", req.Background,
		req.Output,
	}
}

// Resize runs one convert invocation.
func (m *ImageMagick) Resize(ctx context.Context, req Request) error {
	if _, err := runTool(ctx, m.Logger, m.Bin, m.Args(req)...); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrConversionFailed, req.Output, err)
	}
	return nil
}

// Install runs the package-manager command.
func (m *ImageMagick) Install(ctx context.Context) error {
	m.Logger.Info("📦 Installing converter", "command", m.ManualHint())
	if _, err := runTool(ctx, m.Logger, m.InstallCommand[0], m.InstallCommand[1:]...); err != nil {
		return fmt.Errorf("%w: %w", ErrInstallFailed, err)
	}
	return nil
}

func (m *ImageMagick) ManualHint() string {
	return cmdline.Join(m.InstallCommand)
}
