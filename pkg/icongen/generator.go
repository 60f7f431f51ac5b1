package icongen

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Generator runs the probe → install → generate sequence.
type Generator struct {
	Converter  Converter
	Installer  Installer
	Manifest   []Entry
	Source     string
	OutputDir  string
	Background string

	// VerifyOutputs re-reads every generated icon after a successful run.
	VerifyOutputs bool

	Logger   hclog.Logger
	Reporter *Reporter
}

// NewGenerator wires a Generator to the fixed manifest and paths.
func NewGenerator(conv Converter, inst Installer, logger hclog.Logger, reporter *Reporter) *Generator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if reporter == nil {
		reporter = NewReporter(io.Discard, false)
	}
	return &Generator{
		Converter:  conv,
		Installer:  inst,
		Manifest:   Manifest(),
		Source:     SourcePath,
		OutputDir:  OutputDir,
		Background: BackgroundTransparent,
		Logger:     logger,
		Reporter:   reporter,
	}
}

// CheckToolAvailable probes the converter once.
func (g *Generator) CheckToolAvailable(ctx context.Context) bool {
	ok := g.Converter.Probe(ctx)
	g.Logger.Debug("🔍 Converter probe", "converter", g.Converter.Name(), "available", ok)
	return ok
}

// InstallTool attempts to install the converter. On failure it prints the
// command to run by hand.
func (g *Generator) InstallTool(ctx context.Context) bool {
	return g.installTool(ctx) == nil
}

func (g *Generator) installTool(ctx context.Context) error {
	g.Reporter.Step("Installing %s...", g.Converter.Name())
	if err := g.Installer.Install(ctx); err != nil {
		g.Reporter.Failure("Failed to install %s. Please install it manually:", g.Converter.Name())
		if hint := g.Installer.ManualHint(); hint != "" {
			g.Reporter.Step("%s", hint)
		}
		return err
	}
	g.Logger.Info("📦 Converter installed", "converter", g.Converter.Name())
	return nil
}

// EnsureTool probes the converter and installs it when missing. A failed
// install is returned wrapped in ErrToolMissing.
func (g *Generator) EnsureTool(ctx context.Context) error {
	if g.CheckToolAvailable(ctx) {
		return nil
	}
	g.Reporter.Step("%s not found. Installing...", g.Converter.Name())
	if err := g.installTool(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrToolMissing, g.Converter.Name(), err)
	}
	return nil
}

// GenerateIcons converts the source once per manifest entry, in order. The
// first failure stops the run; icons already written are left in place.
func (g *Generator) GenerateIcons(ctx context.Context) error {
	g.Reporter.Step("Generating iOS app icons...")

	for i, e := range g.Manifest {
		req := Request{
			Source:     g.Source,
			Size:       e.Size,
			Background: g.Background,
			Output:     filepath.Join(g.OutputDir, e.Filename),
		}
		g.Reporter.Step("Creating %s (%s)...", e.Filename, e.Dimensions())
		g.Logger.Debug("🖼️ Converting", "index", i+1, "of", len(g.Manifest), "size", e.Size, "output", req.Output)

		if err := g.Converter.Resize(ctx, req); err != nil {
			g.Reporter.Failure("Error creating %s: %v", e.Filename, err)
			return fmt.Errorf("create %s: %w", e.Filename, err)
		}
	}

	g.Reporter.Success("✅ All icons generated successfully!")
	return nil
}

// Run executes the whole sequence and returns the process exit code.
func (g *Generator) Run(ctx context.Context) int {
	g.Reporter.Heading("🎨 iOS App Icon Generator")

	if err := g.EnsureTool(ctx); err != nil {
		g.Logger.Error("❌ Converter unavailable", "error", err)
		return ExitFailure
	}

	if err := g.GenerateIcons(ctx); err != nil {
		g.Logger.Error("❌ Icon generation failed", "error", err)
		g.Reporter.Failure("\n❌ Icon generation failed!")
		return ExitFailure
	}

	if g.VerifyOutputs {
		if err := Verify(g.OutputDir, g.Manifest); err != nil {
			g.Logger.Error("❌ Verification failed", "error", err)
			g.Reporter.Failure("\n❌ %v", err)
			return ExitFailure
		}
		g.Reporter.Success("🔍 All %d icons verified.", len(g.Manifest))
	}

	g.Reporter.Success("\n🎉 Icon generation complete!")
	g.Reporter.Step("Your app now has a custom collage-themed icon!")
	return ExitSuccess
}
