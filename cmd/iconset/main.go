package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/provide-io/iconset/pkg/icongen"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.buildDate=...".
var (
	version   = "dev"
	buildDate = ""
)

var (
	logLevel    string
	backend     string
	verifyAfter bool
	versionFlag bool
	rootCmd     *cobra.Command

	// exitCode is set by the command handlers and returned from main.
	exitCode = icongen.ExitSuccess
)

// buildTimestamp prefers the linker-stamped buildDate, then the VCS commit
// time recorded by the go tool. It returns "unknown" when neither exists.
func buildTimestamp() string {
	if buildDate != "" {
		return buildDate
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key != "vcs.time" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
			return t.UTC().Format(time.RFC3339)
		}
	}
	return "unknown"
}

func versionString() string {
	return fmt.Sprintf("iconset %s\nBuilt: %s\n", version, buildTimestamp())
}

func printVersion() {
	fmt.Fprint(os.Stdout, versionString())
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "iconset",
		Short: "Generate the iOS AppIcon set from icon.svg",
		Long: `Generate every icon in ` + icongen.OutputDir + ` from ` + icongen.SourcePath + `.

The converter is checked first and installed if missing. Icons are created in a
fixed order; the first failure stops the run.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		Run:           generate,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error, json:<level>)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "Converter backend (imagemagick, native)")
	rootCmd.Flags().BoolVar(&verifyAfter, "verify", false, "Check every icon's dimensions after generating")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(manifestCmd(), verifyCmd(), versionCmd())
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(icongen.ExitSuccess)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(icongen.ExitFailure)
	}
	os.Exit(exitCode)
}

func generate(cmd *cobra.Command, args []string) {
	if versionFlag {
		printVersion()
		return
	}

	env, err := newEnvironment(logLevel, backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = icongen.ExitFailure
		return
	}
	defer env.Close()

	g := icongen.NewGenerator(env.Converter, env.Installer, env.Logger, env.Reporter)
	g.VerifyOutputs = verifyAfter
	exitCode = g.Run(cmd.Context())
}
