package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/provide-io/iconset/pkg/icongen"
	"github.com/spf13/cobra"
)

func manifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "List the icons that will be generated, in order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tSIZE\tFILE")
			for i, e := range icongen.Manifest() {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, e.Dimensions(), e.Filename)
			}
			w.Flush()
		},
	}
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that every icon exists with the expected dimensions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			env, err := newLoggingEnvironment(logLevel)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = icongen.ExitFailure
				return
			}
			defer env.Close()

			exitCode = runVerify(env, icongen.OutputDir)
		},
	}
}

// runVerify checks dir against the manifest and returns the exit code.
func runVerify(env *environment, dir string) int {
	manifest := icongen.Manifest()
	if err := icongen.Verify(dir, manifest); err != nil {
		env.Logger.Debug("🔍 Verification failed", "dir", dir, "error", err)
		env.Reporter.Failure("%v", err)
		return icongen.ExitFailure
	}
	env.Reporter.Success("✅ All %d icons present in %s", len(manifest), dir)
	return icongen.ExitSuccess
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion()
		},
	}
}
