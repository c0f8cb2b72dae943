// Package cmd provides Cobra CLI commands for plotfont.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/plotfont/internal/cli"
	"github.com/bnema/plotfont/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "plotfont",
		Short: "Configure gonum/plot to use your preferred fonts",
		Long: `plotfont selects the first font from a preferred list that is installed
on this system and points the gonum/plot defaults at it. When none of the
preferred fonts are installed, the plot defaults stay untouched.

Fonts are discovered through fontconfig (fc-list) where available, with a
directory scan of the platform font folders as fallback. Scan results are
cached so repeat invocations stay fast.

The preferred list defaults to the Apple SF fonts and can be changed in
~/.config/plotfont/config.toml or interactively with 'plotfont pick'.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s, %s)",
		info.Version, info.Commit, info.BuildDate, info.GoVersion)
}
