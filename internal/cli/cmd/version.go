package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/plotfont/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(formatBuildInfo(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func formatBuildInfo(info build.Info) string {
	var b strings.Builder
	fmt.Fprintf(&b, "plotfont %s\n", info.Version)
	fmt.Fprintf(&b, "  commit: %s\n", info.Commit)
	fmt.Fprintf(&b, "  built:  %s\n", info.BuildDate)
	fmt.Fprintf(&b, "  go:     %s\n", info.GoVersion)
	fmt.Fprintf(&b, "  source: %s\n", build.RepoURL())
	return b.String()
}
