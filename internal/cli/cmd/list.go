package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/plotfont/internal/application/usecase"
	"github.com/bnema/plotfont/internal/cli/styles"
)

var listShowPaths bool

var listCmd = &cobra.Command{
	Use:   "list [filter]",
	Short: "List font families installed on this system",
	Long: `List the font families the registry can see, optionally filtered by a
case-insensitive substring.

Examples:
  plotfont list
  plotfont list sf
  plotfont list --paths "dejavu"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listShowPaths, "paths", false, "Show font file paths")
}

func runList(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	out, err := app.ListUC.Execute(app.Ctx(), usecase.ListFontsInput{Filter: filter})
	if err != nil {
		return err
	}

	renderer := styles.NewFontListRenderer(app.Theme)
	fmt.Print(renderer.Render(out.Faces, out.Total, listShowPaths))
	return nil
}
