package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/plotfont/internal/application/usecase"
	"github.com/bnema/plotfont/internal/infrastructure/plotstyle"
)

var applyDemoPath string

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Select the preferred font and configure the plot defaults",
	Long: `Apply runs the selection against the installed fonts and, on a match,
points the gonum/plot defaults at the selected font. Prints one line with
the outcome either way.

Examples:
  plotfont apply
  plotfont apply --demo out.png`,
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyDemoPath, "demo", "", "Render a sample plot to FILE with the configured style")
}

func runApply(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.ApplyUC.Execute(app.Ctx(), usecase.ApplyFontInput{
		Preferred: app.Config.Fonts.Preferred,
	})
	if err != nil {
		return err
	}

	if out.Found {
		fmt.Printf("Using font: %s\n", out.Family)
	} else {
		fmt.Println("Preferred fonts not found — using default plot font.")
	}

	if applyDemoPath != "" {
		if err := plotstyle.RenderDemo(app.Ctx(), app.Sink, applyDemoPath); err != nil {
			return err
		}
		fmt.Printf("Demo plot written to %s\n", applyDemoPath)
	}

	return nil
}
