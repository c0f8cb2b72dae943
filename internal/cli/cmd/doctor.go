package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/plotfont/internal/application/usecase"
	"github.com/bnema/plotfont/internal/cli/styles"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check font discovery and preferred font availability",
	Long: `Doctor reports whether font discovery works on this system and which of
the preferred fonts are installed.

Examples:
  plotfont doctor`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.CheckUC.Execute(app.Ctx(), usecase.CheckFontsInput{
		Preferred: app.Config.Fonts.Preferred,
	})
	if err != nil {
		return err
	}

	renderer := styles.NewDoctorRenderer(app.Theme)
	fmt.Print(renderer.Render(out))
	return nil
}
