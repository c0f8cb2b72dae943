package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/plotfont/internal/application/usecase"
	"github.com/bnema/plotfont/internal/cli/model"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively pick a font and save it to the config",
	Long: `Pick opens an interactive list of the fonts installed on this system.
The selected family is written to the config file as the first preferred
font, so subsequent 'plotfont apply' runs (and library callers reading the
config) prefer it.

Examples:
  plotfont pick`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.ListUC.Execute(app.Ctx(), usecase.ListFontsInput{})
	if err != nil {
		return err
	}
	if len(out.Faces) == 0 {
		return fmt.Errorf("no fonts discovered on this system")
	}

	program := tea.NewProgram(model.NewPickModel(app.Theme, out.Faces))
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	picker, ok := finalModel.(*model.PickModel)
	if !ok || picker.Choice == nil {
		fmt.Println("No font selected.")
		return nil
	}

	// Put the choice first, keep the remaining preferred families as
	// fallbacks.
	preferred := []string{picker.Choice.Family}
	for _, family := range app.Config.Fonts.Preferred {
		if family != picker.Choice.Family {
			preferred = append(preferred, family)
		}
	}

	if err := app.ConfigMgr.SavePreferred(preferred); err != nil {
		return err
	}

	fmt.Printf("Preferred font set to: %s\n", picker.Choice.Family)
	return nil
}
