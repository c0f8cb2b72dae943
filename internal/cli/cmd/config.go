package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/plotfont/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(_ *cobra.Command, _ []string) error {
		configFile, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Println(configFile)
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for the config file",
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	rootCmd.AddCommand(configCmd)
}
