package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cubeclub/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a cubeclub configuration with an interactive wizard",
	Long:  `Runs an interactive wizard that asks for the site title and the published sheet URLs, then writes the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
