package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/cubeclub/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cubeclub",
	Short: "Community site for cube drafts and tournaments, fed by published spreadsheets",
	Long: `Cube Club reads the published CSV exports of four spreadsheets
(showcase, upcoming tournaments, previous tournaments and cubes) and
turns them into a website. Serve it live, build it as static files,
search it from the terminal, or expose it to AI agents over MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
