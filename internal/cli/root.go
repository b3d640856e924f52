package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "partwatch",
	Short: "Replacement prediction for industrial spare parts",
	Long:  "Partwatch predicts when parts on industrial equipment need replacement, from replacement history plus an AI-backed lifespan lookup cascade.",
}

var configPath string

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.partwatch/config.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(duechecksCmd)
	rootCmd.AddCommand(lifespanCmd)
	rootCmd.AddCommand(importCmd)
}
