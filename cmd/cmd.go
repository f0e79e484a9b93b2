// Package cmd defines the command-line interface for gitcrew.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gitcrew/gitcrew/internal/contract"
	"github.com/gitcrew/gitcrew/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("start", "f", "", "Start date (YYYY-MM-DD, RFC3339 or time ago)")
	rootCmd.PersistentFlags().StringP("end", "u", "", "End date (YYYY-MM-DD, RFC3339 or time ago)")
	rootCmd.PersistentFlags().StringP("title", "t", "", "Title for generated charts")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().StringP("output-file", "o", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent extraction workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
