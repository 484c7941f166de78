package main

import (
	"fmt"
	"os"

	"stock-predictor/internal/predictor/config"
	"stock-predictor/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	configPath string
	outputFmt  string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "predictor-cli",
	Short: "A CLI for generating synthetic price series and simulated predictions",
	Long: `predictor-cli runs the series generator and the simulated prediction provider
locally, without the HTTP service. Output is rendered as a table, JSON or YAML.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", outputTable, "Output format: table, json or yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(newSeriesCmd(), newPredictCmd())
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func newLogger() (*logger.Logger, error) {
	return logger.New(logLevel, "console")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'\n", err)
		os.Exit(1)
	}
}
