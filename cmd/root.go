package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "phoccy",
	Short: "Campus chatbot for the Pillai HOC colleges",
	Long: `PHOCCy answers visitor questions about the Pillai HOC campus and its
colleges: the PHCET entrance exam, admissions, courses, placements and
contacts. Keyword-matched questions are answered from the knowledge
base; the conversation context carries the current topic across turns,
and unmatched questions fall back to a generative model.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".phoccy.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildLogger creates the process logger. Verbose mode lowers the level
// to debug.
func buildLogger() (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}
