// Command blres inspects Bladed simulation result files: it scans a run's
// header files, dumps variables and header metadata, and prints Campbell
// diagram data.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	debug  bool
	unload bool
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "blres",
	Short: "Inspect Bladed simulation result files",
	Long: `blres reads the header/payload file pairs a Bladed run writes and the
optional Campbell diagram companion files.

A run's output lives in one directory and shares a filename prefix; every
command takes <dir> and <prefix> arguments, e.g.:

  blres scan ./results powprod_12ms
  blres dump ./results powprod_12ms "Electrical power"
  blres campbell ./results stab_analysis_run`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = buildLogger()
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		return nil
	},
}

func buildLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&unload, "unload", false, "release each payload after reading it")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(campbellCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
