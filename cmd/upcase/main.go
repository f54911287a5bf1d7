package main

import (
	"fmt"

	"upcase/internal/transform"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

const usageLine = "Usage: upcase <text>"

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:     "upcase [text]",
	Short:   "Uppercase a string and print it with a fixed prefix",
	Version: version,
	Args:    cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runTransform,
}

// runTransform applies the transformer to the first positional argument.
// With no arguments it prints the usage line instead; neither path fails.
func runTransform(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(usageLine)
		return nil
	}

	input := args[0]
	logger.Debug("transforming input", zap.String("input", input))
	fmt.Println(transform.Process(input))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug level)")
}

func main() {
	rootCmd.SetVersionTemplate("upcase version {{.Version}}\n")
	rootCmd.Execute()
}
