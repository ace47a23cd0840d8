// Formgroup-cli renders FormGroup components from definition files and
// OpenAPI documents, and can fill a component interactively.
//
// Usage:
//
//	formgroup-cli [command] [flags]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formgroup/internal/logging"
)

var (
	logLevel string
	logger   = zap.NewNop()
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "formgroup-cli",
	Short: "Render and fill FormGroup components",
	Long: `Render FormGroup components as HTML from definition files (JSON/YAML)
or from the request body of an OpenAPI operation, or fill one interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		built, err := logging.New(logLevel)
		if err != nil {
			return err
		}
		logger = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LogLevelEnvVar)
}
