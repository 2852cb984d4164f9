package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/bem/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "bem",
	Short: "BEM class name composer and linter",
	Long: `Compose block__element--modifier class names and lint stylesheets
and templ templates for names that break the BEM naming rules.`,
	// Config and logger are set up once for every command, after flags are parsed.
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return setupLogger(cmd)
	},
	// Default behavior: run lint when no subcommand is given.
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigPath, "Config file path")
	rootCmd.PersistentFlags().String("element-separator", "", "Separator between block and element (default \"__\")")
	rootCmd.PersistentFlags().String("modifier-separator", "", "Separator before a modifier (default \"--\")")

	rootCmd.AddCommand(classCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogger builds the zap logger for this run and stores it on the
// command context.
func setupLogger(cmd *cobra.Command) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	logger, err := logging.NewLogger(logging.Config{
		Component: cmd.Name(),
		Level:     logging.LevelFor(verbose),
		Output:    cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, logger))
	return nil
}

// loggerFor returns the logger set up for cmd.
func loggerFor(cmd *cobra.Command) *zap.Logger {
	return logging.L(cmd.Context())
}
