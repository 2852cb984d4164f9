package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/bem/internal/bemlint"
)

// errIssuesFound makes the process exit 1 after the report was printed.
var errIssuesFound = errors.New("lint found issues")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint BEM class names in stylesheets and templates",
	Long: `Check class selectors in CSS files and class attributes in templ and Go
files against the BEM naming rules. Block names passed to bem.New, bem.MustNew
and bem.Use are validated too.

Errors (invalid or empty names) fail the run. Warnings (nested elements,
undefined blocks and classes) fail it only with --strict.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("css", defaultCSSPaths, "Stylesheet patterns to build the block inventory from")
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for class references")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (bemlint) suffix on issues")
}

// runLint is shared between `bem lint` and the bare `bem` command.
func runLint(cmd *cobra.Command) error {
	logger := loggerFor(cmd)
	lintConfig := buildLintConfig()
	lintConfig.Logger = logger

	if err := lintConfig.BEM.Check(); err != nil {
		logger.Warn("separator scheme may produce ambiguous class names", zap.Error(err))
	}
	logger.Debug("lint config",
		zap.Strings("css", lintConfig.CSSPaths),
		zap.Strings("paths", lintConfig.ScanPaths),
		zap.String("element_separator", lintConfig.BEM.ElementSeparator),
		zap.String("modifier_separator", lintConfig.BEM.ModifierSeparator),
	)

	start := time.Now()
	lintResult, err := bemlint.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}
	logger.Debug("lint finished",
		zap.Int("issues", len(lintResult.Issues)),
		zap.Int("errors", lintResult.ErrorCount),
		zap.Int("warnings", lintResult.WarningCount),
		zap.Duration("duration", time.Since(start)),
	)
	for _, warning := range lintResult.Warnings {
		logger.Warn(warning)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := bemlint.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		bemlint.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig)
	}

	return lintExitError(lintResult, lintConfig.Strict)
}

// lintExitError applies the soft gate: errors always fail, warnings fail
// only in strict mode. Counts are taken before issue limiting.
func lintExitError(result *bemlint.LintResult, strict bool) error {
	if result.ErrorCount > 0 {
		return errIssuesFound
	}
	if strict && result.WarningCount > 0 {
		return errIssuesFound
	}
	return nil
}
