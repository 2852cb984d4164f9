package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/bem"
	"github.com/yacobolo/bem/internal/bemlint"
)

const defaultConfigPath = ".bem.yaml"

var k = koanf.New(".")

// configSections are the nested blocks of .bem.yaml. Environment variables
// that start with one of them map into that section.
var configSections = []string{"lint"}

// Default patterns used when neither flags nor config name any
var (
	defaultCSSPaths  = []string{"web/**/*.css"}
	defaultScanPaths = []string{"**/*.templ", "**/*.go"}
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set).
	// Flag names differ from their config keys, so unset flag defaults must
	// not shadow file or env values; the getters apply defaults instead.
	flags := cmd.Flags()
	changedOnly := func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, changedOnly), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (BEM_* prefix)
	if err := k.Load(env.Provider("BEM_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key:
//
//	BEM_LINT_MAX_SAME_ISSUES -> lint.max-same-issues
//	BEM_ELEMENT_SEPARATOR    -> element-separator
//	BEM_VERBOSE              -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, "BEM_"))
	for _, section := range configSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildBEMConfig constructs the separator scheme from koanf state.
// Unset separators keep the library defaults.
func buildBEMConfig() bem.Config {
	var opts []bem.Option
	if sep := k.String("element-separator"); sep != "" {
		opts = append(opts, bem.WithElementSeparator(sep))
	}
	if sep := k.String("modifier-separator"); sep != "" {
		opts = append(opts, bem.WithModifierSeparator(sep))
	}
	return bem.ResolveConfig(opts...)
}

// buildLintConfig constructs the linter's LintConfig struct from koanf state.
func buildLintConfig() bemlint.LintConfig {
	return bemlint.LintConfig{
		CSSPaths:           getStringsWithFallback("css", "lint.css", defaultCSSPaths),
		ScanPaths:          getStringsWithFallback("paths", "lint.paths", defaultScanPaths),
		BEM:                buildBEMConfig(),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	if v := k.Strings(configKey); len(v) > 0 {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
