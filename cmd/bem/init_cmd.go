package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .bem.yaml config file",
	Long:  `Create a .bem.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return writeDefaultConfig(cmd, defaultConfigPath, force)
	},
}

func writeDefaultConfig(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

const defaultConfig = `# bem configuration

# Separators (must match the options passed to bem.New / bem.CreateHook)
element-separator: "__"
modifier-separator: "--"
verbose: false

# Linting settings
lint:
  css:
    - "web/**/*.css"
  paths:
    - "**/*.templ"
    - "**/*.go"
  strict: false            # fail on warnings too
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
