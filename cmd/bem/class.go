package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yacobolo/bem"
)

var classCmd = &cobra.Command{
	Use:   "class <block> [element]",
	Short: "Print the class string for a block, element and modifiers",
	Long: `Compose a BEM class string with the configured separators.

  bem class card                          -> card
  bem class card title                    -> card__title
  bem class card --mod dark               -> card card--dark
  bem class card title --mod big --mod x  -> card__title card__title--big card__title--x
  bem class btn --flag active=true --flag disabled=false
                                          -> btn btn--active`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runClass,
}

func init() {
	f := classCmd.Flags()
	f.StringArrayP("mod", "m", nil, "Modifier name (repeatable)")
	f.StringArray("flag", nil, "Conditional modifier as name=bool (repeatable)")
}

func runClass(cmd *cobra.Command, args []string) error {
	block := args[0]
	element := ""
	if len(args) > 1 {
		element = args[1]
	}

	mods, _ := cmd.Flags().GetStringArray("mod")
	flags, _ := cmd.Flags().GetStringArray("flag")
	mod, err := modifierFromArgs(mods, flags)
	if err != nil {
		return err
	}

	cfg := buildBEMConfig()
	if err := cfg.Check(); err != nil {
		loggerFor(cmd).Warn("separator scheme may produce ambiguous class names", zap.Error(err))
	}

	composer, err := bem.CreateHook(bem.WithConfig(cfg))(block)
	if err != nil {
		return err
	}

	class, err := composer.Class(element, mod)
	if err != nil {
		return err
	}
	loggerFor(cmd).Debug("composed class",
		zap.String("block", block),
		zap.String("element", element),
		zap.String("class", class),
	)

	fmt.Fprintln(cmd.OutOrStdout(), class)
	return nil
}

// modifierFromArgs turns --mod and --flag values into a Modifier.
// One --mod is a single modifier, several are a list; --flag values become
// conditional modifiers. Mixing both is rejected.
func modifierFromArgs(mods, flags []string) (bem.Modifier, error) {
	switch {
	case len(mods) > 0 && len(flags) > 0:
		return nil, errors.New("use either --mod or --flag, not both")
	case len(mods) == 1:
		return bem.Single(mods[0]), nil
	case len(mods) > 1:
		return bem.Many(mods...), nil
	case len(flags) > 0:
		parsed := make([]bem.Flag, 0, len(flags))
		for _, f := range flags {
			flag, err := parseFlag(f)
			if err != nil {
				return nil, err
			}
			parsed = append(parsed, flag)
		}
		return bem.Flags(parsed...), nil
	default:
		return nil, nil
	}
}

// parseFlag parses "name=bool"; a bare "name" means on.
func parseFlag(s string) (bem.Flag, error) {
	name, value, found := strings.Cut(s, "=")
	if !found {
		return bem.When(name, true), nil
	}
	on, err := strconv.ParseBool(value)
	if err != nil {
		return bem.Flag{}, fmt.Errorf("invalid --flag %q: %w", s, err)
	}
	return bem.When(name, on), nil
}
