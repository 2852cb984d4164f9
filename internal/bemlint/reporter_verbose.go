package bemlint

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// VerboseReporter prints statistics and the block inventory
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result LintResult) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "BEM Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------------")

	fmt.Fprintf(r.w, "Blocks:             %d\n", result.Blocks)
	fmt.Fprintf(r.w, "Elements:           %d\n", result.Elements)
	fmt.Fprintf(r.w, "Modifiers:          %d\n", result.Modifiers)
	fmt.Fprintf(r.w, "Stylesheets:        %d\n", result.CSSFilesScanned)
	fmt.Fprintf(r.w, "Files Scanned:      %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Classes Checked:    %d\n", result.ClassesChecked)
	fmt.Fprintf(r.w, "Builder Calls:      %d\n", result.BuilderCalls)
	fmt.Fprintf(r.w, "Undefined Classes:  %d\n", result.UndefinedClasses)
}

// PrintBlocks lists every block with its elements and modifiers
func (r *VerboseReporter) PrintBlocks(result LintResult) {
	if result.Inventory == nil || len(result.Inventory.Blocks) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Blocks", r.useColors))
	fmt.Fprintln(r.w, "------")

	for _, info := range result.Inventory.SortedBlocks() {
		name := info.Name
		if !info.Defined {
			name += " " + RenderStyle(StyleRed, "(no block selector)", r.useColors)
		}
		fmt.Fprintln(r.w, name)
		if len(info.Elements) > 0 {
			fmt.Fprintf(r.w, "  elements:  %s\n", strings.Join(sortedKeys(info.Elements), ", "))
		}
		if len(info.Modifiers) > 0 {
			fmt.Fprintf(r.w, "  modifiers: %s\n", strings.Join(sortedKeys(info.Modifiers), ", "))
		}
	}
}

// PrintWarnings shows linter warnings
func (r *VerboseReporter) PrintWarnings(result LintResult) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
