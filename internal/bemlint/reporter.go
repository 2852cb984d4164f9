package bemlint

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Reporter prints issues in golangci-lint format
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given configuration
func NewReporter(w io.Writer, config LintConfig) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(config),
		printLines:      config.PrintIssuedLines,
		printLinterName: config.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(config LintConfig) bool {
	if config.UseColors {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// CI runners that render ANSI colors
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PrintIssues outputs issues sorted by file, line, then column
func (r *Reporter) PrintIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})

	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue as file:line:col: message (linter)
func (r *Reporter) printIssue(issue Issue) {
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == SeverityWarning {
		text = RenderStyle(StyleYellow, "warning: ", r.useColors) + text
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up under tab-indented source.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(result LintResult) {
	totalIssues := len(result.Issues)
	truncated := result.TruncatedCount

	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")

	if totalIssues == 0 && truncated == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	breakdown := ""
	if errors > 0 && warnings > 0 {
		breakdown = fmt.Sprintf("%s, %s",
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}
	if truncated > 0 {
		if breakdown != "" {
			breakdown += "; "
		}
		breakdown += pluralizeCount(truncated, "issue", "issues") + " truncated"
	}

	if breakdown != "" {
		fmt.Fprintf(r.w, "%s (%s):\n", pluralizeCount(totalIssues, "issue", "issues"), breakdown)
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(totalIssues, "issue", "issues"))
	}

	linterCounts := make(map[string]int)
	for _, issue := range result.Issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see the block inventory", r.useColors))
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
