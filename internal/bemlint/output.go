package bemlint

import (
	"fmt"
	"io"
	"os"
)

// DetermineOutputFormat selects the output format from the --output-format flag.
// Quiet mode and unknown formats fall back to OutputIssues.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues
	}

	switch OutputFormat(formatFlag) {
	case OutputIssues, OutputSummary, OutputFull, OutputJSON:
		return OutputFormat(formatFlag)
	default:
		return OutputIssues
	}
}

// WriteOutput writes the lint result in the specified format
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config LintConfig) {
	switch format {
	case OutputIssues:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

	case OutputSummary:
		verboseReporter := NewVerboseReporter(w, shouldUseColors(config))
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintBlocks(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputFull:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)

		verboseReporter := NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(*result)
		verboseReporter.PrintBlocks(*result)
		verboseReporter.PrintWarnings(*result)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		}
	}
}
