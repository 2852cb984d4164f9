// Package bemlint checks stylesheets and templates for BEM naming violations.
package bemlint

import (
	"go.uber.org/zap"

	"github.com/yacobolo/bem"
)

// CSSClass is a class selector found in a stylesheet
type CSSClass struct {
	Name         string   // "card__title--big"
	Layer        string   // "components" from @layer, empty if none
	PseudoStates []string // [":hover", ":focus"]
	IsInternal   bool     // True if starts with _ (exempt from BEM checks)
	SourceFile   string
	Line         int // 1-based line of the selector
	Column       int // 1-based column of the class name (after the dot)
}

// Parts is a class name split into its BEM components
type Parts struct {
	Block    string
	Element  string // "" when the class addresses the block
	Modifier string // "" when there is no modifier
}

// IsBlock reports whether the class is a bare block.
func (p Parts) IsBlock() bool {
	return p.Element == "" && p.Modifier == ""
}

// ProblemKind classifies a naming problem found by Decompose
type ProblemKind int

const (
	// ProblemInvalidName means a part failed bem.Validate.
	ProblemInvalidName ProblemKind = iota
	// ProblemEmptyPart means a separator is not followed or preceded by a name.
	ProblemEmptyPart
	// ProblemNestedElement means an element of an element (a__b__c).
	ProblemNestedElement
)

// Problem is a single naming problem within one class name
type Problem struct {
	Kind ProblemKind
	Part bem.Kind
	Text string
}

// Severity returns the issue severity for the problem.
func (p Problem) Severity() string {
	if p.Kind == ProblemNestedElement {
		return SeverityWarning
	}
	return SeverityError
}

// BlockInfo aggregates everything known about one block
type BlockInfo struct {
	Name      string
	Defined   bool            // A bare .block selector exists
	Elements  map[string]bool // element -> seen
	Modifiers map[string]bool // "modifier" or "element--modifier" -> seen
	Files     []string
}

// Inventory is the block tree of a set of stylesheets
type Inventory struct {
	Blocks  map[string]*BlockInfo
	Classes map[string]bool // every class selector seen
}

// LintConfig holds linting configuration
type LintConfig struct {
	CSSPaths  []string    // Stylesheet patterns (e.g., "web/styles/**/*.css")
	ScanPaths []string    // Template patterns (e.g., "internal/web/**/*.templ")
	BEM       bem.Config  // Separator scheme to decompose class names with
	Verbose   bool        // Set by -v; the CLI logs at debug level then
	Strict    bool        // Exit with code 1 on any issue, not only errors
	Logger    *zap.Logger // Debug progress messages; nil discards them

	MaxIssuesPerLinter int  // 0 = unlimited (default)
	MaxSameIssues      int  // 0 = unlimited (default)
	PrintIssuedLines   bool // Show source lines with issues (default: true)
	PrintLinterName    bool // Show (bemlint) suffix (default: true)
	UseColors          bool // Enable color output (default: auto-detect)
}

func (c LintConfig) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// LintResult contains linting analysis results
type LintResult struct {
	// Statistics
	Blocks           int // Distinct blocks across stylesheets
	Elements         int // Distinct block__element pairs
	Modifiers        int // Distinct modifier classes
	CSSFilesScanned  int
	FilesScanned     int // Template files with at least one reference
	ClassesChecked   int // Class tokens checked in templates
	BuilderCalls     int // bem.New / bem.MustNew / bem.Use calls found
	ErrorCount       int
	WarningCount     int
	TruncatedCount   int // Issues removed due to limits
	UndefinedClasses int // Template classes missing from every stylesheet

	Inventory *Inventory // Stylesheet block tree, for the block listing
	Issues    []Issue
	Warnings  []string // Non-fatal problems such as unreadable files
}

// OutputFormat represents the linter output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows the block inventory statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
