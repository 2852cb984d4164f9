package bemlint

// LinterName is reported in Issue.FromLinter
const LinterName = "bemlint"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "bemlint"
	Text        string   `json:"Text"`        // "BEM element name \"ti tle\" should not contain spaces."
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/components/card.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the class)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueInvalidClass   = "class %q: %s"
	IssueUndefinedBlock = "class %q uses block %q which has no .%s selector"
	IssueUndefinedClass = "class %q is not defined in any stylesheet"
	IssueBuilderBlock   = "%s(%q): %s"
)
