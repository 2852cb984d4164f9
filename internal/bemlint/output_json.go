package bemlint

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Blocks    []JSONBlock `json:"blocks"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains inventory and scan statistics
type JSONStats struct {
	Blocks           int `json:"blocks"`
	Elements         int `json:"elements"`
	Modifiers        int `json:"modifiers"`
	Stylesheets      int `json:"stylesheets"`
	ClassesChecked   int `json:"classes_checked"`
	BuilderCalls     int `json:"builder_calls"`
	UndefinedClasses int `json:"undefined_classes"`
}

// JSONIssue represents a single linting issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// JSONBlock is one entry of the block inventory
type JSONBlock struct {
	Name      string   `json:"name"`
	Defined   bool     `json:"defined"`
	Elements  []string `json:"elements"`
	Modifiers []string `json:"modifiers"`
	Files     []string `json:"files"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput
func buildJSONOutput(result *LintResult) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	jsonBlocks := []JSONBlock{}
	if result.Inventory != nil {
		for _, info := range result.Inventory.SortedBlocks() {
			jsonBlocks = append(jsonBlocks, JSONBlock{
				Name:      info.Name,
				Defined:   info.Defined,
				Elements:  sortedKeys(info.Elements),
				Modifiers: sortedKeys(info.Modifiers),
				Files:     info.Files,
			})
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			Truncated:    result.TruncatedCount,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			Blocks:           result.Blocks,
			Elements:         result.Elements,
			Modifiers:        result.Modifiers,
			Stylesheets:      result.CSSFilesScanned,
			ClassesChecked:   result.ClassesChecked,
			BuilderCalls:     result.BuilderCalls,
			UndefinedClasses: result.UndefinedClasses,
		},
		Issues:   jsonIssues,
		Blocks:   jsonBlocks,
		Warnings: result.Warnings,
	}
}
