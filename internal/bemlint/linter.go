package bemlint

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yacobolo/bem"
)

// Lint checks stylesheets and templates against the BEM naming rules.
//
// Stylesheet class selectors are decomposed with config.BEM and each part is
// validated with the same rules bem.Composer enforces at render time.
// Template class attributes are checked the same way, and bem builder calls
// have their block names validated, so invalid names fail the lint rather
// than a render.
func Lint(config LintConfig) (*LintResult, error) {
	result := &LintResult{}
	logger := config.logger()

	// Step 1: Parse stylesheets
	cssFiles, _, err := expandGlobPatterns(config.CSSPaths, false)
	if err != nil {
		return nil, fmt.Errorf("failed to expand stylesheet patterns: %w", err)
	}
	result.CSSFilesScanned = len(cssFiles)

	logger.Debug("stylesheets found", zap.Int("files", len(cssFiles)))

	var classes []*CSSClass
	sources := make(map[string][]string)
	for _, file := range cssFiles {
		fileClasses, lines, err := parseFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		sources[file] = lines
		classes = append(classes, fileClasses...)
	}

	// Step 2: Build the block inventory
	inv := BuildInventory(classes, config.BEM)
	result.Inventory = inv
	result.Blocks, result.Elements, result.Modifiers = inv.Counts()

	logger.Debug("stylesheets parsed", zap.Int("classes", len(classes)), zap.Int("blocks", result.Blocks))

	issues := lintStylesheets(classes, inv, sources, config.BEM)

	// Step 3: Scan templates
	references, _, err := ScanFiles(config.ScanPaths, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}
	result.FilesScanned = countUniqueFiles(references)

	issues = append(issues, lintReferences(references, inv, config.BEM, result)...)

	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}
	result.Issues = issues

	// Step 4: Apply issue limiting if configured
	if config.MaxIssuesPerLinter > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	return result, nil
}

// lintStylesheets reports naming problems in class selectors
func lintStylesheets(classes []*CSSClass, inv *Inventory, sources map[string][]string, cfg bem.Config) []Issue {
	var issues []Issue

	for _, class := range classes {
		if class.IsInternal {
			continue
		}

		pos := IssuePos{Filename: class.SourceFile, Line: class.Line, Column: class.Column}
		source := sourceLine(sources[class.SourceFile], class.Line)

		parts, problems := Decompose(class.Name, cfg)
		for _, p := range problems {
			issues = append(issues, newIssue(fmt.Sprintf(IssueInvalidClass, class.Name, p.Text), p.Severity(), pos, source))
		}
		if hasErrors(problems) || parts.IsBlock() {
			continue
		}

		if info := inv.Blocks[parts.Block]; info != nil && !info.Defined {
			issues = append(issues, newIssue(
				fmt.Sprintf(IssueUndefinedBlock, class.Name, parts.Block, parts.Block),
				SeverityWarning, pos, source,
			))
		}
	}

	return issues
}

// lintReferences reports naming problems in template class strings and
// builder calls
func lintReferences(refs []ClassReference, inv *Inventory, cfg bem.Config, result *LintResult) []Issue {
	var issues []Issue
	haveStylesheets := len(inv.Classes) > 0

	for _, ref := range refs {
		if ref.IsBuilder() {
			result.BuilderCalls++
			if err := bem.Validate(ref.ClassValue, bem.KindBlock); err != nil {
				issues = append(issues, newIssue(
					fmt.Sprintf(IssueBuilderBlock, ref.Builder, ref.ClassValue, err),
					SeverityError, refPos(ref, ref.Location.Column), ref.Location.Text,
				))
			}
			continue
		}

		for _, token := range strings.Fields(ref.ClassValue) {
			if isTemplateExpression(token) || strings.HasPrefix(token, "_") {
				continue
			}
			result.ClassesChecked++

			column := findClassColumn(ref.Location.Text, token)
			if column == 0 {
				column = ref.Location.Column
			}
			pos := refPos(ref, column)

			_, problems := Decompose(token, cfg)
			for _, p := range problems {
				issues = append(issues, newIssue(fmt.Sprintf(IssueInvalidClass, token, p.Text), p.Severity(), pos, ref.Location.Text))
			}

			if haveStylesheets && !hasErrors(problems) && !inv.Classes[token] {
				result.UndefinedClasses++
				issues = append(issues, newIssue(fmt.Sprintf(IssueUndefinedClass, token), SeverityWarning, pos, ref.Location.Text))
			}
		}
	}

	return issues
}

func newIssue(text, severity string, pos IssuePos, source string) Issue {
	issue := Issue{
		FromLinter: LinterName,
		Text:       text,
		Severity:   severity,
		Pos:        pos,
	}
	if source != "" {
		issue.SourceLines = []string{source}
	}
	return issue
}

func refPos(ref ClassReference, column int) IssuePos {
	return IssuePos{Filename: ref.Location.File, Line: ref.Location.Line, Column: column}
}

func sourceLine(lines []string, line int) string {
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}

func hasErrors(problems []Problem) bool {
	for _, p := range problems {
		if p.Severity() == SeverityError {
			return true
		}
	}
	return false
}

// isTemplateExpression skips tokens produced by template interpolation
func isTemplateExpression(token string) bool {
	return strings.ContainsAny(token, "{}$()<>")
}

// countUniqueFiles counts unique files in references
func countUniqueFiles(references []ClassReference) int {
	files := make(map[string]bool)
	for _, ref := range references {
		files[ref.Location.File] = true
	}
	return len(files)
}

// limitIssues applies max-issues-per-linter and max-same-issues constraints
func limitIssues(issues []Issue, config LintConfig) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
