package bemlint

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// ClassReference represents a class string or builder call found in code
type ClassReference struct {
	ClassValue string       // Full attribute: "card card--dark"
	Builder    string       // "bem.New" when this is a builder call, ClassValue holds the block
	Location   FileLocation // Where it was found
}

// IsBuilder reports whether the reference is a bem builder call.
func (r ClassReference) IsBuilder() bool {
	return r.Builder != ""
}

// FileLocation tracks where a class reference was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column (exact start of class value)
	Text   string // Full line content for source display, untrimmed so Column lines up
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// scanPattern represents a regex pattern for finding class references
type scanPattern struct {
	name    string
	regex   *regexp.Regexp
	builder bool
}

var (
	// Patterns for finding class references, most specific first
	patterns = []scanPattern{
		{
			name:    "bem builder call",
			regex:   regexp.MustCompile(`\b(bem\.(?:MustNew|New|Use))\(\s*"([^"]*)"`),
			builder: true,
		},
		{
			name:  "class attribute with double quotes",
			regex: regexp.MustCompile(`\bclass="([^"]+)"`),
		},
		{
			name:  "class attribute with single quotes",
			regex: regexp.MustCompile(`\bclass='([^']+)'`),
		},
		{
			name:  "class with string literal in braces",
			regex: regexp.MustCompile(`\bclass=\{\s*"([^"]+)"`),
		},
	}

	// templ.Classes and templ.KV may carry several comma-separated values
	templClassesMulti = regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)
	templKVMulti      = regexp.MustCompile(`templ\.KV\(([^)]+)\)`)

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isTemplGenerated checks if a file is a templ-generated Go file
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// loadGitIgnore loads the .gitignore file once; a missing file is fine
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile skips templ-generated files and, for relative paths,
// anything matched by the project .gitignore
func shouldSkipFile(path string) bool {
	if isTemplGenerated(path) {
		return true
	}

	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// ScanFiles scans files matching the given patterns for class references.
// Progress is logged at debug level; a nil logger discards it.
func ScanFiles(scanPatterns []string, logger *zap.Logger) ([]ClassReference, ScanStats, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	files, stats, err := expandGlobPatterns(scanPatterns, true)
	if err != nil {
		return nil, stats, err
	}

	logger.Debug("templates found",
		zap.Int("files", stats.FilesScanned),
		zap.Int("skipped", stats.FilesSkipped),
	)

	var allRefs []ClassReference
	for _, file := range files {
		refs, err := scanFile(file)
		if err != nil {
			continue
		}
		allRefs = append(allRefs, refs...)
	}

	return allRefs, stats, nil
}

// expandGlobPatterns expands doublestar patterns to unique regular files,
// optionally applying the templ/gitignore filter
func expandGlobPatterns(patterns []string, filter bool) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if filter && shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for class references
func scanFile(filePath string) ([]ClassReference, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var refs []ClassReference
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		refs = append(refs, extractClassesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return refs, nil
}

// findClassColumn locates the column where className starts within line.
// For multi-class strings it finds the first token. Returns 0 if absent.
func findClassColumn(line string, fullClassString string) int {
	tokens := strings.Fields(fullClassString)
	searchTarget := fullClassString
	if len(tokens) > 0 {
		searchTarget = tokens[0]
	}

	// Strategy 1: inside a class= attribute
	classAttrIdx := strings.Index(line, "class=")
	if classAttrIdx != -1 {
		quoteIdx := strings.IndexAny(line[classAttrIdx:], `"'`)
		if quoteIdx != -1 {
			searchStart := classAttrIdx + quoteIdx + 1

			classesStr := line[searchStart:]
			if endQuote := strings.IndexAny(classesStr, `"'`); endQuote != -1 {
				classesStr = classesStr[:endQuote]
			}

			if idx := strings.Index(classesStr, searchTarget); idx != -1 {
				return searchStart + idx + 1
			}
		}
	}

	// Strategy 2: quoted literal
	if idx := strings.Index(line, `"`+searchTarget+`"`); idx != -1 {
		return idx + 2
	}

	// Strategy 3: anywhere
	if idx := strings.Index(line, searchTarget); idx != -1 {
		return idx + 1
	}

	return 0
}

// extractClassesFromLine extracts all class references from a line
func extractClassesFromLine(line string, lineNum int, file string) []ClassReference {
	if commentPattern.MatchString(line) {
		return nil
	}

	var refs []ClassReference

	hasTemplClasses := strings.Contains(line, "templ.Classes(")
	hasTemplKV := strings.Contains(line, "templ.KV(")

	if hasTemplClasses {
		refs = append(refs, extractFromTemplClasses(line, lineNum, file)...)
	}
	if hasTemplKV && !hasTemplClasses {
		refs = append(refs, extractFromTemplKV(line, lineNum, file)...)
	}

	for _, pattern := range patterns {
		// templ helpers already cover class literals on this line
		if (hasTemplClasses || hasTemplKV) && !pattern.builder {
			continue
		}

		for _, match := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			ref := ClassReference{
				Location: FileLocation{
					File: file,
					Line: lineNum,
					Text: line,
				},
			}

			if pattern.builder {
				if len(match) < 6 {
					continue
				}
				ref.Builder = line[match[2]:match[3]]
				ref.ClassValue = line[match[4]:match[5]]
				ref.Location.Column = match[4] + 1
			} else {
				if len(match) < 4 {
					continue
				}
				ref.ClassValue = line[match[2]:match[3]]
				ref.Location.Column = match[2] + 1
			}

			refs = append(refs, ref)
		}
	}

	return refs
}

// extractFromTemplClasses extracts class strings from templ.Classes(...),
// including nested templ.KV("...", cond) arguments
func extractFromTemplClasses(line string, lineNum int, file string) []ClassReference {
	var refs []ClassReference

	for _, match := range templClassesMulti.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}
		content := line[match[2]:match[3]]
		refs = append(refs, parseTemplArguments(content, lineNum, file, line)...)
	}

	// templ.KV inside templ.Classes is cut off by the [^)]+ above
	for _, match := range templKVMulti.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}
		parts := splitTemplArgs(line[match[2]:match[3]])
		if len(parts) > 0 {
			refs = append(refs, parseTemplArguments(parts[0], lineNum, file, line)...)
		}
	}

	return dedupeRefs(refs)
}

// extractFromTemplKV extracts the class name from templ.KV("foo", cond)
func extractFromTemplKV(line string, lineNum int, file string) []ClassReference {
	var refs []ClassReference

	for _, match := range templKVMulti.FindAllStringSubmatchIndex(line, -1) {
		if len(match) < 4 {
			continue
		}
		parts := splitTemplArgs(line[match[2]:match[3]])
		if len(parts) > 0 {
			refs = append(refs, parseTemplArguments(parts[0], lineNum, file, line)...)
		}
	}

	return refs
}

// parseTemplArguments keeps the string literal arguments of a templ call
func parseTemplArguments(args string, lineNum int, file string, fullLine string) []ClassReference {
	var refs []ClassReference

	for _, part := range splitTemplArgs(args) {
		part = strings.TrimSpace(part)
		if len(part) < 2 || !strings.HasPrefix(part, `"`) || !strings.HasSuffix(part, `"`) {
			continue
		}

		classStr := strings.Trim(part, `"`)
		refs = append(refs, ClassReference{
			ClassValue: classStr,
			Location: FileLocation{
				File:   file,
				Line:   lineNum,
				Column: strings.Index(fullLine, part) + 2,
				Text:   fullLine,
			},
		})
	}

	return refs
}

// splitTemplArgs splits comma-separated arguments outside parentheses
func splitTemplArgs(s string) []string {
	var parts []string
	var current strings.Builder
	parenDepth := 0

	for _, r := range s {
		switch r {
		case '(':
			parenDepth++
			current.WriteRune(r)
		case ')':
			parenDepth--
			current.WriteRune(r)
		case ',':
			if parenDepth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

func dedupeRefs(refs []ClassReference) []ClassReference {
	seen := make(map[string]bool)
	out := refs[:0]
	for _, ref := range refs {
		key := fmt.Sprintf("%d:%s", ref.Location.Column, ref.ClassValue)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ref)
	}
	return out
}
