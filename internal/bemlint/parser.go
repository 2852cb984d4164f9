package bemlint

import (
	"fmt"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// tokenReader wraps the CSS lexer and tracks the position of each token
type tokenReader struct {
	lexer *css.Lexer
	line  int
	col   int
}

func newTokenReader(content string) *tokenReader {
	return &tokenReader{
		lexer: css.NewLexer(parse.NewInputString(content)),
		line:  1,
		col:   1,
	}
}

// next returns the next token and the 1-based position where it starts
func (r *tokenReader) next() (css.TokenType, []byte, int, int) {
	line, col := r.line, r.col
	tt, text := r.lexer.Next()
	for _, b := range text {
		if b == '\n' {
			r.line++
			r.col = 1
		} else {
			r.col++
		}
	}
	return tt, text, line, col
}

// parserState maintains context while parsing CSS
type parserState struct {
	reader       *tokenReader
	filename     string
	depth        int
	currentLayer string
	layerDepth   int
	classes      []*CSSClass
	index        map[string]*CSSClass // Deduplicate during parsing
}

// ParseCSS returns the class selectors of a stylesheet in order of first
// appearance. Repeated selectors keep their first position.
func ParseCSS(content string, filename string) ([]*CSSClass, error) {
	state := &parserState{
		reader:   newTokenReader(content),
		filename: filename,
		index:    make(map[string]*CSSClass),
	}

	for {
		tt, text, line, col := state.reader.next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal - just break
			break
		}

		switch {
		case tt == css.AtKeywordToken && string(text) == "@layer":
			state.handleLayerDeclaration()
		case tt == css.LeftBraceToken:
			state.depth++
		case tt == css.RightBraceToken:
			state.closeBlock()
		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			state.handleClassRule(line, col)
		}
	}

	return state.classes, nil
}

// parseFile reads and parses a single CSS file, returning its lines for
// issue source display
func parseFile(path string) ([]*CSSClass, []string, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	classes, err := ParseCSS(string(content), path)
	if err != nil {
		return nil, nil, err
	}
	return classes, strings.Split(string(content), "\n"), nil
}

func (s *parserState) closeBlock() {
	s.depth--
	if s.currentLayer != "" && s.depth < s.layerDepth {
		s.currentLayer = ""
	}
}

// handleLayerDeclaration processes @layer declarations
func (s *parserState) handleLayerDeclaration() {
	var layerName string

	for {
		tt, text, _, _ := s.reader.next()
		switch tt {
		case css.ErrorToken:
			return
		case css.IdentToken:
			layerName = string(text)
		case css.LeftBraceToken:
			// @layer name { ... }
			s.depth++
			if layerName != "" {
				s.currentLayer = layerName
				s.layerDepth = s.depth
			}
			return
		case css.SemicolonToken:
			// @layer name1, name2;
			return
		}
	}
}

// handleClassRule collects every class in a selector list, starting right
// after a '.', then skips the declaration block.
func (s *parserState) handleClassRule(line, col int) {
	tt, text, _, _ := s.reader.next()
	if tt != css.IdentToken {
		return
	}
	last := s.addClass(string(text), line, col+1)

	for {
		tt, text, line, col := s.reader.next()
		switch {
		case tt == css.ErrorToken:
			return

		case tt == css.DelimToken && len(text) > 0 && text[0] == '.':
			// Compound, descendant, or comma-separated class
			tt2, ident, _, _ := s.reader.next()
			if tt2 == css.IdentToken {
				last = s.addClass(string(ident), line, col+1)
			}

		case tt == css.ColonToken:
			tt2, ident, _, _ := s.reader.next()
			if tt2 == css.IdentToken && last != nil {
				state := ":" + string(ident)
				if !contains(last.PseudoStates, state) {
					last.PseudoStates = append(last.PseudoStates, state)
				}
			}

		case tt == css.SemicolonToken, tt == css.RightBraceToken:
			// Not a rule after all (e.g. a stray value)
			if tt == css.RightBraceToken {
				s.closeBlock()
			}
			return

		case tt == css.LeftBraceToken:
			s.skipDeclarations()
			return
		}
	}
}

// skipDeclarations consumes tokens up to the matching '}'
func (s *parserState) skipDeclarations() {
	depth := 1
	for depth > 0 {
		tt, _, _, _ := s.reader.next()
		switch tt {
		case css.ErrorToken:
			return
		case css.LeftBraceToken:
			depth++
		case css.RightBraceToken:
			depth--
		}
	}
}

func (s *parserState) addClass(name string, line, col int) *CSSClass {
	if class, ok := s.index[name]; ok {
		return class
	}

	class := &CSSClass{
		Name:         name,
		Layer:        s.currentLayer,
		PseudoStates: []string{},
		IsInternal:   strings.HasPrefix(name, "_"),
		SourceFile:   s.filename,
		Line:         line,
		Column:       col,
	}
	s.index[name] = class
	s.classes = append(s.classes, class)
	return class
}

// contains checks if a string slice contains a value
func contains(slice []string, val string) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}
