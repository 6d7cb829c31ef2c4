// Package source turns a JS/TS source file into the light syntactic
// representation the rule matchers work against: raw lines, lines with
// comments and string contents blanked out, extracted import statements,
// and JSX open elements. It is deliberately not a grammar parser.
package source

import (
	"regexp"
	"strings"
)

// Import is a single module reference found in a file. Names holds the
// imported bindings by their exported name ("B" for `{ B as C }`); it is
// empty for side-effect imports and `require` calls.
type Import struct {
	Module string
	Names  []string
	Line   int // 1-based
	Column int // 1-based
}

// Element is a JSX open element with its attribute names.
type Element struct {
	Name   string
	Attrs  []string
	Line   int
	Column int
}

// HasAttr reports whether the element carries the named attribute.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a == name {
			return true
		}
	}
	return false
}

// File is a parsed source file. Lines preserve the original text;
// Stripped has comments and string contents replaced with spaces so
// line-level patterns don't fire inside literals.
type File struct {
	Path     string
	Content  string
	Lines    []string
	Stripped []string
	Imports  []Import
	Elements []Element

	lineStarts []int
}

var (
	// import <clause> from "<module>"  (clause may span lines)
	reImportFrom = regexp.MustCompile(`(?s)\bimport\s+(type\s+)?([^;'"]*?)\s*from\s*['"]([^'"\n]+)['"]`)

	// import "<module>"  (side-effect)
	reImportBare = regexp.MustCompile(`\bimport\s*['"]([^'"\n]+)['"]`)

	// export * from "<module>"
	reExportStar = regexp.MustCompile(`\bexport\s*\*\s*(as\s+\w+\s+)?from\s*['"]([^'"\n]+)['"]`)

	// require("<module>")
	reRequire = regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"\n]+)['"]\s*\)`)

	reIdent  = regexp.MustCompile(`[A-Za-z_$][A-Za-z0-9_$]*`)
	reJSXTag = regexp.MustCompile(`<([A-Z][A-Za-z0-9.]*)[\s/>]`)
)

// Parse builds a File from raw content. It never fails: unparseable
// constructs simply yield fewer extracted imports or elements.
func Parse(path, content string) *File {
	noComments, stripped := scrub(content)

	f := &File{
		Path:     path,
		Content:  content,
		Lines:    splitLines(content),
		Stripped: splitLines(stripped),
	}
	f.lineStarts = lineStarts(content)
	f.Imports = extractImports(noComments, f)
	f.Elements = extractElements(noComments, f)
	return f
}

// pos converts a byte offset into a 1-based line/column pair.
func (f *File) pos(offset int) (line, col int) {
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - f.lineStarts[lo] + 1
}

func lineStarts(s string) []int {
	starts := []int{0}
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// scrub produces two variants of the content with positions preserved:
// noComments blanks // and /* */ comments, stripped additionally blanks
// the contents of string and template literals. Single and double quoted
// strings reset at end of line, matching JS lexing; template literals
// span lines.
func scrub(content string) (noComments, stripped string) {
	nc := []byte(content)
	st := []byte(content)

	const (
		code = iota
		lineComment
		blockComment
		single
		double
		template
	)
	state := code

	for i := 0; i < len(content); i++ {
		c := content[i]
		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(content) && content[i+1] == '/':
				state = lineComment
				nc[i], st[i] = ' ', ' '
			case c == '/' && i+1 < len(content) && content[i+1] == '*':
				state = blockComment
				nc[i], st[i] = ' ', ' '
			case c == '\'':
				state = single
			case c == '"':
				state = double
			case c == '`':
				state = template
			}
		case lineComment:
			if c == '\n' {
				state = code
			} else {
				nc[i], st[i] = ' ', ' '
			}
		case blockComment:
			if c == '*' && i+1 < len(content) && content[i+1] == '/' {
				nc[i], st[i] = ' ', ' '
				i++
				nc[i], st[i] = ' ', ' '
				state = code
			} else if c != '\n' {
				nc[i], st[i] = ' ', ' '
			}
		case single, double, template:
			quote := byte('\'')
			if state == double {
				quote = '"'
			} else if state == template {
				quote = '`'
			}
			switch {
			case c == '\\' && i+1 < len(content):
				st[i] = ' '
				i++
				st[i] = ' '
			case c == quote:
				state = code
			case c == '\n':
				// unterminated '/" literal, or a multi-line template
				if state != template {
					state = code
				}
			default:
				st[i] = ' '
			}
		}
	}
	return string(nc), string(st)
}

func extractImports(noComments string, f *File) []Import {
	var imports []Import

	for _, m := range reImportFrom.FindAllStringSubmatchIndex(noComments, -1) {
		clause := noComments[m[4]:m[5]]
		module := noComments[m[6]:m[7]]
		line, col := f.pos(m[0])
		imports = append(imports, Import{
			Module: module,
			Names:  clauseNames(clause),
			Line:   line,
			Column: col,
		})
	}
	for _, m := range reExportStar.FindAllStringSubmatchIndex(noComments, -1) {
		module := noComments[m[4]:m[5]]
		line, col := f.pos(m[0])
		imports = append(imports, Import{Module: module, Names: []string{"*"}, Line: line, Column: col})
	}
	for _, m := range reImportBare.FindAllStringSubmatchIndex(noComments, -1) {
		module := noComments[m[2]:m[3]]
		line, col := f.pos(m[0])
		imports = append(imports, Import{Module: module, Line: line, Column: col})
	}
	for _, m := range reRequire.FindAllStringSubmatchIndex(noComments, -1) {
		module := noComments[m[2]:m[3]]
		line, col := f.pos(m[0])
		imports = append(imports, Import{Module: module, Line: line, Column: col})
	}
	return imports
}

// clauseNames extracts imported names from an import clause such as
// `Default, { A, B as C }` or `* as ns`. Named imports are recorded by
// their exported name; a namespace import is recorded as "*".
func clauseNames(clause string) []string {
	var names []string
	if i := strings.Index(clause, "{"); i >= 0 {
		inner := clause[i+1:]
		if j := strings.Index(inner, "}"); j >= 0 {
			inner = inner[:j]
		}
		for _, part := range strings.Split(inner, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			// `A as B` imports A
			if fields := strings.Fields(part); len(fields) > 0 {
				names = append(names, fields[0])
			}
		}
		clause = clause[:i]
	}
	if strings.Contains(clause, "*") {
		names = append(names, "*")
	}
	return names
}

// extractElements finds JSX open elements with component-cased names and
// collects their attribute names. Attribute expressions in braces are
// skipped wholesale so arrow functions and nested JSX don't end the tag
// early.
func extractElements(noComments string, f *File) []Element {
	var elements []Element
	for _, m := range reJSXTag.FindAllStringSubmatchIndex(noComments, -1) {
		name := noComments[m[2]:m[3]]
		attrText, ok := tagAttrText(noComments, m[3])
		if !ok {
			continue
		}
		line, col := f.pos(m[0])
		elements = append(elements, Element{
			Name:   name,
			Attrs:  attrNames(attrText),
			Line:   line,
			Column: col,
		})
	}
	return elements
}

// tagAttrText returns everything between the element name and the closing
// `>` of its open tag, or ok=false when the tag never closes.
func tagAttrText(s string, from int) (string, bool) {
	depth := 0
	var quote byte
	for i := from; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '>':
			if depth == 0 {
				return s[from:i], true
			}
		}
	}
	return "", false
}

// attrNames collects attribute identifiers at brace depth zero.
func attrNames(attrText string) []string {
	var names []string
	depth := 0
	var quote byte
	start := -1
	flush := func(end int) {
		if start >= 0 {
			if id := reIdent.FindString(attrText[start:end]); id != "" && id == attrText[start:end] {
				names = append(names, id)
			}
			start = -1
		}
	}
	for i := 0; i < len(attrText); i++ {
		c := attrText[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch {
		case c == '\'' || c == '"':
			flush(i)
			quote = c
		case c == '{':
			flush(i)
			depth++
		case c == '}':
			if depth > 0 {
				depth--
			}
		case depth > 0:
			// inside an expression, not attr position
		case isIdentByte(c):
			if start < 0 {
				start = i
			}
		default:
			flush(i)
		}
	}
	flush(len(attrText))
	return names
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
