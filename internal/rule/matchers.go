package rule

import (
	"path"
	"regexp"
	"strings"

	"github.com/bartekus/rnlint/internal/source"
)

// ImportMatcher fires on imports (including require calls and star
// re-exports) whose module path matches Module. When Names is non-empty,
// only imports binding one of those names fire.
type ImportMatcher struct {
	Module *regexp.Regexp
	Names  []string
}

func (m *ImportMatcher) Check(f *source.File) []Match {
	var out []Match
	for _, imp := range f.Imports {
		if !m.Module.MatchString(imp.Module) {
			continue
		}
		if len(m.Names) == 0 {
			out = append(out, Match{Line: imp.Line, Column: imp.Column, Detail: imp.Module})
			continue
		}
		var hits []string
		for _, want := range m.Names {
			for _, got := range imp.Names {
				if got == want {
					hits = append(hits, want)
					break
				}
			}
		}
		if len(hits) > 0 {
			out = append(out, Match{Line: imp.Line, Column: imp.Column, Detail: strings.Join(hits, ", ")})
		}
	}
	return out
}

// LineMatcher fires on each stripped line matching Pattern. Stripped
// lines have comments and string contents blanked, so patterns don't
// trip on literals.
type LineMatcher struct {
	Pattern *regexp.Regexp
}

func (m *LineMatcher) Check(f *source.File) []Match {
	var out []Match
	for i, line := range f.Stripped {
		if loc := m.Pattern.FindStringIndex(line); loc != nil {
			out = append(out, Match{Line: i + 1, Column: loc[0] + 1})
		}
	}
	return out
}

// NameStyle is a filename convention a FilenameMatcher enforces.
type NameStyle string

const (
	// StylePascalCase requires UpperCamelCase basenames (SettingsCard.tsx).
	StylePascalCase NameStyle = "pascal-case"
	// StyleUsePrefix requires a `use` prefix with camelCase (useAuth.ts).
	StyleUsePrefix NameStyle = "use-prefix"
)

// FilenameMatcher fires when a file inside one of Dirs (path segment
// match, anywhere in the path) with one of Extensions breaks Style.
// Index files are exempt.
type FilenameMatcher struct {
	Dirs       []string
	Extensions []string
	Style      NameStyle
}

func (m *FilenameMatcher) Check(f *source.File) []Match {
	if !inDirs(f.Path, m.Dirs) || !hasExt(f.Path, m.Extensions) {
		return nil
	}
	base := path.Base(f.Path)
	name := strings.TrimSuffix(base, path.Ext(base))
	if name == "index" || strings.HasSuffix(name, ".test") || strings.HasSuffix(name, ".spec") {
		return nil
	}
	if styleOK(name, m.Style) {
		return nil
	}
	return []Match{{Line: 1, Column: 1, Detail: base}}
}

func styleOK(name string, style NameStyle) bool {
	switch style {
	case StylePascalCase:
		return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z' &&
			!strings.ContainsAny(name, "-_ ")
	case StyleUsePrefix:
		if !strings.HasPrefix(name, "use") || len(name) < 4 {
			return false
		}
		return name[3] >= 'A' && name[3] <= 'Z' && !strings.ContainsAny(name, "-_ ")
	}
	return false
}

func inDirs(p string, dirs []string) bool {
	if len(dirs) == 0 {
		return true
	}
	segments := strings.Split(path.Dir(p), "/")
	for _, seg := range segments {
		for _, d := range dirs {
			if seg == d {
				return true
			}
		}
	}
	return false
}

func hasExt(p string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	for _, e := range exts {
		if strings.HasSuffix(p, e) {
			return true
		}
	}
	return false
}

// ElementMatcher fires on JSX open elements named in Elements that carry
// none of RequiredAttrs.
type ElementMatcher struct {
	Elements      []string
	RequiredAttrs []string
}

func (m *ElementMatcher) Check(f *source.File) []Match {
	var out []Match
	for i := range f.Elements {
		el := &f.Elements[i]
		if !containsString(m.Elements, el.Name) {
			continue
		}
		satisfied := false
		for _, attr := range m.RequiredAttrs {
			if el.HasAttr(attr) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			out = append(out, Match{Line: el.Line, Column: el.Column, Detail: "<" + el.Name + ">"})
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
