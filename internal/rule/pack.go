package rule

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// packDoc is the YAML shape of a rule pack: project-specific rules using
// the same matcher kinds as the built-ins.
type packDoc struct {
	Rules []packRule `yaml:"rules"`
}

type packRule struct {
	ID          string `yaml:"id"`
	Description string `yaml:"description"`
	Severity    string `yaml:"severity"` // warning|error
	Suggestion  string `yaml:"suggestion"`
	Kind        string `yaml:"kind"` // import|line|filename|element

	// kind: import
	Module string   `yaml:"module"` // regex
	Names  []string `yaml:"names"`

	// kind: line
	Pattern string `yaml:"pattern"` // regex

	// kind: filename
	Dirs       []string `yaml:"dirs"`
	Extensions []string `yaml:"extensions"`
	Style      string   `yaml:"style"` // pascal-case|use-prefix

	// kind: element
	Elements      []string `yaml:"elements"`
	RequiredAttrs []string `yaml:"required_attrs"`
}

// LoadPack parses a YAML rule pack into rules ready for Load. Every
// malformed entry is a configuration error; nothing is registered
// half-compiled.
func LoadPack(path string) ([]Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule pack: %w", err)
	}
	var doc packDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse rule pack %s: %w", path, err)
	}

	rules := make([]Rule, 0, len(doc.Rules))
	for _, pr := range doc.Rules {
		r, err := compilePackRule(pr)
		if err != nil {
			return nil, fmt.Errorf("rule pack %s: rule %q: %w", path, pr.ID, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

func compilePackRule(pr packRule) (Rule, error) {
	if pr.ID == "" {
		return Rule{}, fmt.Errorf("missing id")
	}
	sev, err := ParseSeverity(pr.Severity)
	if err != nil {
		return Rule{}, err
	}

	var m Matcher
	switch pr.Kind {
	case "import":
		if pr.Module == "" {
			return Rule{}, fmt.Errorf("import rule needs a module pattern")
		}
		re, err := regexp.Compile(pr.Module)
		if err != nil {
			return Rule{}, fmt.Errorf("module pattern: %w", err)
		}
		m = &ImportMatcher{Module: re, Names: pr.Names}
	case "line":
		if pr.Pattern == "" {
			return Rule{}, fmt.Errorf("line rule needs a pattern")
		}
		re, err := regexp.Compile(pr.Pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("pattern: %w", err)
		}
		m = &LineMatcher{Pattern: re}
	case "filename":
		style := NameStyle(pr.Style)
		if style != StylePascalCase && style != StyleUsePrefix {
			return Rule{}, fmt.Errorf("unknown filename style %q", pr.Style)
		}
		m = &FilenameMatcher{Dirs: pr.Dirs, Extensions: pr.Extensions, Style: style}
	case "element":
		if len(pr.Elements) == 0 || len(pr.RequiredAttrs) == 0 {
			return Rule{}, fmt.Errorf("element rule needs elements and required_attrs")
		}
		m = &ElementMatcher{Elements: pr.Elements, RequiredAttrs: pr.RequiredAttrs}
	default:
		return Rule{}, fmt.Errorf("unknown rule kind %q", pr.Kind)
	}

	return Rule{
		ID:          pr.ID,
		Description: pr.Description,
		Severity:    sev,
		Suggestion:  pr.Suggestion,
		Matcher:     m,
	}, nil
}
