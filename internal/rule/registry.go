package rule

import (
	"fmt"
	"sort"
	"strings"
)

var registry []Rule

// Register adds a rule to the package registry. Built-in rules register
// from init. Malformed rules and duplicate ids surface from Load,
// before any scanning happens.
func Register(r Rule) {
	registry = append(registry, r)
}

// Settings tunes which registered rules are active for a run.
type Settings struct {
	// Disabled lists rule ids excluded from evaluation.
	Disabled map[string]bool
	// Severities overrides the registered severity per rule id.
	Severities map[string]Severity
}

// Load validates the registry plus any pack-loaded extras and returns
// the active rule list in deterministic (id) order with settings
// applied. Any malformed rule or unknown id in the settings is a
// configuration error.
func Load(s Settings, extra ...Rule) ([]Rule, error) {
	all := make([]Rule, 0, len(registry)+len(extra))
	all = append(all, registry...)
	all = append(all, extra...)

	byID := make(map[string]bool, len(all))
	for _, r := range all {
		if err := r.validate(); err != nil {
			return nil, err
		}
		if byID[r.ID] {
			return nil, fmt.Errorf("duplicate rule id %q", r.ID)
		}
		byID[r.ID] = true
	}
	for id := range s.Disabled {
		if !byID[id] {
			return nil, fmt.Errorf("cannot disable unknown rule %q", id)
		}
	}
	for id := range s.Severities {
		if !byID[id] {
			return nil, fmt.Errorf("severity override for unknown rule %q", id)
		}
	}

	out := make([]Rule, 0, len(all))
	for _, r := range all {
		if s.Disabled[r.ID] {
			continue
		}
		if sev, ok := s.Severities[r.ID]; ok {
			r.Severity = sev
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// All returns every registered rule in id order, ignoring settings.
// Used by the `rules` listing command.
func All() []Rule {
	out := make([]Rule, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a registered rule by id.
func Get(id string) (Rule, bool) {
	id = strings.TrimSpace(id)
	for _, r := range registry {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}
