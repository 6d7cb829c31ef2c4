package rule

import "regexp"

func init() {
	Register(Rule{
		ID:          "no-barrel-exports",
		Description: "barrel re-export (export * from ...)",
		Severity:    SeverityError,
		Suggestion:  "re-export named symbols explicitly; star re-exports defeat tree shaking and hide the public surface",
		Matcher:     &LineMatcher{Pattern: regexp.MustCompile(`^\s*export\s*\*\s*(as\s+\w+\s+)?from\b`)},
	})
	Register(Rule{
		ID:          "no-inline-styles",
		Description: "inline style object literal",
		Severity:    SeverityWarning,
		Suggestion:  "move the object into StyleSheet.create so it is allocated once",
		Matcher:     &LineMatcher{Pattern: regexp.MustCompile(`\bstyle\s*=\s*\{\{`)},
	})
	Register(Rule{
		ID:          "no-console",
		Description: "console call left in source",
		Severity:    SeverityWarning,
		Suggestion:  "route through the app logger; console calls ship to production bundles",
		Matcher:     &LineMatcher{Pattern: regexp.MustCompile(`\bconsole\.(log|info|warn|error|debug)\s*\(`)},
	})
	Register(Rule{
		ID:          "no-deprecated-dimensions",
		Description: "Dimensions.get is deprecated for layout",
		Severity:    SeverityWarning,
		Suggestion:  "use the useWindowDimensions hook, which tracks rotation and window resizes",
		Matcher:     &LineMatcher{Pattern: regexp.MustCompile(`\bDimensions\.get\s*\(`)},
	})
}
