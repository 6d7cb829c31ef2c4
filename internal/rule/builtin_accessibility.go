package rule

func init() {
	Register(Rule{
		ID:          "pressable-accessibility-role",
		Description: "pressable element without an accessibility role",
		Severity:    SeverityWarning,
		Suggestion:  "add accessibilityRole=\"button\" (or role) so screen readers announce the element as interactive",
		Matcher: &ElementMatcher{
			Elements:      []string{"Pressable", "TouchableOpacity", "TouchableHighlight", "TouchableWithoutFeedback"},
			RequiredAttrs: []string{"accessibilityRole", "role"},
		},
	})
}
