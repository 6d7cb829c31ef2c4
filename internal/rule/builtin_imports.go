package rule

import "regexp"

func init() {
	Register(Rule{
		ID:          "no-umbrella-expo-import",
		Description: "import from the umbrella \"expo\" package",
		Severity:    SeverityWarning,
		Suggestion:  "import from the specific expo-* package (e.g. expo-constants) to keep bundles small",
		Matcher:     &ImportMatcher{Module: regexp.MustCompile(`^expo$`)},
	})
	Register(Rule{
		ID:          "prefer-pressable",
		Description: "Touchable components are legacy",
		Severity:    SeverityWarning,
		Suggestion:  "use Pressable, which supersedes the Touchable* family",
		Matcher: &ImportMatcher{
			Module: regexp.MustCompile(`^react-native$`),
			Names:  []string{"TouchableOpacity", "TouchableHighlight", "TouchableWithoutFeedback"},
		},
	})
	Register(Rule{
		ID:          "no-index-imports",
		Description: "import resolves through a directory index file",
		Severity:    SeverityWarning,
		Suggestion:  "import the module file directly instead of its folder index",
		Matcher:     &ImportMatcher{Module: regexp.MustCompile(`/index(\.(js|jsx|ts|tsx))?$`)},
	})
}
