package rule

func init() {
	Register(Rule{
		ID:          "component-file-pascalcase",
		Description: "component file is not PascalCase",
		Severity:    SeverityWarning,
		Suggestion:  "name component files after the component they export (SettingsCard.tsx)",
		Matcher: &FilenameMatcher{
			Dirs:       []string{"components", "screens"},
			Extensions: []string{".tsx", ".jsx"},
			Style:      StylePascalCase,
		},
	})
	Register(Rule{
		ID:          "hook-file-use-prefix",
		Description: "hook file is not use-prefixed camelCase",
		Severity:    SeverityWarning,
		Suggestion:  "name hook files after the hook (useAuth.ts); the use prefix is what enables lint rules for hooks",
		Matcher: &FilenameMatcher{
			Dirs:       []string{"hooks"},
			Extensions: []string{".ts", ".tsx", ".js", ".jsx"},
			Style:      StyleUsePrefix,
		},
	})
}
