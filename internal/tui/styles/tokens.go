package styles

// ThemeTokens defines the semantic color roles for the picker.
type ThemeTokens struct {
	Text      string
	TextMuted string
	Border    string
	Accent    string
	Focus     string
	Success   string
	Warning   string
	Error     string
}

// Theme bundles a set of tokens with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available themes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// Lookup returns the named theme, or DefaultTheme when unknown.
func Lookup(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}
