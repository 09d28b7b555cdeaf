package styles

// DefaultTheme is the baseline theme.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Text:      "#E6EDF3",
		TextMuted: "#8B9AAE",
		Border:    "#223043",
		Accent:    "#5B8DEF",
		Focus:     "#7AA2F7",
		Success:   "#3FB950",
		Warning:   "#D29922",
		Error:     "#F85149",
	},
}
