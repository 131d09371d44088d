package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Initial: "#FFFFFF",
		Pending: "#D0D0D0",
		Final:   "#FFFFFF",
		Cancel:  "#585858",

		Blocked: "#FFFFFF",
		Success: "#FFFFFF",

		ColumnBorder: "#FFFFFF",
		CardBorder:   "#585858",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ErrorFg: "#FFFFFF",
	}
}
