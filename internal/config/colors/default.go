package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",

		// Column kinds
		Initial: "#5F87D7",
		Pending: "#FFD700",
		Final:   "#5FD75F",
		Cancel:  "#585858",

		// Card state
		Blocked: "#FF0000",
		Success: "#5FD75F",

		// UI elements
		ColumnBorder: "#5F87D7",
		CardBorder:   "#585858",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ErrorFg: "#FF0000",
	}
}
