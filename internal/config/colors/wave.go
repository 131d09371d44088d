package colors

// Wave returns the kanagawa "wave" color scheme
func Wave() *ColorScheme {
	const (
		oniViolet   = "#957FB8"
		crystalBlue = "#7E9CD8"
		springGreen = "#98BB6C"
		carpYellow  = "#E6C384"
		fujiGray    = "#727169"
		fujiWhite   = "#DCD7BA"
		sumiInk6    = "#54546D"
		waveRed     = "#E46876"
		samuraiRed  = "#E82424"
	)

	return &ColorScheme{
		Preset: "wave",

		Accent: oniViolet,

		Initial: crystalBlue,
		Pending: carpYellow,
		Final:   springGreen,
		Cancel:  fujiGray,

		Blocked: waveRed,
		Success: springGreen,

		ColumnBorder: sumiInk6,
		CardBorder:   fujiGray,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		ErrorFg: samuraiRed,
	}
}
