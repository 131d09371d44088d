package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset" env:"QUADRO_THEME"`

	// Primary accent color (used for titles, highlights, IDs)
	Accent string `yaml:"accent"`

	// Column kind colors
	Initial string `yaml:"initial"`
	Pending string `yaml:"pending"`
	Final   string `yaml:"final"`
	Cancel  string `yaml:"cancel"`

	// Card state colors
	Blocked string `yaml:"blocked"`
	Success string `yaml:"success"`

	// UI element colors
	ColumnBorder string `yaml:"column_border"`
	CardBorder   string `yaml:"card_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/secondary text
	Normal string `yaml:"normal"`

	// Error output
	ErrorFg string `yaml:"error_fg"`
}

// Presets lists the names accepted by GetPreset
var Presets = []string{"default", "monochrome", "wave"}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Initial, preset.Initial)
	fill(&c.Pending, preset.Pending)
	fill(&c.Final, preset.Final)
	fill(&c.Cancel, preset.Cancel)
	fill(&c.Blocked, preset.Blocked)
	fill(&c.Success, preset.Success)
	fill(&c.ColumnBorder, preset.ColumnBorder)
	fill(&c.CardBorder, preset.CardBorder)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.ErrorFg, preset.ErrorFg)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}

	merge(&c.Preset, other.Preset)
	merge(&c.Accent, other.Accent)
	merge(&c.Initial, other.Initial)
	merge(&c.Pending, other.Pending)
	merge(&c.Final, other.Final)
	merge(&c.Cancel, other.Cancel)
	merge(&c.Blocked, other.Blocked)
	merge(&c.Success, other.Success)
	merge(&c.ColumnBorder, other.ColumnBorder)
	merge(&c.CardBorder, other.CardBorder)
	merge(&c.Title, other.Title)
	merge(&c.Subtle, other.Subtle)
	merge(&c.Normal, other.Normal)
	merge(&c.ErrorFg, other.ErrorFg)
}
