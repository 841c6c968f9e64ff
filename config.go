package gridmesh

// Size is a width/height pair. Depending on context it is measured in
// pixels (screen, texture, glyph) or in character cells (grids).
type Size struct {
	Width, Height int
}

// Cell addresses a character cell by column and row.
type Cell struct {
	Col, Row int
}

// Config holds the sizing configuration of a Builder.
//
// Glyph is the pixel size of one full-width atlas cell. Terminal columns are
// laid out at half that width so a double-width glyph covers exactly two
// columns.
type Config struct {
	// Screen is the drawable surface size in pixels.
	Screen Size

	// Texture is the glyph atlas size in pixels.
	// Must be an integer multiple of Glyph in both axes.
	Texture Size

	// Glyph is the atlas cell size in pixels.
	Glyph Size

	// Scale is the integer magnification applied to glyphs on screen.
	// Default: 1
	Scale int
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Glyph.Width < 2 {
		return &ConfigError{Field: "Glyph.Width", Reason: "must be at least 2"}
	}
	if c.Glyph.Height < 1 {
		return &ConfigError{Field: "Glyph.Height", Reason: "must be positive"}
	}
	if c.Scale < 1 {
		return &ConfigError{Field: "Scale", Reason: "must be at least 1"}
	}
	if c.Texture.Width < c.Glyph.Width || c.Texture.Width%c.Glyph.Width != 0 {
		return &ConfigError{Field: "Texture.Width", Reason: "must be a positive multiple of Glyph.Width"}
	}
	if c.Texture.Height < c.Glyph.Height || c.Texture.Height%c.Glyph.Height != 0 {
		return &ConfigError{Field: "Texture.Height", Reason: "must be a positive multiple of Glyph.Height"}
	}
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		return &ConfigError{Field: "Screen", Reason: "must be non-negative"}
	}
	return nil
}
