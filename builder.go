package gridmesh

// Builder turns a character grid into mesh geometry.
//
// A Builder keeps only its configuration. Lattices and faces are computed
// from scratch on every call, so derived sizes always reflect the latest
// Resize and no geometry ever needs invalidating.
//
// Builder has no internal locking. Query methods may run concurrently with
// each other, but Resize must not run concurrently with anything else.
type Builder struct {
	cfg        Config
	background bool
	width      WidthFunc
}

// New creates a Builder for a screen of the given pixel size, an atlas
// texture of the given pixel size and atlas cells of the given glyph size.
// The scale defaults to 1.
func New(screen, texture, glyph Size, opts ...Option) (*Builder, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cfg := Config{
		Screen:  screen,
		Texture: texture,
		Glyph:   glyph,
		Scale:   o.scale,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Builder{
		cfg:        cfg,
		background: o.background,
		width:      o.width,
	}, nil
}

// Config returns a copy of the current configuration.
func (b *Builder) Config() Config {
	return b.cfg
}

// Background reports whether the background plane is enabled.
func (b *Builder) Background() bool {
	return b.background
}

// Resize updates the screen size. All other configuration is fixed.
func (b *Builder) Resize(screen Size) error {
	if screen.Width < 0 || screen.Height < 0 {
		return ErrInvalidSize
	}
	b.cfg.Screen = screen
	Logger().Debug("gridmesh: resized",
		"screen_w", screen.Width, "screen_h", screen.Height)
	return nil
}

// GlyphSize returns the atlas cell size in pixels.
func (b *Builder) GlyphSize() Size {
	return b.cfg.Glyph
}

// ScaledGlyphSize returns the on-screen size of one terminal column and row
// in pixels. The width is half the scaled glyph width.
func (b *Builder) ScaledGlyphSize() Size {
	return Size{
		Width:  b.cfg.Glyph.Width * b.cfg.Scale / 2,
		Height: b.cfg.Glyph.Height * b.cfg.Scale,
	}
}

// TerminalGridSize returns the number of columns and rows that fit on screen.
func (b *Builder) TerminalGridSize() Size {
	return Size{
		Width:  b.cfg.Screen.Width / (b.cfg.Glyph.Width / 2 * b.cfg.Scale),
		Height: b.cfg.Screen.Height / (b.cfg.Glyph.Height * b.cfg.Scale),
	}
}

// AtlasGridSize returns the number of glyph cells in the atlas texture.
func (b *Builder) AtlasGridSize() Size {
	return Size{
		Width:  b.cfg.Texture.Width / b.cfg.Glyph.Width,
		Height: b.cfg.Texture.Height / b.cfg.Glyph.Height,
	}
}

// AtlasCell returns the atlas cell holding the glyph for r.
// Atlas cells are laid out row-major by codepoint. The result is not range
// checked against the atlas grid.
func (b *Builder) AtlasCell(r rune) Cell {
	cols := b.AtlasGridSize().Width
	return Cell{Col: int(r) % cols, Row: int(r) / cols}
}

// Wide reports whether r occupies two terminal columns.
func (b *Builder) Wide(r rune) bool {
	return b.width(r) >= 2
}

// Advance returns the number of columns r occupies: 2 if wide, else 1.
func (b *Builder) Advance(r rune) int {
	if b.Wide(r) {
		return 2
	}
	return 1
}

// VertexIndex returns the lattice index of the top-left corner of cell c.
func (b *Builder) VertexIndex(c Cell) int {
	return c.Row*(b.TerminalGridSize().Width+1) + c.Col
}

// CellOfVertex decodes a vertex lattice index into the cell whose top-left
// corner it is. It is the inverse of VertexIndex.
func (b *Builder) CellOfVertex(idx int) Cell {
	stride := b.TerminalGridSize().Width + 1
	return Cell{Col: idx % stride, Row: idx / stride}
}
