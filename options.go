package gridmesh

// Option configures a Builder during creation.
//
// Example:
//
//	b, err := gridmesh.New(screen, atlas, glyph,
//	    gridmesh.WithScale(2),
//	    gridmesh.WithBackground(),
//	)
type Option func(*builderOptions)

// builderOptions holds optional configuration for Builder creation.
type builderOptions struct {
	scale      int
	background bool
	width      WidthFunc
}

// defaultOptions returns the default builder options.
func defaultOptions() builderOptions {
	return builderOptions{
		scale: 1,
		width: EastAsianWidth,
	}
}

// WithScale sets the integer glyph magnification. Values below 1 are
// rejected by New.
func WithScale(n int) Option {
	return func(o *builderOptions) {
		o.scale = n
	}
}

// WithBackground enables the untextured background plane. With it enabled,
// GenerateLattices also returns the depth-offset background lattice,
// NewFrame returns a background mesh, and PlaceText emits background
// triangles alongside each glyph.
func WithBackground() Option {
	return func(o *builderOptions) {
		o.background = true
	}
}

// WithWidthFunc replaces the display width classifier. A nil fn keeps the
// default EastAsianWidth.
func WithWidthFunc(fn WidthFunc) Option {
	return func(o *builderOptions) {
		if fn != nil {
			o.width = fn
		}
	}
}
