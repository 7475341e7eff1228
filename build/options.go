package build

import "runtime"

// Option configures a build.
type Option func(*options)

// options holds build configuration.
type options struct {
	charset    Charset
	workers    int
	spaceGlyph bool
}

// defaultOptions returns the default build configuration.
func defaultOptions() options {
	return options{
		charset:    CharsetAll,
		workers:    runtime.GOMAXPROCS(0),
		spaceGlyph: true,
	}
}

// WithCharset restricts the build to a charset. Glyphs, bearings, kerning
// classes and overrides outside it are dropped before ordering, and the
// charset's required characters must all be present.
func WithCharset(c Charset) Option {
	return func(o *options) {
		o.charset = c
	}
}

// WithWorkers sets the number of goroutines rasterizing glyphs.
// Values below 1 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithSpaceGlyph controls whether a blank U+0020 glyph of
// Description.SpaceWidth is synthesized. It is on by default; turn it off
// when the sources provide their own space.
func WithSpaceGlyph(enabled bool) Option {
	return func(o *options) {
		o.spaceGlyph = enabled
	}
}
