package annulus

// Default annulus radii used when WithBounds is not given.
const (
	DefaultMinimum = 10
	DefaultMaximum = 20
)

// Option configures a Place call.
//
// Example:
//
//	// Six points between radius 10 and 20 around (100, 50)
//	pts, err := annulus.Place(6, annulus.WithOffset(annulus.Pt(100, 50)))
//
//	// Twelve points in a wider ring
//	pts, err := annulus.Place(12, annulus.WithBounds(30, 45))
type Option func(*options)

// options holds the parameters of a Place call besides the count.
type options struct {
	offset  Point
	minimum int
	maximum int
}

// defaultOptions returns the default placement options.
func defaultOptions() options {
	return options{
		minimum: DefaultMinimum,
		maximum: DefaultMaximum,
	}
}

// WithOffset moves the centerpoint. The offset is added to every placed
// point as given; a fractional offset yields fractional coordinates.
func WithOffset(p Point) Option {
	return func(o *options) {
		o.offset = p
	}
}

// WithBounds sets the minimum and maximum radius of the annulus.
// Non-axis points land strictly between them; axis points land on minimum.
func WithBounds(minimum, maximum int) Option {
	return func(o *options) {
		o.minimum = minimum
		o.maximum = maximum
	}
}
