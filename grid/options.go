// This file declares the functional options accepted by the Grid
// constructors.

package grid

// Option configures a Grid at construction via functional arguments.
type Option func(*config)

// config holds the tunable behavior of a Grid.
type config struct {
	// autoGrow switches an out-of-bounds Insert from failing with
	// ErrOutOfBounds to growing the bounds around the new key.
	autoGrow bool
}

// defaultConfig returns the safe defaults: no growth, out-of-bounds
// inserts fail.
func defaultConfig() config {
	return config{autoGrow: false}
}

// WithAutoGrow makes Insert (and GetOrInsert) grow the bounding
// rectangle to the minimal rectangle enclosing both the old bounds
// and the new key, instead of returning ErrOutOfBounds. Growth
// reallocates the dense store: the insert itself becomes O(area)
// when it grows, so prefer sizing bounds up front where you can.
func WithAutoGrow() Option {
	return func(c *config) {
		c.autoGrow = true
	}
}
