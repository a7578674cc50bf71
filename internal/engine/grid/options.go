package grid

// Option configures a Grid during creation.
type Option func(*options)

type options struct {
	fill Color
}

// WithFill sets the color every cell starts with.
func WithFill(c Color) Option {
	return func(o *options) {
		o.fill = c
	}
}
