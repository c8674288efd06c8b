package args

type setConfig struct {
	seps                string
	redefinitionIsError bool
}

type Option func(*setConfig)

// WithSeparators sets the initial key/value separator characters, in
// precedence order. Default is "=".
func WithSeparators(seps string) Option {
	return func(c *setConfig) {
		c.seps = seps
	}
}

// WithRedefinitionIsError controls whether supplying the same argument more
// than once produces a redefinition diagnostic. Default is true.
func WithRedefinitionIsError(b bool) Option {
	return func(c *setConfig) {
		c.redefinitionIsError = b
	}
}
