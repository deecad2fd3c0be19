package dong

type readConfig struct {
	limits       Limits
	strictBounds bool
}

type ReadOption func(*readConfig)

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.WithDefaults()
	return cfg
}

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithStrictBounds makes Decode fail with ErrTruncated when the declared
// payload sizes run past the end of the input, instead of returning the
// available bytes with Container.Truncated set.
func WithStrictBounds(v bool) ReadOption {
	return func(c *readConfig) { c.strictBounds = v }
}

type writeConfig struct {
	limits Limits
	policy MediaTypePolicy
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

// WithMediaTypePolicy selects how asset media types are checked on Encode.
// The default is PolicyCategory.
func WithMediaTypePolicy(p MediaTypePolicy) WriteOption {
	return func(c *writeConfig) { c.policy = p }
}
