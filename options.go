package jsontransform

type config struct {
	registry *Registry
	state    any
}

// Option adjusts one transformation run.
type Option func(*config)

// WithRegistry runs the transformation against reg instead of the
// process-wide registry.
func WithRegistry(reg *Registry) Option {
	return func(c *config) {
		if reg != nil {
			c.registry = reg
		}
	}
}

// WithState makes state available to custom commands as Context.State for
// the duration of the run, nested $foreach pipelines included.
func WithState(state any) Option {
	return func(c *config) {
		c.state = state
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{registry: defaultRegistry()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
