package workspace

// Option defines a function type for configuring a Workspace.
type Option func(*Config)

// WithRoot sets the root directory of the Workspace.
func WithRoot(root string) Option {
	return func(cfg *Config) {
		cfg.Root = root
	}
}

// WithSeparator sets the separator used to parse the root and resolved text.
func WithSeparator(separator string) Option {
	return func(cfg *Config) {
		cfg.Separator = separator
	}
}

// WithNormalize makes the Workspace normalize every resolved path.
func WithNormalize(normalize bool) Option {
	return func(cfg *Config) {
		cfg.Normalize = normalize
	}
}
