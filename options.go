package pathmodel

// Options holds the settings Parse uses to split text.
type Options struct {
	Separator string
}

// Option defines a function type for applying parse options.
type Option func(*Options)

// WithSeparator sets the token used to split the path text.
// An empty separator is ignored and DefaultSeparator stays in effect.
func WithSeparator(separator string) Option {
	return func(opts *Options) {
		if separator != "" {
			opts.Separator = separator
		}
	}
}

func newOptions(opts []Option) Options {
	options := Options{Separator: DefaultSeparator}

	for _, apply := range opts {
		apply(&options)
	}

	return options
}
