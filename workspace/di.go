package workspace

import (
	"fmt"

	"go.uber.org/fx"
)

// NewModule creates an Fx module that provides a named *Workspace.
// The name is used as both the module name and the DI named tag for Config and *Workspace.
// If any options are passed, the module supplies Config to DI from those options.
// Otherwise, Config must be provided externally (e.g., via config.Provider).
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var cfg Config

	for _, apply := range opts {
		apply(&cfg)
	}

	tag := fmt.Sprintf(`name:"%s"`, name)

	var moduleOpts []fx.Option

	if len(opts) > 0 {
		moduleOpts = append(moduleOpts, fx.Supply(
			fx.Annotate(cfg, fx.ResultTags(tag)),
		))
	}

	moduleOpts = append(moduleOpts, fx.Provide(
		fx.Annotate(
			New,
			fx.ParamTags(tag),
			fx.ResultTags(tag),
		),
	))

	return fx.Module(name, moduleOpts...)
}
