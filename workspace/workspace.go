package workspace

import (
	"fmt"
	"log/slog"
	"strings"

	pathmodel "github.com/0xalexb/hjarta-pathmodel"
	"github.com/0xalexb/hjarta-pathmodel/logging"
)

// Workspace resolves path text against a fixed absolute root.
type Workspace struct {
	root      pathmodel.Path
	normalize bool
}

// New validates cfg and creates a Workspace rooted at cfg.Root.
func New(cfg Config) (*Workspace, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid workspace config: %w", err)
	}

	root := cfg.RootPath()
	if cfg.Normalize {
		root = root.Normalized()
	}

	slog.Debug("workspace created", logging.Path("root", root))

	return &Workspace{
		root:      root,
		normalize: cfg.Normalize,
	}, nil
}

// Root returns the root directory.
func (w *Workspace) Root() pathmodel.Path {
	return w.root
}

// Resolve parses text with the root's separator and resolves it against the root.
func (w *Workspace) Resolve(text string) pathmodel.Path {
	if w.normalize {
		return w.root.ResolveNormalizedString(text)
	}

	return w.root.ResolveString(text)
}

// ResolvePath resolves p against the root.
func (w *Workspace) ResolvePath(p pathmodel.Path) pathmodel.Path {
	if w.normalize {
		return w.root.ResolveNormalized(p)
	}

	return w.root.Resolve(p)
}

// Contains reports whether p, once normalized, lies under the root.
func (w *Workspace) Contains(p pathmodel.Path) bool {
	if p.Separator() != w.root.Separator() {
		return false
	}

	return strings.HasPrefix(p.Normalized().Complete(), w.root.Normalized().Complete())
}
