// Package config loads configuration through four extension points:
//   - Parser: deserializes raw data into config struct, descending into a section
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// # Sections
//
// Provider takes a section key that is parsed into a pathmodel.Path using
// SectionSeparator (":") and normalized, so the usual path rules apply:
//
//	"workspace:cache"         -> config["workspace"]["cache"]
//	"workspace::cache"        -> config["workspace"]["cache"]
//	"workspace:tmp:..:cache"  -> config["workspace"]["cache"]
//	""                        -> entire document
//
// # Example
//
//	cfg, err := config.Provider(&workspace.Config{}, "workspace")(
//	    yamlparser.NewParser(),
//	    fetcher,
//	)
package config
