// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml with native PathString support.
// The section path's keys, as returned by config.Keys, are joined into a YAML
// path before reading.
//
// Usage:
//
//	parser := yaml.NewParser()
//	var cfg workspace.Config
//	err := parser.Parse(data, &cfg, config.Section("services:workspace"))
//
// Section Conversion:
//   - Empty section "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested section "api:permissions" -> "$.api.permissions"
package yaml
