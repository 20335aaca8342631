// Package pathmodel parses path strings into structured values and manipulates them
// without ever touching a filesystem.
//
// A Path is split on a configurable separator into an optional drive-letter device,
// an ordered list of folder segments, and an optional trailing file. Derived views
// (file name, extension, directory, complete string) are computed once at construction.
//
// # Pipeline
//
//   - Parse turns text into a Path. It never fails.
//   - FileName, FileExtension, Directory and Complete expose derived views.
//   - Normalize collapses "." entries and resolves ".." against the preceding segment.
//   - Resolve combines a base path with another path or string.
//
// # Example
//
//	base := pathmodel.Parse("/srv/app/")
//	cfg := base.ResolveNormalizedString("../shared/config.yaml")
//	fmt.Println(cfg)             // /srv/shared/config.yaml
//	fmt.Println(cfg.FileName())  // config
//
// # Equality
//
// Two paths are equal when their complete strings are equal. The separator is not
// compared, so Parse("a/b") and Parse("a/b", WithSeparator("\\")) are equal.
package pathmodel
