// Package file provides a file-based DataFetcher implementation for the config package.
//
// The location is a pathmodel.Path. Relative locations are resolved against the
// working directory and normalized, so "../shared/app.yaml" reads the file one
// level up. Locations that end with a separator denote directories and are
// rejected before the filesystem is consulted.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem.
//
// Usage:
//
//	fetcher, err := file.NewFetcherFromString("/etc/app/workspace.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
