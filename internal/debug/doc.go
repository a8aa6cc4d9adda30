// Package debug provides optional file-based debug logging.
//
// When the GRID_DEBUG environment variable is set to a file path, debug
// records are appended to that file as logfmt lines. Otherwise, logging
// is a no-op.
package debug
