package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrAxesUndefined is returned when auto-grid runs on a container
	// with neither rows nor columns defined.
	ErrAxesUndefined = errors.New("define rows or columns to use auto-grid")

	// ErrTooManyChildren is returned when auto-grid runs out of cells
	// before every unpositioned child is placed.
	ErrTooManyChildren = errors.New("too many children for the grid")
)

// ConfigError reports an auto-grid configuration error on a container.
// Test for the cause with errors.Is against ErrAxesUndefined or
// ErrTooManyChildren.
type ConfigError struct {
	Element  string // Container name, may be empty
	Rows     int    // Row count when the error was detected
	Columns  int    // Column count when the error was detected
	Children int
	Err      error
}

func (e *ConfigError) Error() string {
	prefix := "auto-grid"
	if e.Element != "" {
		prefix = fmt.Sprintf("auto-grid %q", e.Element)
	}
	if errors.Is(e.Err, ErrTooManyChildren) {
		return fmt.Sprintf("%s: %v (%dx%d cells, %d children)", prefix, e.Err, e.Rows, e.Columns, e.Children)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
