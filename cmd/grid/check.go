package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	grid "github.com/grindlemire/go-grid"
	"github.com/grindlemire/go-grid/internal/document"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// checkResult is the outcome of checking a single document.
type checkResult struct {
	path     string
	elements int
	err      error
}

func runCheck(args []string, stdout io.Writer) error {
	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	verbose := flags.BoolP("verbose", "v", false, "verbose output")
	width := flags.IntP("width", "w", defaultWidth, "layout width in cells")
	height := flags.IntP("height", "h", defaultHeight, "layout height in cells")
	if err := flags.Parse(args); err != nil {
		return err
	}

	paths := flags.Args()
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectDocuments(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no documents found")
	}

	logger := newLogger(*verbose)
	results := checkFiles(files, *width, *height, logger)

	return report(stdout, results, *verbose)
}

// checkFiles checks every file concurrently. Results are returned in the
// order of files regardless of completion order.
func checkFiles(files []string, width, height int, logger *slog.Logger) []checkResult {
	results := make([]checkResult, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			logger.Debug("checking document", "path", path)
			results[i] = checkFile(path, width, height)
			return nil
		})
	}
	// Per-file errors live in results; the group itself never fails.
	_ = g.Wait()

	return results
}

// checkFile loads path, builds its tree and runs a full layout pass,
// which also runs every auto-grid placement.
func checkFile(path string, width, height int) checkResult {
	result := checkResult{path: path}

	root, err := document.Load(path)
	if err != nil {
		result.err = err
		return result
	}

	if err := grid.Calculate(root, width, height); err != nil {
		result.err = fmt.Errorf("%s: %w", path, err)
		return result
	}

	root.Walk(func(*grid.Element) error {
		result.elements++
		return nil
	})
	return result
}

// report prints one line per failed document, or per document when
// verbose, and returns an error when any document failed.
func report(w io.Writer, results []checkResult, verbose bool) error {
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %v\n", r.err)
			continue
		}
		if verbose {
			fmt.Fprintf(w, "ok   %s (%d elements)\n", r.path, r.elements)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	if verbose {
		fmt.Fprintf(w, "checked %d documents\n", len(results))
	}
	return nil
}
