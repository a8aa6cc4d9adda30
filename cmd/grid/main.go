// Package main provides the CLI tool for declarative grid documents.
//
// Usage:
//
//	grid check [path...]      Load, build and lay out documents
//	grid layout FILE          Print the computed layout of a document
//	grid preview FILE         Draw a document as box-drawn text
//	grid help                 Show help
//
// Examples:
//
//	grid check ./...          Recursively check all documents
//	grid layout form.yaml     Print element rects and resolved tracks
//	grid preview -w 60 a.hcl  Draw a.hcl 60 cells wide
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

const version = "0.1.0"

const usage = `grid - layout tool for declarative grid documents

Usage:
  grid <command> [options] [path...]

Commands:
  check       Load, build and lay out documents, reporting errors
  layout      Print the computed layout of a document
  preview     Draw a document as box-drawn text
  version     Print version information
  help        Show this help message

Options:
  -v, --verbose     Verbose output (check)
  -w, --width N     Layout width in cells
  -h, --height N    Layout height in cells

Documents are .yaml, .yml, .json, .jsonc or .hcl files describing an
element tree with row_definitions, column_definitions and auto_grid.
Set GRID_DEBUG=/path/to/file to write debug logs.

Examples:
  grid check ./...                Recursively check all documents
  grid check -v forms             Check documents in a directory
  grid layout form.yaml           Print element rects and resolved tracks
  grid preview -w 60 -h 12 a.hcl  Draw a.hcl in a 60x12 area
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "check":
		err = runCheck(args, os.Stdout)
	case "layout":
		err = runLayout(args, os.Stdout)
	case "preview":
		err = runPreview(args, os.Stdout)
	case "version":
		fmt.Printf("grid version %s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", command)
		fmt.Print(usage)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
