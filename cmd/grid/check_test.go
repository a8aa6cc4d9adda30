package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	grid "github.com/grindlemire/go-grid"
)

const validDoc = `
name: form
column_definitions: "auto,*"
auto_grid: true
children:
  - text: Name
  - text: Value
`

const axesUndefinedDoc = `
name: broken
auto_grid: true
children:
  - text: a
`

const overflowDoc = `
name: full
row_definitions: "*"
column_definitions: "*,*"
auto_grid: true
children:
  - text: a
  - text: b
  - text: c
`

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.yaml")
	undefined := filepath.Join(dir, "undefined.yaml")
	overflow := filepath.Join(dir, "overflow.yaml")
	unsupported := filepath.Join(dir, "form.toml")
	writeFile(t, valid, validDoc)
	writeFile(t, undefined, axesUndefinedDoc)
	writeFile(t, overflow, overflowDoc)
	writeFile(t, unsupported, "name = 1\n")

	files := []string{overflow, valid, undefined, unsupported}
	results := checkFiles(files, 20, 4, discardLogger())

	if len(results) != len(files) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(files))
	}
	for i, r := range results {
		if r.path != files[i] {
			t.Errorf("results[%d].path = %q, want %q", i, r.path, files[i])
		}
	}

	if !errors.Is(results[0].err, grid.ErrTooManyChildren) {
		t.Errorf("overflow err = %v, want ErrTooManyChildren", results[0].err)
	}
	if results[1].err != nil {
		t.Errorf("valid err = %v, want nil", results[1].err)
	}
	if results[1].elements != 3 {
		t.Errorf("valid elements = %d, want 3", results[1].elements)
	}
	if !errors.Is(results[2].err, grid.ErrAxesUndefined) {
		t.Errorf("undefined err = %v, want ErrAxesUndefined", results[2].err)
	}
	if results[3].err == nil {
		t.Error("unsupported format err = nil, want error")
	}
}

func TestReport(t *testing.T) {
	type tc struct {
		results  []checkResult
		verbose  bool
		wantErr  bool
		expected string
	}

	tests := map[string]tc{
		"all ok quiet": {
			results:  []checkResult{{path: "a.yaml", elements: 2}},
			expected: "",
		},
		"all ok verbose": {
			results:  []checkResult{{path: "a.yaml", elements: 2}},
			verbose:  true,
			expected: "ok   a.yaml (2 elements)\nchecked 1 documents\n",
		},
		"failure is always printed": {
			results: []checkResult{
				{path: "a.yaml", elements: 2},
				{path: "b.yaml", err: errors.New("b.yaml: bad")},
			},
			wantErr:  true,
			expected: "FAIL b.yaml: bad\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := report(&buf, tt.results, tt.verbose)
			if (err != nil) != tt.wantErr {
				t.Errorf("report() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("report() output = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRunCheck_Failure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "valid.yaml"), validDoc)
	writeFile(t, filepath.Join(dir, "broken.yaml"), axesUndefinedDoc)

	var buf bytes.Buffer
	err := runCheck([]string{dir}, &buf)
	if err == nil {
		t.Fatal("runCheck() error = nil, want error")
	}
	if !strings.Contains(buf.String(), "broken.yaml") {
		t.Errorf("runCheck() output = %q, want it to name broken.yaml", buf.String())
	}
}

func TestRunCheck_NoDocuments(t *testing.T) {
	err := runCheck([]string{t.TempDir()}, io.Discard)
	if err == nil {
		t.Fatal("runCheck() error = nil, want error")
	}
}

func TestRunCheck_Examples(t *testing.T) {
	var buf bytes.Buffer
	if err := runCheck([]string{"-v", "../../examples/..."}, &buf); err != nil {
		t.Fatalf("runCheck() error = %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "checked 3 documents") {
		t.Errorf("runCheck() output = %q, want 3 documents checked", buf.String())
	}
}
