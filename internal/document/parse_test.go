package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const yamlDoc = `
name: form
column_definitions: "auto,*"
auto_grid: true
column_gap: 1
children:
  - text: Name
  - text: Value
  - text: Footer
    row: 2
    column_span: 2
`

const jsoncDoc = `{
  // a labelled form
  "name": "form",
  "column_definitions": "auto,*",
  "auto_grid": true,
  "column_gap": 1,
  "children": [
    {"text": "Name"},
    {"text": "Value"},
    {"text": "Footer", "row": 2, "column_span": 2},
  ],
}`

const hclDoc = `
element {
  name               = "form"
  column_definitions = "auto,*"
  auto_grid          = true
  column_gap         = 1

  element { text = "Name" }
  element { text = "Value" }
  element {
    text        = "Footer"
    row         = 2
    column_span = 2
  }
}
`

func strPtr(s string) *string { return &s }

func formNode() *Node {
	return &Node{
		Name:              "form",
		ColumnDefinitions: strPtr("auto,*"),
		AutoGrid:          true,
		ColumnGap:         1,
		Children: []*Node{
			{Text: "Name"},
			{Text: "Value"},
			{Text: "Footer", Row: 2, ColumnSpan: 2},
		},
	}
}

func TestParse_Formats(t *testing.T) {
	type tc struct {
		data   string
		format Format
	}

	tests := map[string]tc{
		"yaml":  {data: yamlDoc, format: FormatYAML},
		"jsonc": {data: jsoncDoc, format: FormatJSON},
		"hcl":   {data: hclDoc, format: FormatHCL},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format, "form."+name)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(formNode(), got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	type tc struct {
		data   string
		format Format
	}

	tests := map[string]tc{
		"yaml":  {data: "colums: 3\n", format: FormatYAML},
		"jsonc": {data: `{"colums": 3}`, format: FormatJSON},
		"hcl":   {data: "element {\n  colums = 3\n}\n", format: FormatHCL},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data), tt.format, "bad."+name); err == nil {
				t.Error("Parse() error = nil, want unknown field error")
			}
		})
	}
}

func TestParseHCL_MissingRoot(t *testing.T) {
	_, err := ParseHCL([]byte("\n"), "empty.hcl")
	if err == nil || !strings.Contains(err.Error(), "missing top-level element") {
		t.Errorf("ParseHCL() error = %v, want missing element error", err)
	}
}

func TestParseYAML_EmptyDefinitionStringIsKept(t *testing.T) {
	got, err := ParseYAML([]byte("row_definitions: \"\"\n"))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if got.RowDefinitions == nil || *got.RowDefinitions != "" {
		t.Errorf("RowDefinitions = %v, want pointer to empty string", got.RowDefinitions)
	}
	if got.ColumnDefinitions != nil {
		t.Errorf("ColumnDefinitions = %v, want nil", *got.ColumnDefinitions)
	}
}

func TestFormatFromPath(t *testing.T) {
	type tc struct {
		path     string
		expected Format
		wantErr  bool
	}

	tests := map[string]tc{
		"yaml":           {path: "a/b.yaml", expected: FormatYAML},
		"yml upper case": {path: "b.YML", expected: FormatYAML},
		"json":           {path: "b.json", expected: FormatJSON},
		"jsonc":          {path: "b.jsonc", expected: FormatJSON},
		"hcl":            {path: "b.hcl", expected: FormatHCL},
		"unknown":        {path: "b.toml", wantErr: true},
		"no extension":   {path: "Makefile", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("FormatFromPath(%q) error = %v, want ErrUnknownFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatFromPath(%q) error = %v", tt.path, err)
			}
			if got != tt.expected {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "form.hcl")
	if err := os.WriteFile(path, []byte(hclDoc), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if diff := cmp.Diff(formNode(), got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, want os.ErrNotExist", err)
	}
}
