package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	grid "github.com/grindlemire/go-grid"
)

// Format identifies a document syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// ErrUnknownFormat is returned for file extensions no parser handles.
var ErrUnknownFormat = errors.New("unknown document format")

// FormatFromPath picks the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json", ".jsonc":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// Parse decodes data in the given format. filename is used in HCL
// diagnostics only. Unknown fields are rejected in every format.
func Parse(data []byte, format Format, filename string) (*Node, error) {
	switch format {
	case FormatYAML:
		return ParseYAML(data)
	case FormatJSON:
		return ParseJSONC(data)
	case FormatHCL:
		return ParseHCL(data, filename)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

// ParseYAML decodes a YAML document whose top level is the root element.
func ParseYAML(data []byte) (*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root Node
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return &root, nil
}

// ParseJSONC strips comments and trailing commas from data, then decodes
// the root element from the resulting JSON.
func ParseJSONC(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()

	var root Node
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("parsing json: %w", err)
	}
	return &root, nil
}

// hclFile is the top-level structure of an HCL grid document.
type hclFile struct {
	Root *hclNode `hcl:"element,block"`
}

// hclNode mirrors Node for gohcl decoding.
type hclNode struct {
	Name              string     `hcl:"name,optional"`
	Text              string     `hcl:"text,optional"`
	Row               int        `hcl:"row,optional"`
	Column            int        `hcl:"column,optional"`
	RowSpan           int        `hcl:"row_span,optional"`
	ColumnSpan        int        `hcl:"column_span,optional"`
	RowDefinitions    *string    `hcl:"row_definitions,optional"`
	ColumnDefinitions *string    `hcl:"column_definitions,optional"`
	AutoGrid          bool       `hcl:"auto_grid,optional"`
	Width             int        `hcl:"width,optional"`
	Height            int        `hcl:"height,optional"`
	Padding           int        `hcl:"padding,optional"`
	RowGap            int        `hcl:"row_gap,optional"`
	ColumnGap         int        `hcl:"column_gap,optional"`
	Children          []*hclNode `hcl:"element,block"`
}

// ParseHCL decodes an HCL document holding exactly one top-level
// element block.
func ParseHCL(data []byte, filename string) (*Node, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing hcl: %w", diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding hcl: %w", diags)
	}
	if parsed.Root == nil {
		return nil, errors.New("decoding hcl: missing top-level element block")
	}

	return parsed.Root.node(), nil
}

func (h *hclNode) node() *Node {
	n := &Node{
		Name:              h.Name,
		Text:              h.Text,
		Row:               h.Row,
		Column:            h.Column,
		RowSpan:           h.RowSpan,
		ColumnSpan:        h.ColumnSpan,
		RowDefinitions:    h.RowDefinitions,
		ColumnDefinitions: h.ColumnDefinitions,
		AutoGrid:          h.AutoGrid,
		Width:             h.Width,
		Height:            h.Height,
		Padding:           h.Padding,
		RowGap:            h.RowGap,
		ColumnGap:         h.ColumnGap,
	}
	for _, child := range h.Children {
		n.Children = append(n.Children, child.node())
	}
	return n
}

// ReadFile reads and parses the document at path, choosing the format
// from its extension.
func ReadFile(path string) (*Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	root, err := Parse(data, format, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Load reads, validates and builds the document at path.
func Load(path string) (*grid.Element, error) {
	root, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(root); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Build(root), nil
}
