// Package document loads declarative grid descriptions from YAML, JSONC
// and HCL files and builds them into grid element trees.
//
// The three formats share one schema. In YAML:
//
//	name: main
//	column_definitions: "auto,*"
//	auto_grid: true
//	children:
//	  - text: Name
//	  - text: Value
//
// In HCL, children are nested element blocks:
//
//	element {
//	  column_definitions = "auto,*"
//	  auto_grid          = true
//	  element { text = "Name" }
//	  element { text = "Value" }
//	}
package document
