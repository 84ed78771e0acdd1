// Package schemafile loads goflat schemas declared in YAML or JSON files.
//
//	version: "1"
//	name: person
//	fields:
//	  - {name: f_name, width: 10}
//	  - {name: l_name, width: 10, aggressive: true}
//	  - {name: age, width: 4, filters: [int], formatters: [one_decimal]}
//	  - {pad: true, width: 3}
//	layouts:
//	  - name: trailer
//	    rows: 1
//	    fields: [{name: count, width: 6, filters: [int]}]
//
// Filters and formatters are names resolved against the schema Registry
// (see codec.RegisterBuiltins).
package schemafile

// File is the root of a schema file.
type File struct {
	Version string   `yaml:"version" json:"version"`
	Name    string   `yaml:"name,omitempty" json:"name,omitempty"`
	Raw     bool     `yaml:"raw,omitempty" json:"raw,omitempty"`
	Fields  []Field  `yaml:"fields" json:"fields"`
	Layouts []Layout `yaml:"layouts,omitempty" json:"layouts,omitempty"`
}

// Field declares one field. A padding field may omit its name to have one
// generated.
type Field struct {
	Name       string   `yaml:"name,omitempty" json:"name,omitempty"`
	Width      int      `yaml:"width,omitempty" json:"width,omitempty"`
	Pad        bool     `yaml:"pad,omitempty" json:"pad,omitempty"`
	Aggressive bool     `yaml:"aggressive,omitempty" json:"aggressive,omitempty"`
	Filters    []string `yaml:"filters,omitempty" json:"filters,omitempty"`
	Formatters []string `yaml:"formatters,omitempty" json:"formatters,omitempty"`
}

// Layout declares a named sub-record shape.
type Layout struct {
	Name   string  `yaml:"name" json:"name"`
	Rows   int     `yaml:"rows,omitempty" json:"rows,omitempty"`
	Fields []Field `yaml:"fields" json:"fields"`
}

// Format selects the file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// CurrentVersion is assumed when a file omits version.
const CurrentVersion = "1"
