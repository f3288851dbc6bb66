// Package schema declares the column-rename maps for every source export.
// Renames live in one embedded YAML document and are applied exactly once,
// at the load boundary, so downstream code only ever sees canonical names.
package schema

import (
	_ "embed"

	"github.com/goccy/go-yaml"
)

//go:embed columns.yaml
var columnsYAML []byte

var maps map[string]map[string]string

func init() {
	if err := yaml.Unmarshal(columnsYAML, &maps); err != nil {
		// The file is embedded and versioned with the code; failing to
		// parse it is a build defect, not a runtime condition.
		panic("schema: invalid columns.yaml: " + err.Error())
	}
}

// Columns returns the rename map for the named source export. Unknown
// names return an empty map, leaving headers untouched.
func Columns(source string) map[string]string {
	m, ok := maps[source]
	if !ok {
		return map[string]string{}
	}
	return m
}
