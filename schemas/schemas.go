// Package schemas embeds the JSON schemas used to validate user-authored
// YAML files.
package schemas

import _ "embed"

// ConfigSchemaJSON is the schema for .agentplot.yaml.
//
//go:embed config.schema.json
var ConfigSchemaJSON string
