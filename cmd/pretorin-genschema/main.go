// Command pretorin-genschema prints the json schema for mcp servers
// files. The output is committed as internal/mcpconfig/mcp.schema.json.
package main

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/pretorin/pretorin/internal/mcpconfig"
)

func main() {
	r := &jsonschema.Reflector{}
	r.ExpandedStruct = true
	schema := r.Reflect(&mcpconfig.FileSpec{})
	schema.ID = "https://pretorin.io/mcp.schema.json"

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(schema)
	if err != nil {
		panic(err)
	}
}
