package mcpconfig

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
)

// Generated by cmd/pretorin-genschema. Do not edit by hand.
//
//go:embed mcp.schema.json
var schemaText string

// validateSchema checks a servers file against the embedded json schema.
func validateSchema(data []byte) error {
	var schema jsonschema.Schema
	err := json.Unmarshal([]byte(schemaText), &schema)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("not valid json")
	}
	validationErrs, err := schema.ValidateBytes(context.Background(), data)
	if err != nil {
		return fmt.Errorf("unexpected error running schema.ValidateBytes: %v", err)
	}
	if len(validationErrs) == 0 {
		return nil
	}
	sort.Slice(validationErrs, func(i, j int) bool {
		return validationErrs[i].Error() < validationErrs[j].Error()
	})
	msgs := make([]string, len(validationErrs))
	for i, validationErr := range validationErrs {
		msgs[i] = validationErr.Error()
	}
	return fmt.Errorf("invalid servers file:\n%s", strings.Join(msgs, "\n"))
}
