package transfer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

const recordSchemaJSON = `{
	"type": "object",
	"required": ["id", "name"],
	"properties": {
		"id": {"type": "integer", "minimum": 1},
		"name": {"type": "string", "pattern": "\\S"}
	}
}`

const jobSchemaJSON = `{
	"type": "object",
	"required": ["id", "site", "date", "team", "vehicles"],
	"properties": {
		"id": {"type": "integer", "minimum": 1},
		"site": {"type": "string", "pattern": "\\S"},
		"description": {"type": "string"},
		"date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"},
		"team": {"type": "array", "items": {"type": "integer", "minimum": 1}},
		"vehicles": {"type": "array", "items": {"type": "integer", "minimum": 1}}
	}
}`

const vaultSchemaJSON = `{
	"type": "object",
	"required": ["version", "workers", "vehicles", "sites", "jobs"],
	"properties": {
		"version": {"type": "integer", "minimum": 1},
		"last_id": {"type": "integer", "minimum": 0},
		"workers": {"type": "array", "items": ` + recordSchemaJSON + `},
		"vehicles": {"type": "array", "items": ` + recordSchemaJSON + `},
		"sites": {"type": "array", "items": ` + recordSchemaJSON + `},
		"jobs": {"type": "array", "items": ` + jobSchemaJSON + `}
	}
}`

var (
	recordSchema = mustSchema(recordSchemaJSON)
	jobSchema    = mustSchema(jobSchemaJSON)
	vaultSchema  = mustSchema(vaultSchemaJSON)
)

func mustSchema(raw string) *jsonschema.Schema {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(raw), rs); err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return rs
}

// violation is the first schema failure, reduced to the top-level field it concerns.
type violation struct {
	Field   string
	Message string
}

func validate(ctx context.Context, schema *jsonschema.Schema, doc []byte) ([]violation, error) {
	verrs, err := schema.ValidateBytes(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("schema validate: %w", err)
	}
	out := make([]violation, 0, len(verrs))
	for _, v := range verrs {
		out = append(out, violation{Field: topField(v.PropertyPath), Message: v.Message})
	}
	return out, nil
}

func topField(path string) string {
	path = strings.TrimPrefix(path, "/")
	if i := strings.Index(path, "/"); i >= 0 {
		path = path[:i]
	}
	return path
}
