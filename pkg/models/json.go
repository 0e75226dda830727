package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// UnmarshalJSON decodes a schema document, defaulting the seed when the
// field is absent so that round-tripping an old document still yields a
// deterministic schema.
func (s *TableSchema) UnmarshalJSON(data []byte) error {
	type plain TableSchema
	aux := struct {
		*plain
		Seed *int64 `json:"seed"`
	}{plain: (*plain)(s)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Seed != nil {
		s.Seed = *aux.Seed
	} else {
		s.Seed = DefaultSeed
	}
	return nil
}

// LoadSchema reads and validates a schema JSON document from disk.
func LoadSchema(path string) (*TableSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file: %w", err)
	}

	var schema TableSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing schema file %s: %w", path, err)
	}

	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &schema, nil
}

// SaveSchema validates and writes a schema as an indented JSON document.
func SaveSchema(schema *TableSchema, path string) error {
	if err := schema.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schema file: %w", err)
	}
	return nil
}
