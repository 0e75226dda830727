package models

import (
	"fmt"
	"regexp"
)

// Validate checks the schema's structural invariants and returns a
// *SchemaError for the first violation found. It is pure: no I/O, no side
// effects. Callers must re-validate after any mutation; there is no partial
// result. The non-int primary key rule is deliberately not checked here, it
// surfaces lazily at generation time.
func (s *TableSchema) Validate() error {
	if s.TableName == "" {
		return structural("", "table_name must not be empty")
	}

	if len(s.Columns) == 0 {
		return structural("", "schema must declare at least one column")
	}

	seen := make(map[string]struct{}, len(s.Columns))
	for _, col := range s.Columns {
		if col.Name == "" {
			return structural("", "column name must not be empty")
		}
		if _, dup := seen[col.Name]; dup {
			return structural(col.Name, "duplicate column name")
		}
		seen[col.Name] = struct{}{}
	}

	primaryKeys := 0
	for _, col := range s.Columns {
		if col.PrimaryKey {
			primaryKeys++
		}
	}
	if primaryKeys > 1 {
		return structural("", fmt.Sprintf("at most one primary key column is allowed, found %d", primaryKeys))
	}

	for _, col := range s.Columns {
		if col.Choices != nil && len(col.Choices) == 0 {
			return structural(col.Name, "choices must not be empty when present")
		}
	}

	for _, col := range s.Columns {
		if col.MinValue != nil && col.MaxValue != nil && *col.MinValue > *col.MaxValue {
			return structural(col.Name, fmt.Sprintf("min_value %v exceeds max_value %v", *col.MinValue, *col.MaxValue))
		}
	}

	for _, col := range s.Columns {
		if !col.Dtype.Valid() {
			return structural(col.Name, fmt.Sprintf("unknown dtype %q", col.Dtype))
		}
		if col.Pattern != "" {
			if col.Dtype != DtypeText {
				return structural(col.Name, "pattern is only valid for text columns")
			}
			if _, err := regexp.Compile(col.Pattern); err != nil {
				return structural(col.Name, fmt.Sprintf("invalid pattern: %v", err))
			}
		}
		if col.Faker != "" {
			if col.Dtype != DtypeText {
				return structural(col.Name, "faker hint is only valid for text columns")
			}
			if col.Pattern != "" {
				return structural(col.Name, "faker hint and pattern are mutually exclusive")
			}
		}
	}

	return nil
}

func structural(column, msg string) error {
	return &SchemaError{Kind: SchemaErrorStructural, Column: column, Msg: msg}
}
