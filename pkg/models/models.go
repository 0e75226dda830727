package models

// Dtype is the declared type of a generated column. The set is closed.
type Dtype string

const (
	DtypeInt      Dtype = "int"
	DtypeFloat    Dtype = "float"
	DtypeText     Dtype = "text"
	DtypeBool     Dtype = "bool"
	DtypeDate     Dtype = "date"
	DtypeDatetime Dtype = "datetime"
)

// Valid reports whether d is one of the supported dtypes.
func (d Dtype) Valid() bool {
	switch d {
	case DtypeInt, DtypeFloat, DtypeText, DtypeBool, DtypeDate, DtypeDatetime:
		return true
	}
	return false
}

// ColumnSpec describes one column's generation and storage contract
type ColumnSpec struct {
	Name       string `json:"name"`
	Dtype      Dtype  `json:"dtype"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key"`
	Unique     bool   `json:"unique"`

	// MinValue and MaxValue are inclusive bounds for int and float generation.
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`

	// Choices, when present, overrides dtype-specific generation: the value is
	// drawn uniformly from this list regardless of the declared dtype.
	Choices []any `json:"choices,omitempty"`

	// Pattern is a regular expression generated text must fully match.
	// Text columns only.
	Pattern string `json:"pattern,omitempty"`

	// Faker names a semantic generator (email, first_name, phone, ...) that
	// replaces dtype-specific text synthesis. Text columns only.
	Faker string `json:"faker,omitempty"`
}

// DefaultSeed is used when a schema document carries no seed field.
const DefaultSeed int64 = 12345

// TableSchema describes a table: its name, ordered columns, and the seed
// that makes generation deterministic. It is an immutable value with no
// identity beyond structural equality.
type TableSchema struct {
	TableName string       `json:"table_name"`
	Columns   []ColumnSpec `json:"columns"`
	Seed      int64        `json:"seed"`
}

// Row maps column names to generated values. A nil value means SQL NULL.
type Row map[string]any
