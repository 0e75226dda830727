package connector

import (
	"fmt"
	"strings"

	"github.com/bigmountainben/synthdb/pkg/models"
)

// Dialect selects quoting, placeholder, and column-type rules for a
// supported database engine.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
)

// DialectForDriver normalizes a user-supplied driver name to a dialect and
// the registered database/sql driver name.
func DialectForDriver(name string) (Dialect, string, error) {
	switch strings.ToLower(name) {
	case "", "sqlite", "sqlite3":
		return DialectSQLite, "sqlite3", nil
	case "mysql":
		return DialectMySQL, "mysql", nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, "pgx", nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q (supported: sqlite, mysql, postgres)", name)
	}
}

// QuoteIdent quotes a table or column identifier for the dialect.
func (d Dialect) QuoteIdent(name string) string {
	if d == DialectMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Placeholder renders the n-th (1-based) statement parameter.
func (d Dialect) Placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// ColumnType maps a dtype to the dialect's storage type. Date and datetime
// values are stored as their serialized text forms on every engine so the
// generated representation survives round trips unchanged.
func (d Dialect) ColumnType(dtype models.Dtype) string {
	switch d {
	case DialectMySQL:
		// varchar instead of text so unique indexes need no prefix length.
		switch dtype {
		case models.DtypeInt:
			return "bigint"
		case models.DtypeFloat:
			return "double"
		case models.DtypeBool:
			return "tinyint(1)"
		default:
			return "varchar(255)"
		}
	case DialectPostgres:
		switch dtype {
		case models.DtypeInt:
			return "bigint"
		case models.DtypeFloat:
			return "double precision"
		case models.DtypeBool:
			return "integer"
		default:
			return "text"
		}
	default:
		switch dtype {
		case models.DtypeInt, models.DtypeBool:
			return "integer"
		case models.DtypeFloat:
			return "real"
		default:
			return "text"
		}
	}
}
