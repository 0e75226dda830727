package populator

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/bigmountainben/synthdb/internal/connector"
	"github.com/bigmountainben/synthdb/pkg/models"
	"github.com/sirupsen/logrus"
)

// DefaultChunkSize is the batch size used when the caller passes a
// non-positive chunk size. Batching bounds statement size and host memory;
// it has no bearing on commit semantics.
const DefaultChunkSize = 5000

// Writer lands generated rows durably: it creates the backing table if
// absent and inserts rows in bounded-size batches inside one transaction.
type Writer struct {
	DB     *connector.DatabaseConnector
	Logger *logrus.Logger
}

// NewWriter creates a persistence writer over an open connection
func NewWriter(db *connector.DatabaseConnector, logger *logrus.Logger) *Writer {
	return &Writer{
		DB:     db,
		Logger: logger,
	}
}

// CreateTable creates the schema's backing table if it does not exist.
// Idempotent; it never alters an existing table's shape.
func (w *Writer) CreateTable(schema *models.TableSchema) error {
	if err := schema.Validate(); err != nil {
		return err
	}

	ddl := w.buildCreateTable(schema)
	w.Logger.Debugf("Ensuring table %s exists", schema.TableName)

	if _, err := w.DB.ExecuteStatement(ddl); err != nil {
		return &models.StorageError{Op: "create table", Err: err}
	}
	return nil
}

func (w *Writer) buildCreateTable(schema *models.TableSchema) string {
	d := w.DB.Dialect

	defs := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		def := d.QuoteIdent(col.Name) + " " + d.ColumnType(col.Dtype)
		if !col.Nullable {
			def += " NOT NULL"
		}
		if col.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if col.Unique && !col.PrimaryKey {
			def += " UNIQUE"
		}
		defs = append(defs, def)
	}

	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		d.QuoteIdent(schema.TableName), strings.Join(defs, ", "))
}

// InsertRows writes rows in chunkSize batches inside a single transaction
// spanning the whole call: one begin, one multi-row INSERT per batch, one
// commit. A failure anywhere rolls the whole call back, leaving zero rows
// committed. Returns the number of rows written, which equals len(rows) on
// success.
func (w *Writer) InsertRows(schema *models.TableSchema, rows []models.Row, chunkSize int) (int, error) {
	if err := schema.Validate(); err != nil {
		return 0, err
	}

	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := w.DB.DB.Begin()
	if err != nil {
		w.Logger.Errorf("Error starting transaction: %v", err)
		return 0, &models.StorageError{Op: "begin transaction", Err: err}
	}

	// Roll back on every non-commit exit path so the connection is never
	// left holding an open transaction.
	committed := false
	defer func() {
		if !committed {
			tx.Rollback()
		}
	}()

	inserted := 0
	for start := 0; start < len(rows); start += chunkSize {
		end := min(start+chunkSize, len(rows))
		chunk := rows[start:end]

		if err := w.insertChunk(tx, schema, chunk); err != nil {
			w.Logger.Errorf("Error inserting batch into table %s: %v", schema.TableName, err)
			return 0, err
		}

		inserted += len(chunk)
		w.Logger.Debugf("Flushed batch of %d rows into %s", len(chunk), schema.TableName)
	}

	if err := tx.Commit(); err != nil {
		w.Logger.Errorf("Error committing transaction: %v", err)
		return 0, &models.StorageError{Op: "commit", Err: err}
	}
	committed = true

	w.Logger.Infof("Inserted %d rows into table %s", inserted, schema.TableName)
	return inserted, nil
}

// insertChunk flushes one batch as a single multi-row INSERT.
func (w *Writer) insertChunk(tx *sql.Tx, schema *models.TableSchema, chunk []models.Row) error {
	d := w.DB.Dialect

	quoted := make([]string, 0, len(schema.Columns))
	for _, col := range schema.Columns {
		quoted = append(quoted, d.QuoteIdent(col.Name))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (%s) VALUES ",
		d.QuoteIdent(schema.TableName), strings.Join(quoted, ", "))

	args := make([]any, 0, len(chunk)*len(schema.Columns))
	placeholder := 0
	for ri, row := range chunk {
		if ri > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for ci, col := range schema.Columns {
			if ci > 0 {
				sb.WriteString(", ")
			}
			placeholder++
			sb.WriteString(d.Placeholder(placeholder))
			args = append(args, row[col.Name])
		}
		sb.WriteByte(')')
	}

	if _, err := tx.Exec(sb.String(), args...); err != nil {
		return &models.StorageError{Op: "insert", Err: err}
	}
	return nil
}
