package connector

import (
	"database/sql"
	"os"

	"github.com/bigmountainben/synthdb/pkg/models"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// DatabaseConnector handles database connection and query execution
type DatabaseConnector struct {
	Driver  string // registered database/sql driver name
	Dialect Dialect
	DSN     string // for SQLite this is a filesystem path
	DB      *sql.DB
	Logger  *logrus.Logger
}

// NewDatabaseConnector creates a connector for the given driver and DSN,
// falling back to SYNTHDB_DRIVER and SYNTHDB_DSN when they are empty.
func NewDatabaseConnector(driver, dsn string, logger *logrus.Logger) (*DatabaseConnector, error) {
	if driver == "" {
		driver = getEnvOrDefault("SYNTHDB_DRIVER", "sqlite")
	}
	if dsn == "" {
		dsn = getEnvOrDefault("SYNTHDB_DSN", "synthdb.db")
	}

	dialect, driverName, err := DialectForDriver(driver)
	if err != nil {
		return nil, err
	}

	return &DatabaseConnector{
		Driver:  driverName,
		Dialect: dialect,
		DSN:     dsn,
		Logger:  logger,
	}, nil
}

// Connect opens and pings the database connection
func (dc *DatabaseConnector) Connect() error {
	db, err := sql.Open(dc.Driver, dc.DSN)
	if err != nil {
		dc.Logger.Errorf("Error opening %s database: %v", dc.Dialect, err)
		return &models.StorageError{Op: "connect", Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		dc.Logger.Errorf("Error pinging %s database: %v", dc.Dialect, err)
		return &models.StorageError{Op: "connect", Err: err}
	}

	dc.DB = db

	if dc.Dialect == DialectSQLite {
		if err := dc.applyBulkLoadPragmas(); err != nil {
			db.Close()
			dc.DB = nil
			return err
		}
	}

	dc.Logger.Infof("Connected to %s database: %s", dc.Dialect, dc.DSN)
	return nil
}

// applyBulkLoadPragmas trades durability for bulk-load throughput:
// write-ahead logging plus synchronous=NORMAL skips the fsync per commit.
// A crash can lose the most recent transactions but never corrupts
// committed data. Callers that need full crash-safety should not reuse
// this connection for other workloads.
func (dc *DatabaseConnector) applyBulkLoadPragmas() error {
	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA synchronous=NORMAL"} {
		if _, err := dc.DB.Exec(pragma); err != nil {
			dc.Logger.Errorf("Error applying %q: %v", pragma, err)
			return &models.StorageError{Op: "pragma", Err: err}
		}
	}
	return nil
}

// Disconnect closes the database connection
func (dc *DatabaseConnector) Disconnect() {
	if dc.DB != nil {
		if err := dc.DB.Close(); err != nil {
			dc.Logger.Errorf("Error closing database connection: %v", err)
		} else {
			dc.Logger.Infof("%s connection closed", dc.Dialect)
		}
	}
}

// ExecuteQuery executes a SQL query and returns the results
func (dc *DatabaseConnector) ExecuteQuery(query string, params ...interface{}) ([]map[string]interface{}, error) {
	rows, err := dc.DB.Query(query, params...)
	if err != nil {
		dc.Logger.Errorf("Error executing query: %v", err)
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		dc.Logger.Errorf("Error getting columns: %v", err)
		return nil, err
	}

	var results []map[string]interface{}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range columns {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			dc.Logger.Errorf("Error scanning row: %v", err)
			return nil, err
		}

		row := make(map[string]interface{})
		for i, col := range columns {
			val := values[i]
			// Convert []byte to string for text fields
			if b, ok := val.([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = val
			}
		}

		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		dc.Logger.Errorf("Error iterating rows: %v", err)
		return nil, err
	}

	return results, nil
}

// ExecuteStatement executes a SQL statement and returns the number of affected rows
func (dc *DatabaseConnector) ExecuteStatement(query string, params ...interface{}) (int64, error) {
	result, err := dc.DB.Exec(query, params...)
	if err != nil {
		dc.Logger.Errorf("Error executing statement: %v", err)
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		// Not every driver reports affected rows for DDL.
		return 0, nil
	}
	return affected, nil
}

// getEnvOrDefault gets an environment variable or returns a default value
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
