package connector

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel) // Suppress log output during tests
	return logger
}

func TestNewDatabaseConnectorEnvDefaults(t *testing.T) {
	os.Setenv("SYNTHDB_DRIVER", "postgres")
	os.Setenv("SYNTHDB_DSN", "postgres://localhost/test")
	defer os.Unsetenv("SYNTHDB_DRIVER")
	defer os.Unsetenv("SYNTHDB_DSN")

	dc, err := NewDatabaseConnector("", "", testLogger())
	if err != nil {
		t.Fatalf("Expected connector to be created, got %v", err)
	}
	if dc.Driver != "pgx" {
		t.Errorf("Expected driver to be 'pgx', got %q", dc.Driver)
	}
	if dc.Dialect != DialectPostgres {
		t.Errorf("Expected postgres dialect, got %q", dc.Dialect)
	}
	if dc.DSN != "postgres://localhost/test" {
		t.Errorf("Expected DSN from environment, got %q", dc.DSN)
	}
}

func TestNewDatabaseConnectorExplicitParams(t *testing.T) {
	os.Setenv("SYNTHDB_DRIVER", "mysql")
	defer os.Unsetenv("SYNTHDB_DRIVER")

	dc, err := NewDatabaseConnector("sqlite", "out.db", testLogger())
	if err != nil {
		t.Fatalf("Expected connector to be created, got %v", err)
	}
	if dc.Driver != "sqlite3" {
		t.Errorf("Expected explicit driver to win, got %q", dc.Driver)
	}
	if dc.DSN != "out.db" {
		t.Errorf("Expected explicit DSN to win, got %q", dc.DSN)
	}
}

func TestNewDatabaseConnectorDefaultsToSQLite(t *testing.T) {
	os.Unsetenv("SYNTHDB_DRIVER")
	os.Unsetenv("SYNTHDB_DSN")

	dc, err := NewDatabaseConnector("", "", testLogger())
	if err != nil {
		t.Fatalf("Expected connector to be created, got %v", err)
	}
	if dc.Dialect != DialectSQLite {
		t.Errorf("Expected sqlite dialect by default, got %q", dc.Dialect)
	}
	if dc.DSN != "synthdb.db" {
		t.Errorf("Expected default DSN 'synthdb.db', got %q", dc.DSN)
	}
}

func TestNewDatabaseConnectorUnsupportedDriver(t *testing.T) {
	if _, err := NewDatabaseConnector("oracle", "x", testLogger()); err == nil {
		t.Error("Expected an error for an unsupported driver")
	}
}
