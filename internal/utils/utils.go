package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bigmountainben/synthdb/internal/connector"
	"github.com/bigmountainben/synthdb/internal/generator"
	"github.com/bigmountainben/synthdb/pkg/models"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// SetupLogging configures the logging system
func SetupLogging(logLevel string) *logrus.Logger {
	logger := logrus.New()

	levelStr := logLevel
	if levelStr == "" {
		levelStr = os.Getenv("SYNTHDB_LOG_LEVEL")
		if levelStr == "" {
			levelStr = "info"
		}
	}

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stdout)

	return logger
}

// LoadEnvironmentVariables loads environment variables from a .env file if
// one exists. All SYNTHDB_* variables have working defaults, so a missing
// file is not an error.
func LoadEnvironmentVariables(envFile string, logger *logrus.Logger) {
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		sampleEnvFile := envFile + ".sample"
		if _, err := os.Stat(sampleEnvFile); err == nil {
			logger.Infof("No %s file found, but %s exists. Consider copying it to %s and updating it.",
				envFile, sampleEnvFile, envFile)
		}
		logger.Debugf("No %s file found, using existing environment variables", envFile)
		return
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warningf("Error loading %s file: %v", envFile, err)
		return
	}
	logger.Infof("Loaded environment variables from %s", envFile)

	if logger.Level == logrus.DebugLevel {
		for _, env := range os.Environ() {
			if strings.HasPrefix(env, "SYNTHDB_") {
				logger.Debugf("%s", env)
			}
		}
	}
}

// GetEnvInt gets an integer value from environment variable
func GetEnvInt(varName string, defaultValue int) int {
	value := os.Getenv(varName)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// PrintSummary prints a summary of a generation/insert run, including the
// best-effort fallback counters.
func PrintSummary(schema *models.TableSchema, generated, inserted int, stats generator.Stats) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Println("SYNTHETIC DATA SUMMARY")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Table: %s (seed %d, %d columns)\n", schema.TableName, schema.Seed, len(schema.Columns))
	fmt.Printf("Rows generated: %d\n", generated)
	fmt.Printf("Rows inserted: %d\n", inserted)
	fmt.Printf("Null cells injected: %d\n", stats.Nulls)

	if stats.PatternFallbacks > 0 {
		fmt.Printf("Pattern best-effort fallbacks: %d\n", stats.PatternFallbacks)
	}
	if stats.UniqueFallbacks > 0 {
		fmt.Printf("Uniqueness best-effort fallbacks: %d\n", stats.UniqueFallbacks)
	}

	fmt.Println(strings.Repeat("=", 50))
}

// VerifyRowCount checks that the target table holds the expected number of
// rows after an insert.
func VerifyRowCount(db *connector.DatabaseConnector, table string, expected int, logger *logrus.Logger) (bool, int64) {
	query := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s", db.Dialect.QuoteIdent(table))
	result, err := db.ExecuteQuery(query)
	if err != nil {
		logger.Warningf("Could not verify row count for table %s: %v", table, err)
		return false, 0
	}

	if len(result) == 0 {
		logger.Warningf("No result returned for count query on table %s", table)
		return false, 0
	}

	count, ok := result[0]["count"].(int64)
	if !ok {
		countStr := fmt.Sprintf("%v", result[0]["count"])
		countInt, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			logger.Warningf("Could not parse row count for table %s: %v", table, err)
			return false, 0
		}
		count = countInt
	}

	if count != int64(expected) {
		logger.Errorf("Table %s has %d rows, expected %d", table, count, expected)
		return false, count
	}

	logger.Infof("Verified table %s holds %d rows", table, count)
	return true, count
}
