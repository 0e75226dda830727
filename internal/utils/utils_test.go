package utils

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetupLogging(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	}

	for input, want := range cases {
		logger := SetupLogging(input)
		if logger.Level != want {
			t.Errorf("Expected log level %s for input %q, got %s", want, input, logger.Level)
		}
	}

	// Invalid input falls back to info.
	if logger := SetupLogging("invalid"); logger.Level != logrus.InfoLevel {
		t.Errorf("Expected fallback to info for invalid input, got %s", logger.Level)
	}
}

func TestSetupLoggingFromEnvironment(t *testing.T) {
	os.Setenv("SYNTHDB_LOG_LEVEL", "debug")
	defer os.Unsetenv("SYNTHDB_LOG_LEVEL")

	if logger := SetupLogging(""); logger.Level != logrus.DebugLevel {
		t.Errorf("Expected log level from SYNTHDB_LOG_LEVEL, got %s", logger.Level)
	}
}

func TestGetEnvInt(t *testing.T) {
	os.Setenv("SYNTHDB_TEST_INT", "42")
	if value := GetEnvInt("SYNTHDB_TEST_INT", 10); value != 42 {
		t.Errorf("Expected value 42, got %d", value)
	}

	os.Unsetenv("SYNTHDB_TEST_INT")
	if value := GetEnvInt("SYNTHDB_TEST_INT", 10); value != 10 {
		t.Errorf("Expected default value 10, got %d", value)
	}

	os.Setenv("SYNTHDB_TEST_INT", "not-an-int")
	defer os.Unsetenv("SYNTHDB_TEST_INT")
	if value := GetEnvInt("SYNTHDB_TEST_INT", 10); value != 10 {
		t.Errorf("Expected default value 10 for invalid input, got %d", value)
	}
}

func TestLoadEnvironmentVariablesMissingFileIsFine(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.FatalLevel)

	// Should not panic or mutate anything when the file is absent.
	LoadEnvironmentVariables("definitely-missing.env", logger)
}
