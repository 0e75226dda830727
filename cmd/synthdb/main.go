package main

import (
	"fmt"
	"os"

	"github.com/bigmountainben/synthdb/internal/connector"
	"github.com/bigmountainben/synthdb/internal/generator"
	"github.com/bigmountainben/synthdb/internal/populator"
	"github.com/bigmountainben/synthdb/internal/utils"
	"github.com/bigmountainben/synthdb/pkg/models"
	"github.com/spf13/cobra"
)

func main() {
	var (
		schemaPath   string
		records      int
		driver       string
		dsn          string
		chunkSize    int
		seed         int64
		envFile      string
		logLevel     string
		validateOnly bool
		dryRun       bool
		verify       bool
	)

	rootCmd := &cobra.Command{
		Use:   "synthdb",
		Short: "Generate deterministic synthetic rows from a table schema and load them into a database",
		Long: `SynthDB

Generates constrained-random tabular data from a declarative column schema
(JSON) and writes it into SQLite, MySQL, or PostgreSQL in batched
transactional inserts. The same schema and seed always produce the same
rows.`,
		Run: func(cmd *cobra.Command, args []string) {
			logger := utils.SetupLogging(logLevel)
			utils.LoadEnvironmentVariables(envFile, logger)

			schema, err := models.LoadSchema(schemaPath)
			if err != nil {
				logger.Errorf("Failed to load schema: %v", err)
				os.Exit(1)
			}
			if cmd.Flags().Changed("seed") {
				schema.Seed = seed
			}

			if validateOnly {
				logger.Infof("Schema %s is valid (%d columns)", schema.TableName, len(schema.Columns))
				return
			}

			gen := generator.New(schema, logger)
			logger.Infof("Generating %d rows for table %s with seed %d", records, schema.TableName, schema.Seed)
			rows, err := gen.Rows(records)
			if err != nil {
				logger.Errorf("Failed to generate rows: %v", err)
				os.Exit(1)
			}
			stats := gen.Stats()

			if dryRun {
				logger.Info("Dry-run mode, skipping database writes")
				utils.PrintSummary(schema, len(rows), 0, stats)
				return
			}

			if chunkSize == 0 {
				chunkSize = utils.GetEnvInt("SYNTHDB_CHUNK_SIZE", 0)
			}

			db, err := connector.NewDatabaseConnector(driver, dsn, logger)
			if err != nil {
				logger.Errorf("Invalid database configuration: %v", err)
				os.Exit(1)
			}
			if err := db.Connect(); err != nil {
				logger.Errorf("Failed to connect to database: %v", err)
				os.Exit(1)
			}
			defer db.Disconnect()

			writer := populator.NewWriter(db, logger)
			if err := writer.CreateTable(schema); err != nil {
				logger.Errorf("Failed to create table: %v", err)
				os.Exit(1)
			}

			inserted, err := writer.InsertRows(schema, rows, chunkSize)
			if err != nil {
				logger.Errorf("Failed to insert rows: %v", err)
				os.Exit(1)
			}

			utils.PrintSummary(schema, len(rows), inserted, stats)

			if verify {
				if ok, _ := utils.VerifyRowCount(db, schema.TableName, inserted, logger); !ok {
					os.Exit(1)
				}
			}
		},
	}

	rootCmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "Path to the schema JSON file (required)")
	rootCmd.Flags().IntVarP(&records, "records", "r", 10, "Number of rows to generate")
	rootCmd.Flags().StringVarP(&driver, "driver", "D", "", "Database driver: sqlite, mysql, or postgres (default: sqlite)")
	rootCmd.Flags().StringVarP(&dsn, "dsn", "d", "", "Database DSN; a filesystem path for sqlite (default: synthdb.db)")
	rootCmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", 0, "Rows per insert batch (default: 5000)")
	rootCmd.Flags().Int64VarP(&seed, "seed", "S", 0, "Override the schema's seed")
	rootCmd.Flags().StringVarP(&envFile, "env-file", "e", ".env", "Path to .env file")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&validateOnly, "validate-only", "a", false, "Only validate the schema without generating data")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate rows without writing to the database")
	rootCmd.Flags().BoolVarP(&verify, "verify", "v", false, "Verify the table row count after inserting")
	rootCmd.MarkFlagRequired("schema")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
