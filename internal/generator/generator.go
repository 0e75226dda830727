package generator

import (
	"math/rand"
	"regexp"

	"github.com/bigmountainben/synthdb/pkg/models"
	"github.com/jaswdr/faker"
	"github.com/sirupsen/logrus"
)

const (
	// nullProbability is the chance a nullable cell becomes NULL before any
	// other rule is applied.
	nullProbability = 0.05

	// maxAttempts caps rejection sampling for pattern matching and
	// uniqueness. After the cap the last candidate is accepted anyway; see
	// Stats for the fallback counters.
	maxAttempts = 50
)

// Stats counts diagnostic events from the most recent Rows call. Fallbacks
// are the best-effort acceptances after maxAttempts failed retries; they are
// reported here instead of failing the run.
type Stats struct {
	Nulls            int
	PatternFallbacks int
	UniqueFallbacks  int
}

// RowGenerator produces constrained-random rows for a single schema
type RowGenerator struct {
	Schema *models.TableSchema
	Logger *logrus.Logger

	stats Stats
}

// New creates a row generator for the given schema
func New(schema *models.TableSchema, logger *logrus.Logger) *RowGenerator {
	return &RowGenerator{
		Schema: schema,
		Logger: logger,
	}
}

// Stats returns the diagnostic counters from the most recent Rows call.
func (g *RowGenerator) Stats() Stats {
	return g.stats
}

// Rows generates exactly n rows in schema column order. One pseudo-random
// source is seeded from the schema's seed at the start of the call and
// consumed sequentially, column by column in row-major order, so the output
// is bit-for-bit reproducible for the same schema and n. Each call owns its
// own source and uniqueness sets; nothing is shared between calls.
func (g *RowGenerator) Rows(n int) ([]models.Row, error) {
	if n <= 0 {
		return nil, &models.InvalidArgumentError{Msg: "row count must be positive"}
	}

	if err := g.Schema.Validate(); err != nil {
		return nil, err
	}

	patterns, err := compilePatterns(g.Schema)
	if err != nil {
		return nil, err
	}

	// The faker wraps the same source as the generator's own draws, keeping
	// the whole call on a single sequential random sequence.
	src := rand.NewSource(g.Schema.Seed)
	rng := rand.New(src)
	fkr := faker.NewWithSeed(src)

	sources := g.newSources(patterns)
	g.stats = Stats{}

	used := make(map[string]map[any]struct{})
	for _, col := range g.Schema.Columns {
		if col.Unique && !col.PrimaryKey {
			used[col.Name] = make(map[any]struct{})
		}
	}

	rows := make([]models.Row, 0, n)
	for ordinal := 1; ordinal <= n; ordinal++ {
		row := make(models.Row, len(g.Schema.Columns))
		for i := range g.Schema.Columns {
			col := &g.Schema.Columns[i]
			value, err := g.cell(rng, fkr, sources, col, ordinal, used[col.Name])
			if err != nil {
				return nil, err
			}
			row[col.Name] = value
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// cell synthesizes one value, applying the rules in precedence order:
// primary key ordinal, null injection, choices, faker hint, dtype source.
func (g *RowGenerator) cell(
	rng *rand.Rand,
	fkr faker.Faker,
	sources map[models.Dtype]valueSource,
	col *models.ColumnSpec,
	ordinal int,
	used map[any]struct{},
) (any, error) {
	// The ordinal rule outranks null injection: a primary key is never null
	// even when the column is marked nullable.
	if col.PrimaryKey {
		if col.Dtype != models.DtypeInt {
			return nil, &models.SchemaError{
				Kind:   models.SchemaErrorUnsupported,
				Column: col.Name,
				Msg:    "primary key requires dtype int",
			}
		}
		return int64(ordinal), nil
	}

	if col.Nullable && rng.Float64() < nullProbability {
		g.stats.Nulls++
		return nil, nil
	}

	value, err := g.draw(rng, fkr, sources, col)
	if err != nil {
		return nil, err
	}

	if used != nil {
		retries := 0
		for {
			if _, taken := used[value]; !taken {
				break
			}
			if retries == maxAttempts {
				g.stats.UniqueFallbacks++
				g.Logger.Warnf("column %s: accepting duplicate value after %d retries", col.Name, maxAttempts)
				break
			}
			retries++
			value, err = g.draw(rng, fkr, sources, col)
			if err != nil {
				return nil, err
			}
		}
		used[value] = struct{}{}
	}

	return value, nil
}

// draw produces a candidate value without null or uniqueness handling.
func (g *RowGenerator) draw(
	rng *rand.Rand,
	fkr faker.Faker,
	sources map[models.Dtype]valueSource,
	col *models.ColumnSpec,
) (any, error) {
	if len(col.Choices) > 0 {
		return col.Choices[rng.Intn(len(col.Choices))], nil
	}
	if col.Faker != "" {
		return fakerValue(fkr, col)
	}
	return sources[col.Dtype].value(rng, col), nil
}

// compilePatterns anchors each column pattern at both ends so candidates
// must match fully, not merely contain a match.
func compilePatterns(schema *models.TableSchema) (map[string]*regexp.Regexp, error) {
	patterns := make(map[string]*regexp.Regexp)
	for _, col := range schema.Columns {
		if col.Pattern == "" {
			continue
		}
		re, err := regexp.Compile("^(?:" + col.Pattern + ")$")
		if err != nil {
			return nil, &models.SchemaError{
				Kind:   models.SchemaErrorStructural,
				Column: col.Name,
				Msg:    "invalid pattern: " + err.Error(),
			}
		}
		patterns[col.Name] = re
	}
	return patterns, nil
}
