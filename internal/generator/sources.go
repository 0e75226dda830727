package generator

import (
	"math"
	"math/rand"
	"regexp"
	"time"

	"github.com/bigmountainben/synthdb/pkg/models"
)

const (
	defaultIntMin   = 0
	defaultIntMax   = 1000
	defaultFloatMin = 0.0
	defaultFloatMax = 1000.0

	textMinLength = 5
	textMaxLength = 14

	// Calendar ranges for date and datetime synthesis.
	dateOffsetDays          = 3650
	datetimeForwardSeconds  = 10_000_000
	datetimeBackwardSeconds = 3600 * 24 * 30
)

// generationEpoch anchors all date and datetime values.
var generationEpoch = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

// valueSource produces one value for a column given the call's random
// source and the column's constraints. One implementation per dtype.
type valueSource interface {
	value(rng *rand.Rand, col *models.ColumnSpec) any
}

// newSources builds the dtype dispatch table for a single Rows call. The
// text source carries the call's compiled patterns and reports fallbacks
// through the generator.
func (g *RowGenerator) newSources(patterns map[string]*regexp.Regexp) map[models.Dtype]valueSource {
	return map[models.Dtype]valueSource{
		models.DtypeInt:      intSource{},
		models.DtypeFloat:    floatSource{},
		models.DtypeBool:     boolSource{},
		models.DtypeDate:     dateSource{},
		models.DtypeDatetime: datetimeSource{},
		models.DtypeText:     &textSource{patterns: patterns, gen: g},
	}
}

type intSource struct{}

func (intSource) value(rng *rand.Rand, col *models.ColumnSpec) any {
	lo, hi := int64(defaultIntMin), int64(defaultIntMax)
	if col.MinValue != nil {
		lo = int64(*col.MinValue)
	}
	if col.MaxValue != nil {
		hi = int64(*col.MaxValue)
	}
	// Bounds are inclusive.
	return lo + rng.Int63n(hi-lo+1)
}

type floatSource struct{}

func (floatSource) value(rng *rand.Rand, col *models.ColumnSpec) any {
	lo, hi := defaultFloatMin, defaultFloatMax
	if col.MinValue != nil {
		lo = *col.MinValue
	}
	if col.MaxValue != nil {
		hi = *col.MaxValue
	}
	v := lo + rng.Float64()*(hi-lo)
	return math.Round(v*100) / 100
}

type boolSource struct{}

func (boolSource) value(rng *rand.Rand, col *models.ColumnSpec) any {
	return int64(rng.Intn(2))
}

type dateSource struct{}

func (dateSource) value(rng *rand.Rand, col *models.ColumnSpec) any {
	offset := rng.Intn(dateOffsetDays + 1)
	return generationEpoch.AddDate(0, 0, offset).Format("2006-01-02")
}

type datetimeSource struct{}

func (datetimeSource) value(rng *rand.Rand, col *models.ColumnSpec) any {
	t := generationEpoch.Add(time.Duration(rng.Int63n(datetimeForwardSeconds+1)) * time.Second)
	t = t.Add(-time.Duration(rng.Int63n(datetimeBackwardSeconds+1)) * time.Second)
	// The epoch is UTC, so the literal Z in the layout is accurate.
	return t.Format("2006-01-02T15:04:05Z")
}

// textSource synthesizes lowercase strings, rejection-sampling against the
// column's pattern when one is set. After maxAttempts misses the last
// candidate is accepted anyway rather than failing the run.
type textSource struct {
	patterns map[string]*regexp.Regexp
	gen      *RowGenerator
}

func (s *textSource) value(rng *rand.Rand, col *models.ColumnSpec) any {
	re := s.patterns[col.Name]

	var candidate string
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		candidate = randomText(rng)
		if re == nil || re.MatchString(candidate) {
			return candidate
		}
	}

	s.gen.stats.PatternFallbacks++
	s.gen.Logger.Warnf("column %s: no candidate matched pattern %q after %d attempts, keeping last candidate",
		col.Name, col.Pattern, maxAttempts)
	return candidate
}

// randomText returns a lowercase ASCII string of uniform random length in
// [textMinLength, textMaxLength].
func randomText(rng *rand.Rand) string {
	length := textMinLength + rng.Intn(textMaxLength-textMinLength+1)
	b := make([]byte, length)
	for i := range b {
		b[i] = byte('a' + rng.Intn(26))
	}
	return string(b)
}
