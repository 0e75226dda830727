package generator

import (
	"fmt"

	"github.com/bigmountainben/synthdb/pkg/models"
	"github.com/jaswdr/faker"
)

// fakerHints maps hint names to semantic value generators. The faker is
// seeded from the schema seed, so hinted columns stay deterministic.
var fakerHints = map[string]func(f faker.Faker) string{
	"email":      func(f faker.Faker) string { return f.Internet().Email() },
	"first_name": func(f faker.Faker) string { return f.Person().FirstName() },
	"last_name":  func(f faker.Faker) string { return f.Person().LastName() },
	"name":       func(f faker.Faker) string { return f.Person().Name() },
	"phone":      func(f faker.Faker) string { return f.Phone().Number() },
	"address":    func(f faker.Faker) string { return f.Address().Address() },
	"city":       func(f faker.Faker) string { return f.Address().City() },
	"state":      func(f faker.Faker) string { return f.Address().State() },
	"country":    func(f faker.Faker) string { return f.Address().Country() },
	"company":    func(f faker.Faker) string { return f.Company().Name() },
	"url":        func(f faker.Faker) string { return f.Internet().URL() },
	"uuid":       func(f faker.Faker) string { return f.UUID().V4() },
	"word":       func(f faker.Faker) string { return f.Lorem().Word() },
	"sentence":   func(f faker.Faker) string { return f.Lorem().Sentence(6) },
}

// fakerValue resolves a column's faker hint. Unknown hints are an
// unsupported configuration, reported lazily at generation time like the
// non-int primary key rule.
func fakerValue(fkr faker.Faker, col *models.ColumnSpec) (any, error) {
	fn, ok := fakerHints[col.Faker]
	if !ok {
		return nil, &models.SchemaError{
			Kind:   models.SchemaErrorUnsupported,
			Column: col.Name,
			Msg:    fmt.Sprintf("unknown faker hint %q", col.Faker),
		}
	}
	return fn(fkr), nil
}
