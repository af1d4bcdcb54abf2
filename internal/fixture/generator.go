// Package fixture synthesizes dummy record data that conforms to a
// resource's field schema.
package fixture

import (
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/heartmarshall/mockapi-backend/internal/domain"
)

const (
	// MaxCount is the most records a single Generate call produces.
	MaxCount = 100
	// DefaultCount is used when the caller does not ask for a count.
	DefaultCount = 10

	minNumber = 1
	maxNumber = 1000
	wordCount = 3
)

// Generator produces fake record payloads. A zero seed means a fresh random
// seed per call.
type Generator struct {
	seed uint64
}

// NewGenerator creates a Generator seeded randomly on every call.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewSeededGenerator creates a Generator whose output is reproducible.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{seed: seed}
}

// ClampCount bounds a requested count to [0, MaxCount].
func ClampCount(count int) int {
	if count < 0 {
		return 0
	}
	if count > MaxCount {
		return MaxCount
	}
	return count
}

// Generate returns ClampCount(count) payloads with one value per declared
// field. A resource with no fields cannot be generated for.
func (g *Generator) Generate(res domain.Resource, count int) ([]map[string]any, error) {
	if len(res.Fields) == 0 {
		return nil, domain.NewValidationError("fields", "no fields defined for this resource")
	}

	faker := gofakeit.New(g.seed)
	n := ClampCount(count)

	out := make([]map[string]any, n)
	for i := range out {
		data := make(map[string]any, len(res.Fields))
		for _, f := range res.Fields {
			if v, ok := value(faker, f.Type); ok {
				data[f.Name] = v
			}
		}
		out[i] = data
	}
	return out, nil
}

// value returns a fake value for t. ok is false when the field must be left
// out of the payload entirely.
func value(faker *gofakeit.Faker, t domain.FieldType) (v any, ok bool) {
	switch t {
	case domain.FieldTypeString:
		words := make([]string, wordCount)
		for i := range words {
			words[i] = faker.LoremIpsumWord()
		}
		return strings.Join(words, " "), true
	case domain.FieldTypeNumber:
		return faker.IntRange(minNumber, maxNumber), true
	case domain.FieldTypeBoolean:
		return faker.Bool(), true
	case domain.FieldTypeNull:
		return nil, true
	case domain.FieldTypeUndefined:
		return nil, false
	default:
		return faker.LoremIpsumWord(), true
	}
}
