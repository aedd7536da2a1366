package multiply

import "github.com/google/uuid"

// IDGenerator produces identifiers for cloned features. Every call returns
// a value never returned before.
//
// Generation runs one call per feature per copy; implementations must be
// safe for concurrent use when parallel generation is enabled.
type IDGenerator interface {
	Next() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns the default generator, backed by random (v4)
// UUIDs in their canonical lowercase form.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Next() string {
	return uuid.NewString()
}
