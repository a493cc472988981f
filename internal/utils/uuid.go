package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for new records. Note and
// group ids sort chronologically in index scans, which keeps the
// by-updated_at listings cheap.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random v4 when the
// system clock source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
