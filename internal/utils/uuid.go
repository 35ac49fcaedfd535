package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers attached to outbound API
// calls (X-Request-Id). Time-ordered v7 UUIDs are preferred so backend
// logs sort chronologically; v4 is the fallback.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
