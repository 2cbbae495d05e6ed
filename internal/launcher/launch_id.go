package launcher

import "github.com/google/uuid"

type uuidGenerator struct{}

// NewUUIDGenerator returns an [IDGenerator] producing time-ordered UUIDv7
// strings, falling back to a random UUIDv4 if v7 generation fails.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
