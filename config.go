package gantry

import "go.uber.org/zap"

// Config holds per-world tuning. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	// InitialEntityCapacity pre-sizes the entity table.
	InitialEntityCapacity int

	// MaxEntitiesPerArchetype bounds row growth per archetype. Zero means
	// unbounded.
	MaxEntitiesPerArchetype int

	// Logger receives scheduler diagnostics (recovered panics, failing
	// systems). Nil means no logging.
	Logger *zap.Logger
}

func DefaultConfig() Config {
	return Config{
		InitialEntityCapacity: 256,
	}
}
