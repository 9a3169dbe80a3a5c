package harness

import "fmt"

// Config controls the retry harness.
type Config struct {
	// StartSeed is the first seed to try. Successive attempts use
	// StartSeed+1, StartSeed+2, and so on.
	StartSeed int64 `yaml:"startSeed"`

	// MaxAttempts is the number of seeds to try before giving up.
	MaxAttempts int `yaml:"maxAttempts"`

	// Parallelism is the number of concurrent solve attempts RunParallel
	// may keep in flight. Run ignores it. A value of 1 makes RunParallel
	// equivalent to Run.
	Parallelism int `yaml:"parallelism"`
}

// DefaultConfig returns the default harness configuration.
//
// Returns:
//   - Config: StartSeed 0, 300 attempts, no parallelism
func DefaultConfig() Config {
	return Config{
		StartSeed:   0,
		MaxAttempts: 300,
		Parallelism: 1,
	}
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: Validation error with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.MaxAttempts < 1 {
		return fmt.Errorf("MaxAttempts must be >= 1, got %d", cfg.MaxAttempts)
	}
	if cfg.Parallelism < 1 {
		return fmt.Errorf("Parallelism must be >= 1, got %d", cfg.Parallelism)
	}

	return nil
}
