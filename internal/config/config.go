package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"duckgoose/internal/domain"
)

// Config holds the game tunables. Keep these centralized so tests or
// local runs can adjust the rules without touching multiple call sites.
type Config struct {
	Rows         int           `env:"DUCK_ROWS" envDefault:"4"`
	Columns      int           `env:"DUCK_COLUMNS" envDefault:"3"`
	MinSolutions int           `env:"DUCK_MIN_SOLUTIONS" envDefault:"1"`
	GameDuration time.Duration `env:"DUCK_GAME_DURATION" envDefault:"180s"`

	// GenerateAttempts bounds the board regeneration loop.
	GenerateAttempts int `env:"DUCK_GENERATE_ATTEMPTS" envDefault:"1000"`

	// Score deltas applied to a player's total.
	CorrectSolution   int `env:"DUCK_SCORE_CORRECT_SOLUTION" envDefault:"1"`
	IncorrectSolution int `env:"DUCK_SCORE_INCORRECT_SOLUTION" envDefault:"-1"`
	CorrectGoose      int `env:"DUCK_SCORE_CORRECT_GOOSE" envDefault:"2"`
	IncorrectGoose    int `env:"DUCK_SCORE_INCORRECT_GOOSE" envDefault:"-1"`

	LogLevel string `env:"DUCK_LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations no board could satisfy.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Columns <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", c.Rows, c.Columns)
	}
	if size := c.Rows * c.Columns; size > domain.DeckSize {
		return fmt.Errorf("board size %d exceeds deck size %d", size, domain.DeckSize)
	}
	if c.MinSolutions < 0 {
		return fmt.Errorf("minimum solutions must not be negative, got %d", c.MinSolutions)
	}
	if c.GenerateAttempts <= 0 {
		return fmt.Errorf("generate attempts must be positive, got %d", c.GenerateAttempts)
	}
	if c.GameDuration <= 0 {
		return fmt.Errorf("game duration must be positive, got %s", c.GameDuration)
	}
	return nil
}
