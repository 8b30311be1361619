// Package config provides the difficulty settings bundle and shared
// configuration utilities.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Difficulty selects one of the built-in settings presets.
type Difficulty int

const (
	Normal Difficulty = iota
	Easy
	Hard
	// Custom marks settings loaded from a file rather than a preset.
	Custom
)

// String returns the display name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	case Custom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// ParseDifficulty maps a name to a Difficulty, defaulting to Normal.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	default:
		return Normal
	}
}

// Settings is the tuning bundle read by spawn and scoring decisions.
// The simulation receives it by value at construction and never mutates it.
type Settings struct {
	AsteroidSpeed float64 `yaml:"asteroidSpeed"` // Asteroid velocity multiplier
	AsteroidRate  float64 `yaml:"asteroidRate"`  // Ambient asteroid population multiplier
	EnemySpeed    float64 `yaml:"enemySpeed"`    // Enemy velocity multiplier
	PowerUpRate   float64 `yaml:"powerUpRate"`   // Drop probability per destroyed asteroid/enemy
	MaxAsteroids  int     `yaml:"maxAsteroids"`  // Size-weighted cap on live asteroids
	ScoreMult     float64 `yaml:"scoreMult"`     // Applied to every credited score
}

// ForDifficulty returns the preset settings for a difficulty.
func ForDifficulty(d Difficulty) Settings {
	switch d {
	case Easy:
		return Settings{
			AsteroidSpeed: 0.8,
			AsteroidRate:  0.7,
			EnemySpeed:    0.8,
			PowerUpRate:   0.12,
			MaxAsteroids:  24,
			ScoreMult:     0.5,
		}
	case Hard:
		return Settings{
			AsteroidSpeed: 1.3,
			AsteroidRate:  1.4,
			EnemySpeed:    1.25,
			PowerUpRate:   0.06,
			MaxAsteroids:  48,
			ScoreMult:     2.0,
		}
	default:
		return Settings{
			AsteroidSpeed: 1.0,
			AsteroidRate:  1.0,
			EnemySpeed:    1.0,
			PowerUpRate:   0.08,
			MaxAsteroids:  36,
			ScoreMult:     1.0,
		}
	}
}

// LoadFile reads settings from a YAML file. Fields left at zero fall back
// to the Normal preset, so a file only needs to name what it changes.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	s := Settings{}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	s.fillDefaults()
	return s, nil
}

// fillDefaults replaces zero-valued fields with the Normal preset values.
func (s *Settings) fillDefaults() {
	def := ForDifficulty(Normal)
	if s.AsteroidSpeed <= 0 {
		s.AsteroidSpeed = def.AsteroidSpeed
	}
	if s.AsteroidRate <= 0 {
		s.AsteroidRate = def.AsteroidRate
	}
	if s.EnemySpeed <= 0 {
		s.EnemySpeed = def.EnemySpeed
	}
	if s.PowerUpRate <= 0 {
		s.PowerUpRate = def.PowerUpRate
	}
	if s.MaxAsteroids <= 0 {
		s.MaxAsteroids = def.MaxAsteroids
	}
	if s.ScoreMult <= 0 {
		s.ScoreMult = def.ScoreMult
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
