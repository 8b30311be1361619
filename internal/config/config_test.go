package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestForDifficulty_PresetsAreOrdered(t *testing.T) {
	easy := ForDifficulty(Easy)
	normal := ForDifficulty(Normal)
	hard := ForDifficulty(Hard)

	if !(easy.AsteroidSpeed < normal.AsteroidSpeed && normal.AsteroidSpeed < hard.AsteroidSpeed) {
		t.Errorf("asteroid speed should grow with difficulty: %v %v %v",
			easy.AsteroidSpeed, normal.AsteroidSpeed, hard.AsteroidSpeed)
	}
	if !(easy.ScoreMult < normal.ScoreMult && normal.ScoreMult < hard.ScoreMult) {
		t.Errorf("score multiplier should grow with difficulty: %v %v %v",
			easy.ScoreMult, normal.ScoreMult, hard.ScoreMult)
	}
	if !(easy.PowerUpRate > normal.PowerUpRate && normal.PowerUpRate > hard.PowerUpRate) {
		t.Errorf("power-up rate should shrink with difficulty: %v %v %v",
			easy.PowerUpRate, normal.PowerUpRate, hard.PowerUpRate)
	}
}

func TestLoadFile_PartialFileFallsBackToNormal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	body := "asteroidSpeed: 1.5\nmaxAsteroids: 10\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if s.AsteroidSpeed != 1.5 {
		t.Errorf("expected asteroidSpeed 1.5, got %v", s.AsteroidSpeed)
	}
	if s.MaxAsteroids != 10 {
		t.Errorf("expected maxAsteroids 10, got %v", s.MaxAsteroids)
	}

	normal := ForDifficulty(Normal)
	if s.ScoreMult != normal.ScoreMult {
		t.Errorf("unset scoreMult should fall back to Normal (%v), got %v", normal.ScoreMult, s.ScoreMult)
	}
	if s.PowerUpRate != normal.PowerUpRate {
		t.Errorf("unset powerUpRate should fall back to Normal (%v), got %v", normal.PowerUpRate, s.PowerUpRate)
	}
}

func TestLoadFile_MissingFileReturnsError(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing settings file")
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"Easy", Easy},
		{" hard ", Hard},
		{"normal", Normal},
		{"", Normal},
		{"nonsense", Normal},
	}
	for _, c := range cases {
		if got := ParseDifficulty(c.in); got != c.want {
			t.Errorf("ParseDifficulty(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
}
