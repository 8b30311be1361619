package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/bdamage/Astroid-Classic/internal/config"
	"github.com/bdamage/Astroid-Classic/internal/loop"
	"github.com/bdamage/Astroid-Classic/internal/score"
)

const appName = "astroid-classic"

func main() {
	difficultyFlag := flag.String("difficulty", "normal", "easy, normal or hard")
	settingsFlag := flag.String("settings", "", "YAML settings file overriding the presets")
	flag.Parse()

	opts := loop.Options{
		Difficulty: config.ParseDifficulty(*difficultyFlag),
	}

	if *settingsFlag != "" {
		settings, err := config.LoadFile(*settingsFlag)
		if err != nil {
			log.Fatal("could not load settings", "path", *settingsFlag, "err", err)
		}
		opts.Settings = &settings
	}

	scores, err := score.Open(appName)
	if err != nil {
		log.Warn("leaderboard unavailable, scores will not persist", "err", err)
	} else {
		opts.Scores = scores
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatal("could not enable raw mode", "err", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	sess := loop.NewSession(bufio.NewReader(os.Stdin), os.Stdout, opts)
	if err := sess.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		log.Fatal("game error", "err", err)
	}
}
