package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"baccarat/internal/config"
	"baccarat/internal/rng"
	"baccarat/internal/shell"
	"baccarat/pkg/deck"
)

var (
	credit = flag.Int("credit", 0, "the starting credit, overrides the configured value")
	seed   = flag.Int64("seed", 0, "shuffle with a fixed seed so the deal can be replayed")
	noPace = flag.Bool("no-pace", false, "deal without pausing between cards")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	startingCredit := cfg.StartingCredit
	if *credit > 0 {
		startingCredit = *credit
	}

	var gen rng.Generator = rng.Crypto{}
	if s := pickSeed(cfg.Seed); s != 0 {
		seeded := rng.NewSeeded(s)
		logrus.WithField("seed", seeded.Seed()).Warn("shuffling with a fixed seed")
		gen = seeded
	}

	// pacing only makes sense for a person watching the deal
	pace := cfg.PaceDelay
	if *noPace || !term.IsTerminal(int(os.Stdin.Fd())) {
		pace = 0
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}

	pterm.DefaultHeader.WithFullWidth().Println("Baccarat")
	pterm.Info.Printfln("Your credit is: %d", startingCredit)

	sh := shell.New(logrus.StandardLogger(), os.Stdin, os.Stdout, deck.New(), gen, shell.Options{
		Credit: decimal.NewFromInt(int64(startingCredit)),
		Pace:   pace,
	})

	if _, err := sh.Run(context.Background()); err != nil {
		if errors.Is(err, shell.ErrAborted) {
			logrus.Info("no input, leaving the table")
			os.Exit(1)
		}

		logrus.WithError(err).Fatal("could not play the round")
	}
}

func pickSeed(configured int64) int64 {
	if *seed != 0 {
		return *seed
	}

	return configured
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
