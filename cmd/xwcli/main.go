package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill"
	"crosswarped.com/xwfill/internal/wordlist"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the grid structure ('_' = fillable cell)")
	wordsFile := flag.String("words", "", "The file to load vocabulary words from")
	output := flag.String("out", "", "Optional PNG file to save the solved grid to")
	minWordLength := flag.Int("min_length", 0, "Drop words shorter than this before solving")
	maxWordLength := flag.Int("max_length", 0, "Drop words longer than this before solving")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")
	debug := flag.Bool("debug", false, "Enable debug logging")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")

	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *structureFile == "" || *wordsFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: xwcli -structure <file> -words <file> [-out grid.png]")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	rows, err := loadLines(*structureFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading structure file")
	}

	words, err := wordlist.Load(ctx, *wordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading words file")
	}
	words = wordlist.FilterLengths(words, *minWordLength, *maxWordLength)
	log.Info().Int("words", len(words)).Msg("vocabulary loaded")

	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating profile file")
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("starting CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	cw, err := xwfill.NewCrossword(rows, words)
	if err != nil {
		log.Fatal().Err(err).Msg("building crossword")
	}
	log.Info().Int("variables", len(cw.Variables)).Msg("grid model built")

	start := time.Now()
	assignment, err := xwfill.NewSolver(cw).Solve(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Fatal().Dur("timeout", *timeout).Msg("solve timed out")
		}
		log.Fatal().Err(err).Msg("solve aborted")
	}

	if assignment == nil {
		fmt.Println("No solution.")
		os.Exit(1)
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("solved")
	fmt.Println(cw.Render(assignment))

	if *output != "" {
		if err := cw.SaveImage(assignment, *output); err != nil {
			log.Fatal().Err(err).Msg("saving image")
		}
		log.Info().Str("file", *output).Msg("image saved")
	}
}

func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
