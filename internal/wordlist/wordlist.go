// Package wordlist loads and normalizes crossword vocabularies.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Load reads a newline-delimited word list from path. Blank lines and lines
// starting with '#' are skipped. The returned words are normalized.
func Load(ctx context.Context, path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return Normalize(words)
}

// Normalize uppercases, trims, deduplicates, and sorts words. A word
// containing anything but letters A-Z after uppercasing is an error.
func Normalize(words []string) ([]string, error) {
	upper := lo.Map(words, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	})
	upper = lo.Filter(upper, func(w string, _ int) bool { return w != "" })
	for _, word := range upper {
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("word %s contains non-letter %q", word, r)
			}
		}
	}
	upper = lo.Uniq(upper)
	slices.Sort(upper)
	return upper, nil
}

// FilterLengths keeps only words whose length is within [min, max]. A zero
// max means no upper bound.
func FilterLengths(words []string, min, max int) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		if len(w) < min {
			return false
		}
		return max <= 0 || len(w) <= max
	})
}
