package wordlist

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestLoad(t *testing.T) {
	is := is.New(t)

	words, err := Load(context.Background(), "testdata/words.txt")
	is.NoErr(err)
	is.Equal(words, []string{"ARC", "CAR", "CAT", "HOUSE"}) // comments, blanks, and case collapsed
}

func TestLoad_MissingFile(t *testing.T) {
	is := is.New(t)

	_, err := Load(context.Background(), "testdata/does-not-exist.txt")
	is.True(err != nil)
}

func TestLoad_Cancelled(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, "testdata/words.txt")
	is.Equal(err, context.Canceled)
}

func TestNormalize(t *testing.T) {
	is := is.New(t)

	words, err := Normalize([]string{" cat", "Dog ", "CAT", "", "dog"})
	is.NoErr(err)
	is.Equal(words, []string{"CAT", "DOG"})
}

func TestNormalize_RejectsNonLetters(t *testing.T) {
	is := is.New(t)

	_, err := Normalize([]string{"o'clock"})
	is.True(err != nil)
}

func TestFilterLengths(t *testing.T) {
	is := is.New(t)

	words := []string{"AT", "CAT", "HOUSE", "STREET"}
	is.Equal(FilterLengths(words, 3, 5), []string{"CAT", "HOUSE"})
	is.Equal(FilterLengths(words, 0, 0), words) // zero max means unbounded
	is.Equal(FilterLengths(words, 4, 0), []string{"HOUSE", "STREET"})
}
