package xwfill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// crossStructure is a 3x3 cross: one across slot on the top row and one
// down slot in the first column, sharing their first cell.
var crossStructure = []string{
	"___",
	"_",
	"_",
}

func TestParseStructure(t *testing.T) {
	height, width, structure := ParseStructure([]string{
		"__#",
		"_",
		"#___",
	})

	assert.Equal(t, 3, height)
	assert.Equal(t, 4, width)
	assert.Equal(t, [][]bool{
		{true, true, false, false}, // short rows pad as blocked
		{true, false, false, false},
		{false, true, true, true},
	}, structure)
}

func TestExtractVariables(t *testing.T) {
	cw, err := NewCrossword(crossStructure, nil)
	assert.NoError(t, err)

	assert.Equal(t, []Variable{
		{Row: 0, Col: 0, Dir: Across, Length: 3},
		{Row: 0, Col: 0, Dir: Down, Length: 3},
	}, cw.Variables)
}

func TestExtractVariables_SkipsLengthOneRuns(t *testing.T) {
	// A single isolated cell is fillable in both directions but starts no
	// variable in either.
	cw, err := NewCrossword([]string{
		"#_#",
		"###",
	}, nil)
	assert.NoError(t, err)
	assert.Empty(t, cw.Variables)
}

func TestVariableCells(t *testing.T) {
	cw, err := NewCrossword([]string{
		"______",
		"_####_",
		"_####_",
		"______",
	}, nil)
	assert.NoError(t, err)
	assert.Len(t, cw.Variables, 4)

	for _, v := range cw.Variables {
		cells := v.Cells()
		assert.Len(t, cells, v.Length, "variable %v", v)
		for k := 1; k < len(cells); k++ {
			dRow := cells[k].Row - cells[k-1].Row
			dCol := cells[k].Col - cells[k-1].Col
			if v.Dir == Down {
				assert.Equal(t, 1, dRow, "variable %v", v)
				assert.Equal(t, 0, dCol, "variable %v", v)
			} else {
				assert.Equal(t, 0, dRow, "variable %v", v)
				assert.Equal(t, 1, dCol, "variable %v", v)
			}
		}
	}
}

func TestOverlapsMirrorConsistent(t *testing.T) {
	cw, err := NewCrossword([]string{
		"______",
		"_####_",
		"_####_",
		"______",
	}, nil)
	assert.NoError(t, err)

	found := 0
	for _, a := range cw.Variables {
		for _, b := range cw.Variables {
			if a == b {
				continue
			}
			ov, ok := cw.Overlap(a, b)
			mirror, mirrorOK := cw.Overlap(b, a)
			assert.Equal(t, ok, mirrorOK)
			if ok {
				found++
				assert.Equal(t, Overlap{First: ov.Second, Second: ov.First}, mirror)
			}
		}
	}
	// Four corners, each counted in both orders.
	assert.Equal(t, 8, found)
}

func TestNeighbors(t *testing.T) {
	cw, err := NewCrossword(crossStructure, nil)
	assert.NoError(t, err)

	across := Variable{Row: 0, Col: 0, Dir: Across, Length: 3}
	down := Variable{Row: 0, Col: 0, Dir: Down, Length: 3}

	assert.Equal(t, []Variable{down}, cw.Neighbors(across))
	assert.Equal(t, []Variable{across}, cw.Neighbors(down))

	ov, ok := cw.Overlap(across, down)
	assert.True(t, ok)
	assert.Equal(t, Overlap{First: 0, Second: 0}, ov)
}

func TestComputeOverlaps_RejectsMultiCellOverlap(t *testing.T) {
	// Two across runs over the same row cells cannot come out of a grid
	// scan, but a malformed caller-supplied pair must be rejected, not
	// silently resolved to one of the shared cells.
	_, err := computeOverlaps([]Variable{
		{Row: 0, Col: 0, Dir: Across, Length: 4},
		{Row: 0, Col: 1, Dir: Across, Length: 3},
	})
	assert.ErrorContains(t, err, "share more than one cell")
}

func TestNewCrossword_RejectsNonLetterWords(t *testing.T) {
	// "-AT" and "-AR" agree at the shared first cell, but a '-' can never
	// enter a letter support set, so the solver would wrongly prune every
	// partner word and report no solution. Such words must be rejected at
	// construction instead.
	_, err := NewCrossword(crossStructure, []string{"-at", "-ar"})
	assert.ErrorContains(t, err, "contains non-letter")

	_, err = NewCrossword(crossStructure, []string{"cat", "o'clock"})
	assert.ErrorContains(t, err, "contains non-letter")
}

func TestNewCrossword_NormalizesWords(t *testing.T) {
	cw, err := NewCrossword(crossStructure, []string{"cat", "CAT", "Car"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"CAR", "CAT"}, cw.Words)
}
