package xwfill

import (
	"fmt"
	"slices"
	"strings"
)

// Direction is an enum representing the direction of a variable in a grid,
// either 'Across' or 'Down'.
type Direction int

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// Cell is a single position in the grid, (row, column), zero-based.
type Cell struct {
	Row, Col int
}

// Variable is a fillable word slot: a maximal run of open cells in one
// direction. Equality is structural; Variable is a valid map key.
type Variable struct {
	Row, Col int
	Dir      Direction
	Length   int
}

// Cells returns the ordered sequence of cells the variable occupies.
func (v Variable) Cells() []Cell {
	cells := make([]Cell, v.Length)
	for k := range v.Length {
		if v.Dir == Down {
			cells[k] = Cell{Row: v.Row + k, Col: v.Col}
		} else {
			cells[k] = Cell{Row: v.Row, Col: v.Col + k}
		}
	}
	return cells
}

func (v Variable) String() string {
	return fmt.Sprintf("(%d, %d) %s : %d", v.Row, v.Col, v.Dir, v.Length)
}

// compareVariables is the fixed total order over variables, used wherever a
// tie must break deterministically: (row, col, direction, length).
func compareVariables(a, b Variable) int {
	if c := a.Row - b.Row; c != 0 {
		return c
	}
	if c := a.Col - b.Col; c != 0 {
		return c
	}
	if c := int(a.Dir) - int(b.Dir); c != 0 {
		return c
	}
	return a.Length - b.Length
}

// Overlap identifies the single shared cell between two crossing variables
// as an offset into each variable's cell sequence.
type Overlap struct {
	First, Second int
}

type varPair struct {
	a, b Variable
}

// Crossword holds the grid structure, the vocabulary, and the derived
// variables with their pairwise overlaps. Immutable once constructed.
type Crossword struct {
	Height, Width int

	// Structure[row][col] is true if the cell is fillable.
	Structure [][]bool

	// Words is the vocabulary: uppercase, unique, sorted.
	Words []string

	// Variables is sorted by compareVariables.
	Variables []Variable

	overlaps  map[varPair]Overlap
	neighbors map[Variable][]Variable
}

// ParseStructure converts row strings into an occupancy grid. An underscore
// marks a fillable cell; any other character, or a row shorter than the
// widest row, marks a blocked cell.
func ParseStructure(rows []string) (height, width int, structure [][]bool) {
	height = len(rows)
	for _, row := range rows {
		width = max(width, len(row))
	}

	structure = make([][]bool, height)
	for i, row := range rows {
		structure[i] = make([]bool, width)
		for j := range width {
			structure[i][j] = j < len(row) && row[j] == '_'
		}
	}
	return height, width, structure
}

// NewCrossword builds the grid model from a structure description and a
// vocabulary. Words are uppercased and deduplicated; a word containing
// anything but letters A-Z after uppercasing is an error. It also returns
// an error if any two variables share more than one cell, which indicates
// a malformed grid.
func NewCrossword(rows []string, words []string) (*Crossword, error) {
	height, width, structure := ParseStructure(rows)

	vocab := make([]string, 0, len(words))
	for _, w := range words {
		upper := strings.ToUpper(w)
		for _, r := range upper {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("word %s contains non-letter %q", upper, r)
			}
		}
		vocab = append(vocab, upper)
	}
	slices.Sort(vocab)
	vocab = slices.Compact(vocab)

	c := &Crossword{
		Height:    height,
		Width:     width,
		Structure: structure,
		Words:     vocab,
	}

	c.Variables = extractVariables(structure)

	var err error
	c.overlaps, err = computeOverlaps(c.Variables)
	if err != nil {
		return nil, err
	}

	c.neighbors = make(map[Variable][]Variable, len(c.Variables))
	for _, v := range c.Variables {
		for _, w := range c.Variables {
			if v == w {
				continue
			}
			if _, ok := c.overlaps[varPair{v, w}]; ok {
				c.neighbors[v] = append(c.neighbors[v], w)
			}
		}
	}

	return c, nil
}

// extractVariables scans the occupancy grid for maximal runs of fillable
// cells in both directions. A cell starts a variable iff it is fillable and
// the preceding cell in that direction is blocked or out of bounds. Runs of
// length 1 are not real slots and are discarded.
func extractVariables(structure [][]bool) []Variable {
	height := len(structure)
	width := 0
	if height > 0 {
		width = len(structure[0])
	}

	var vars []Variable
	for i := range height {
		for j := range width {
			if !structure[i][j] {
				continue
			}

			if i == 0 || !structure[i-1][j] {
				length := 1
				for k := i + 1; k < height && structure[k][j]; k++ {
					length++
				}
				if length > 1 {
					vars = append(vars, Variable{Row: i, Col: j, Dir: Down, Length: length})
				}
			}

			if j == 0 || !structure[i][j-1] {
				length := 1
				for k := j + 1; k < width && structure[i][k]; k++ {
					length++
				}
				if length > 1 {
					vars = append(vars, Variable{Row: i, Col: j, Dir: Across, Length: length})
				}
			}
		}
	}

	slices.SortFunc(vars, compareVariables)
	return vars
}

// computeOverlaps intersects the cell sequences of every ordered pair of
// distinct variables. Pairs that do not cross are absent from the map. Two
// variables sharing more than one cell is a malformed grid.
func computeOverlaps(vars []Variable) (map[varPair]Overlap, error) {
	overlaps := make(map[varPair]Overlap)
	cells := make(map[Variable][]Cell, len(vars))
	for _, v := range vars {
		cells[v] = v.Cells()
	}

	for _, a := range vars {
		for _, b := range vars {
			if a == b {
				continue
			}
			found := false
			for i, ca := range cells[a] {
				for j, cb := range cells[b] {
					if ca != cb {
						continue
					}
					if found {
						return nil, fmt.Errorf("variables %v and %v share more than one cell", a, b)
					}
					found = true
					overlaps[varPair{a, b}] = Overlap{First: i, Second: j}
				}
			}
		}
	}
	return overlaps, nil
}

// Overlap returns the overlap between a and b, if they cross.
func (c *Crossword) Overlap(a, b Variable) (Overlap, bool) {
	ov, ok := c.overlaps[varPair{a, b}]
	return ov, ok
}

// Neighbors returns the variables crossing v, in the fixed variable order.
// The returned slice must not be mutated.
func (c *Crossword) Neighbors(v Variable) []Variable {
	return c.neighbors[v]
}
