package xwfill

import (
	"context"
	"slices"
	"sort"

	"github.com/rs/zerolog/log"

	"crosswarped.com/xwfill/pkg/primitives"
)

// Assignment maps variables to the words assigned to them. A solve returns
// a complete assignment, or nil if the puzzle is unsatisfiable.
type Assignment map[Variable]string

// Solver fills a crossword by pruning per-variable word domains to node and
// arc consistency, then running a heuristic backtracking search.
//
// A Solver is single-use: domains shrink monotonically during propagation
// and a solve consumes them. It is not safe for concurrent use.
type Solver struct {
	cw      *Crossword
	domains map[Variable]map[string]struct{}
}

// NewSolver initializes every variable's domain to the full vocabulary.
func NewSolver(cw *Crossword) *Solver {
	s := &Solver{
		cw:      cw,
		domains: make(map[Variable]map[string]struct{}, len(cw.Variables)),
	}
	for _, v := range cw.Variables {
		domain := make(map[string]struct{}, len(cw.Words))
		for _, w := range cw.Words {
			domain[w] = struct{}{}
		}
		s.domains[v] = domain
	}
	return s
}

// Domain returns a sorted copy of v's current candidate words.
func (s *Solver) Domain(v Variable) []string {
	words := make([]string, 0, len(s.domains[v]))
	for w := range s.domains[v] {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Solve prunes the domains and searches for a complete assignment. It
// returns (nil, nil) when the puzzle has no solution, and a non-nil error
// only when ctx is cancelled mid-search.
func (s *Solver) Solve(ctx context.Context) (Assignment, error) {
	s.EnforceNodeConsistency()
	if !s.EnforceArcConsistency() {
		log.Debug().Msg("arc consistency emptied a domain; puzzle is unsatisfiable")
		return nil, nil
	}
	return s.Backtrack(ctx, Assignment{})
}

// EnforceNodeConsistency removes from each variable's domain every word
// whose length differs from the variable's length. Idempotent.
func (s *Solver) EnforceNodeConsistency() {
	for v, domain := range s.domains {
		for w := range domain {
			if len(w) != v.Length {
				delete(domain, w)
			}
		}
	}
}

// Revise makes x arc-consistent with y: every word removed from x's domain
// has no word in y's domain agreeing with it at the overlap position. It
// reports whether any word was removed. A no-op if x and y do not cross.
func (s *Solver) Revise(x, y Variable) bool {
	ov, ok := s.cw.Overlap(x, y)
	if !ok {
		return false
	}

	// Letters supported by y at the shared cell. Membership is then O(1)
	// per word in x's domain. NewCrossword guarantees every word is A-Z,
	// so Add cannot fail here.
	var support primitives.CharSet
	for w := range s.domains[y] {
		support.Add(rune(w[ov.Second]))
	}

	// Collect first, delete after: no mutation while ranging the domain.
	var removals []string
	for w := range s.domains[x] {
		if !support.Contains(rune(w[ov.First])) {
			removals = append(removals, w)
		}
	}
	for _, w := range removals {
		delete(s.domains[x], w)
	}
	return len(removals) > 0
}

type arc struct {
	x, y Variable
}

// EnforceArcConsistency runs AC-3 over every crossing pair. It returns
// false as soon as some domain empties, meaning the puzzle is unsatisfiable
// under the current domains. On true, every remaining word in every domain
// has at least one compatible partner in each neighboring domain.
func (s *Solver) EnforceArcConsistency() bool {
	var queue []arc
	for _, x := range s.cw.Variables {
		for _, y := range s.cw.Neighbors(x) {
			queue = append(queue, arc{x, y})
		}
	}

	processed := 0
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		processed++

		if !s.Revise(a.x, a.y) {
			continue
		}
		if len(s.domains[a.x]) == 0 {
			log.Debug().
				Int("arcs", processed).
				Stringer("variable", a.x).
				Msg("domain emptied during propagation")
			return false
		}
		// x shrank, so every neighbor's consistency with x must be
		// re-checked, except y which we just revised against.
		for _, n := range s.cw.Neighbors(a.x) {
			if n != a.y {
				queue = append(queue, arc{n, a.x})
			}
		}
	}

	log.Debug().Int("arcs", processed).Msg("arc consistency established")
	return true
}

// assignmentComplete reports whether every variable has an assigned word.
func (s *Solver) assignmentComplete(assignment Assignment) bool {
	return len(assignment) == len(s.cw.Variables)
}

// consistent reports whether the assignment uses pairwise distinct words of
// the right lengths that agree at every shared cell.
func (s *Solver) consistent(assignment Assignment) bool {
	seen := make(map[string]struct{}, len(assignment))
	for v, w := range assignment {
		if len(w) != v.Length {
			return false
		}
		if _, dup := seen[w]; dup {
			return false
		}
		seen[w] = struct{}{}

		for _, n := range s.cw.Neighbors(v) {
			nw, ok := assignment[n]
			if !ok {
				continue
			}
			ov, _ := s.cw.Overlap(v, n)
			if w[ov.First] != nw[ov.Second] {
				return false
			}
		}
	}
	return true
}

// selectUnassignedVariable picks the unassigned variable with the fewest
// remaining candidates (MRV), breaking ties by most neighbors (degree).
// Remaining ties fall to the fixed variable order, since s.cw.Variables is
// already sorted by it.
func (s *Solver) selectUnassignedVariable(assignment Assignment) Variable {
	var best Variable
	found := false
	for _, v := range s.cw.Variables {
		if _, assigned := assignment[v]; assigned {
			continue
		}
		if !found {
			best, found = v, true
			continue
		}
		dv, db := len(s.domains[v]), len(s.domains[best])
		if dv < db || (dv == db && len(s.cw.Neighbors(v)) > len(s.cw.Neighbors(best))) {
			best = v
		}
	}
	return best
}

// orderDomainValues returns v's candidates ascending by how many options
// they would eliminate from unassigned neighbors' domains at the shared
// cells (least-constraining-value). Ties break lexicographically. The
// estimate is read-only; no domain is mutated.
func (s *Solver) orderDomainValues(v Variable, assignment Assignment) []string {
	words := s.Domain(v)

	eliminated := make(map[string]int, len(words))
	for _, w := range words {
		count := 0
		for _, n := range s.cw.Neighbors(v) {
			if _, assigned := assignment[n]; assigned {
				continue
			}
			ov, _ := s.cw.Overlap(v, n)
			for nw := range s.domains[n] {
				if w[ov.First] != nw[ov.Second] {
					count++
				}
			}
		}
		eliminated[w] = count
	}

	// words is already sorted, so the stable sort leaves equal counts in
	// lexicographic order.
	sort.SliceStable(words, func(i, j int) bool {
		return eliminated[words[i]] < eliminated[words[j]]
	})
	return words
}

// Backtrack performs recursive depth-first search over the current domains,
// extending assignment until it covers every variable. The first complete
// consistent assignment wins; (nil, nil) means the subtree is exhausted.
// ctx is checked at every node expansion so a deadline bounds the search.
func (s *Solver) Backtrack(ctx context.Context, assignment Assignment) (Assignment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.assignmentComplete(assignment) {
		return assignment, nil
	}

	v := s.selectUnassignedVariable(assignment)
	for _, w := range s.orderDomainValues(v, assignment) {
		assignment[v] = w
		if s.consistent(assignment) {
			result, err := s.Backtrack(ctx, assignment)
			if err != nil {
				return nil, err
			}
			if result != nil {
				return result, nil
			}
		}
		delete(assignment, v)
	}
	return nil, nil
}
