package maze

import (
	"fmt"
	"sort"
)

// Default bounds for the number of fake walls per maze.
const (
	DefaultFakeWallsMin = 5
	DefaultFakeWallsMax = 10
)

// FakeWallSet holds road cells that are drawn as walls.
type FakeWallSet map[Cell]struct{}

// Contains reports whether c is a fake wall.
func (s FakeWallSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Cells returns the fake walls in row-major order.
func (s FakeWallSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sortCells(cells)
	return cells
}

// PlaceFakeWalls picks a uniform count in [minCount, maxCount] and samples
// that many distinct interior road cells, never start or goal.
//
// The maze must offer at least maxCount candidates; otherwise
// ErrTooFewCandidates is returned rather than a smaller set.
func PlaceFakeWalls(g *Grid, start, goal Cell, rng RNG, minCount, maxCount int) (FakeWallSet, error) {
	if minCount < 0 || maxCount < minCount {
		return nil, fmt.Errorf("place fake walls: invalid range [%d, %d]", minCount, maxCount)
	}

	var candidates []Cell
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			c := C(x, y)
			if g.Get(c) == Road && c != start && c != goal {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) < maxCount {
		return nil, fmt.Errorf("place fake walls: %d candidates, need %d: %w",
			len(candidates), maxCount, ErrTooFewCandidates)
	}

	count := minCount + rng.Intn(maxCount-minCount+1)

	// Partial Fisher-Yates: the first count slots become the sample.
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	set := make(FakeWallSet, count)
	for _, c := range candidates[:count] {
		set[c] = struct{}{}
	}
	return set, nil
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
}
