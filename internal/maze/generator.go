package maze

import "fmt"

// RNG is the randomness Generate and PlaceFakeWalls draw from.
// *math/rand.Rand satisfies it; tests can script it.
type RNG interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Start is the fixed cell every maze is carved from and every player starts on.
var Start = Cell{X: 1, Y: 1}

// carveSteps are the 2-step moves between maze nodes, before shuffling.
var carveSteps = [4]Cell{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// frame is one level of the depth-first carve: the node being expanded,
// its shuffled step order and the index of the next step to try.
type frame struct {
	at   Cell
	dirs [4]Cell
	next int
}

// Generate carves a perfect maze into a width×height grid using a
// randomized depth-first backtracker rooted at Start.
//
// Every node shuffles its four 2-step directions once, on entry, and tries
// them in that order; the explicit frame stack replays exactly the visit
// order of the recursive formulation without its depth limit.
//
// Carving never leaves 1..dim-2, so the outer ring is always wall. Even
// dimensions are allowed and leave an extra uncarved line on the far side.
func Generate(width, height int, rng RNG) (*Grid, error) {
	if width < MinDimension || height < MinDimension {
		return nil, fmt.Errorf("generate %dx%d: %w", width, height, ErrGridTooSmall)
	}

	g := NewGrid(width, height)
	g.Set(Start, Road)

	stack := []frame{newFrame(Start, rng)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		d := top.dirs[top.next]
		top.next++

		next := top.at.Add(d.X, d.Y)
		if !g.Interior(next) || g.Get(next) != Wall {
			continue
		}

		g.Set(top.at.Add(d.X/2, d.Y/2), Road)
		g.Set(next, Road)
		// top is invalid after append.
		stack = append(stack, newFrame(next, rng))
	}

	return g, nil
}

func newFrame(at Cell, rng RNG) frame {
	f := frame{at: at, dirs: carveSteps}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// NodeCount returns how many maze nodes (odd-coordinate cells) fit inside
// the border of a width×height grid. A perfect maze has 2*nodes-1 roads.
func NodeCount(width, height int) int {
	if width < MinDimension || height < MinDimension {
		return 0
	}
	return ((width - 1) / 2) * ((height - 1) / 2)
}
