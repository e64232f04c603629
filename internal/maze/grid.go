// Package maze implements perfect-maze generation and the queries the
// time trial runs over it: goal placement, fake walls and their visibility.
// It has no dependency on the terminal or audio layers.
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGridTooSmall is returned when a grid dimension is below MinDimension.
	ErrGridTooSmall = errors.New("maze: grid too small")

	// ErrTooFewCandidates is returned when a maze has fewer road cells than
	// the fake wall sampler may need.
	ErrTooFewCandidates = errors.New("maze: too few road cells for fake walls")
)

// MinDimension is the smallest width or height Generate accepts.
const MinDimension = 3

// Tile is the content of a single grid cell.
type Tile uint8

const (
	Wall Tile = iota
	Road
)

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Road:
		return "road"
	default:
		return "unknown"
	}
}

// Cell is a grid coordinate. X grows to the right, Y grows downward.
// Cell is comparable and used directly as a map key.
type Cell struct {
	X, Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another cell.
func (c Cell) Manhattan(other Cell) int {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is a W×H maze stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Tiles []Tile
}

// NewGrid creates a grid with every cell set to Wall.
func NewGrid(w, h int) *Grid {
	// Wall is the zero value.
	return &Grid{
		W:     w,
		H:     h,
		Tiles: make([]Tile, w*h),
	}
}

// ParseGrid builds a grid from rows of '#' (wall) and any other rune (road).
// Rows shorter than the widest row are padded with walls.
func ParseGrid(rows ...string) *Grid {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	g := NewGrid(w, len(rows))
	for y, row := range rows {
		for x, ch := range row {
			if ch != '#' {
				g.Set(C(x, y), Road)
			}
		}
	}
	return g
}

func (g *Grid) index(c Cell) int {
	return c.Y*g.W + c.X
}

// InBounds reports whether the cell lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Interior reports whether the cell lies strictly inside the border.
func (g *Grid) Interior(c Cell) bool {
	return c.X >= 1 && c.X <= g.W-2 && c.Y >= 1 && c.Y <= g.H-2
}

// Get returns the tile at c. Out-of-bounds cells read as Wall.
func (g *Grid) Get(c Cell) Tile {
	if !g.InBounds(c) {
		return Wall
	}
	return g.Tiles[g.index(c)]
}

// Set changes the tile at c. Out-of-bounds writes are ignored.
func (g *Grid) Set(c Cell, t Tile) {
	if g.InBounds(c) {
		g.Tiles[g.index(c)] = t
	}
}

// IsRoad reports whether c is a passable cell.
func (g *Grid) IsRoad(c Cell) bool {
	return g.Get(c) == Road
}

// Roads returns every road cell in row-major order.
func (g *Grid) Roads() []Cell {
	var cells []Cell
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.Tiles[y*g.W+x] == Road {
				cells = append(cells, C(x, y))
			}
		}
	}
	return cells
}

// CountRoads returns the number of road cells.
func (g *Grid) CountRoads() int {
	n := 0
	for _, t := range g.Tiles {
		if t == Road {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	tiles := make([]Tile, len(g.Tiles))
	copy(tiles, g.Tiles)
	return &Grid{W: g.W, H: g.H, Tiles: tiles}
}

// String renders the grid with '#' for walls and '.' for roads.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.W*g.H + g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			if g.Tiles[y*g.W+x] == Road {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}

// neighbors4 is the fixed neighbour enumeration order used by every
// traversal in this package. Goal placement depends on it.
var neighbors4 = [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
