package maze

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedRNG never reorders and returns queued Intn values (0 when empty).
type scriptedRNG struct {
	ints []int
}

func (r *scriptedRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRNG) Shuffle(n int, swap func(i, j int)) {}

// roadEdges counts orthogonal road-road adjacencies.
func roadEdges(g *Grid) int {
	edges := 0
	for _, c := range g.Roads() {
		if g.IsRoad(c.Add(1, 0)) {
			edges++
		}
		if g.IsRoad(c.Add(0, 1)) {
			edges++
		}
	}
	return edges
}

func TestGenerateRejectsTinyGrid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"narrow", 2, 5},
		{"flat", 5, 2},
		{"empty", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Generate(tc.w, tc.h, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrGridTooSmall) {
				t.Fatalf("Generate(%d, %d) error = %v, expected ErrGridTooSmall", tc.w, tc.h, err)
			}
			if g != nil {
				t.Error("Generate should not return a grid on error")
			}
		})
	}
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := []struct{ w, h int }{
		{3, 3}, {5, 5}, {7, 9}, {21, 15}, {31, 31}, {32, 30},
	}

	for _, size := range sizes {
		for seed := int64(1); seed <= 20; seed++ {
			g, err := Generate(size.w, size.h, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("Generate(%d, %d) failed: %v", size.w, size.h, err)
			}

			if !g.IsRoad(Start) {
				t.Fatalf("%dx%d seed %d: start is not road", size.w, size.h, seed)
			}

			roads := g.CountRoads()
			if want := 2*NodeCount(size.w, size.h) - 1; roads != want {
				t.Errorf("%dx%d seed %d: %d roads, expected %d", size.w, size.h, seed, roads, want)
			}

			// Connected: every road is reachable from start.
			if reached := len(Distances(g, Start)); reached != roads {
				t.Errorf("%dx%d seed %d: reached %d of %d roads", size.w, size.h, seed, reached, roads)
			}

			// Acyclic: a connected graph is a tree iff edges = nodes - 1.
			if edges := roadEdges(g); edges != roads-1 {
				t.Errorf("%dx%d seed %d: %d edges for %d roads, not a tree", size.w, size.h, seed, edges, roads)
			}

			for x := 0; x < g.W; x++ {
				if g.IsRoad(C(x, 0)) || g.IsRoad(C(x, g.H-1)) {
					t.Fatalf("%dx%d seed %d: border road at column %d", size.w, size.h, seed, x)
				}
			}
			for y := 0; y < g.H; y++ {
				if g.IsRoad(C(0, y)) || g.IsRoad(C(g.W-1, y)) {
					t.Fatalf("%dx%d seed %d: border road at row %d", size.w, size.h, seed, y)
				}
			}
		}
	}
}

func TestGenerateScriptedCarveOrder(t *testing.T) {
	// With no shuffling every node tries right, left, down, up in order.
	g, err := Generate(5, 5, &scriptedRNG{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	expected := "#####\n" +
		"#...#\n" +
		"###.#\n" +
		"#...#\n" +
		"#####"
	if g.String() != expected {
		t.Fatalf("Generate(5, 5) =\n%s\nexpected\n%s", g, expected)
	}

	// 25 cells minus the 16-cell perimeter leaves 9 interior cells; the
	// centre and one connector stay wall in any perfect 5x5 maze.
	if g.CountRoads() != 7 {
		t.Errorf("CountRoads() = %d, expected 7", g.CountRoads())
	}
	if edges := roadEdges(g); edges != 6 {
		t.Errorf("road graph has %d edges, expected 6", edges)
	}

	goal := LocateGoal(g, Start)
	if goal != C(1, 3) {
		t.Errorf("LocateGoal() = %v, expected (1,3)", goal)
	}
	if d := Distances(g, Start)[goal]; d != 6 {
		t.Errorf("goal depth = %d, expected 6", d)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	a, err := Generate(32, 30, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(32, 30, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a.String() != b.String() {
		t.Error("same seed should produce the same maze")
	}

	c, err := Generate(32, 30, rand.New(rand.NewSource(43)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a.String() == c.String() {
		t.Error("different seeds should produce different mazes")
	}
}

func TestGenerateLargeGrid(t *testing.T) {
	// Deep carve paths must not depend on call stack depth.
	g, err := Generate(401, 401, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if want := 2*NodeCount(401, 401) - 1; g.CountRoads() != want {
		t.Errorf("CountRoads() = %d, expected %d", g.CountRoads(), want)
	}
}

func TestEvenDimensionsLeaveWallLine(t *testing.T) {
	g, err := Generate(32, 30, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for y := 0; y < g.H; y++ {
		if g.IsRoad(C(30, y)) {
			t.Fatalf("column 30 should stay wall, road at row %d", y)
		}
	}
	for x := 0; x < g.W; x++ {
		if g.IsRoad(C(x, 28)) {
			t.Fatalf("row 28 should stay wall, road at column %d", x)
		}
	}
}

func TestNodeCount(t *testing.T) {
	tests := []struct {
		w, h, expected int
	}{
		{5, 5, 4},
		{3, 3, 1},
		{4, 4, 1},
		{32, 30, 210},
		{2, 9, 0},
	}

	for _, tc := range tests {
		if got := NodeCount(tc.w, tc.h); got != tc.expected {
			t.Errorf("NodeCount(%d, %d) = %d, expected %d", tc.w, tc.h, got, tc.expected)
		}
	}
}

func TestParseGrid(t *testing.T) {
	g := ParseGrid(
		"###",
		"#.",
		"###",
	)
	if g.W != 3 || g.H != 3 {
		t.Fatalf("ParseGrid size = %dx%d, expected 3x3", g.W, g.H)
	}
	if !g.IsRoad(C(1, 1)) {
		t.Error("(1,1) should be road")
	}
	if g.IsRoad(C(2, 1)) {
		t.Error("short rows should be padded with wall")
	}
	if g.Get(C(-1, 0)) != Wall || g.Get(C(3, 3)) != Wall {
		t.Error("out-of-bounds cells should read as wall")
	}
}
