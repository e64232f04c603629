package maze

// LocateGoal returns the last cell dequeued by a breadth-first walk over
// road cells from start.
//
// BFS dequeues every cell of depth d before any of depth d+1, so the last
// dequeued cell sits at maximum depth. Among cells tied at that depth the
// result is the one enqueued last, which follows from the neighbour order
// (1,0), (-1,0), (0,1), (0,-1). The result is a farthest cell in path length
// only because Generate produces a tree.
func LocateGoal(g *Grid, start Cell) Cell {
	visited := make([]bool, g.W*g.H)
	queue := []Cell{start}
	if g.InBounds(start) {
		visited[g.index(start)] = true
	}

	farthest := start
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		farthest = cur

		for _, d := range neighbors4 {
			n := cur.Add(d.X, d.Y)
			if !g.InBounds(n) || visited[g.index(n)] || g.Get(n) != Road {
				continue
			}
			visited[g.index(n)] = true
			queue = append(queue, n)
		}
	}
	return farthest
}

// Distances returns the BFS depth of every road cell reachable from start.
func Distances(g *Grid, start Cell) map[Cell]int {
	dist := map[Cell]int{start: 0}
	queue := []Cell{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbors4 {
			n := cur.Add(d.X, d.Y)
			if _, seen := dist[n]; seen || !g.IsRoad(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}
