package maze

// IsRevealed reports whether a fake wall is shown as road: true only when
// the player is orthogonally adjacent to it. Standing on the cell or
// touching it diagonally keeps it hidden.
func IsRevealed(fake, player Cell) bool {
	return fake.Manhattan(player) == 1
}
