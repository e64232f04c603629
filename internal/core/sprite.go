package core

// Tile is how one sprite looks on a character screen: a short run of glyphs
// drawn left to right in a single colour.
type Tile struct {
	Glyphs []rune
	Color  Color
}

// NewTile creates a tile from a glyph string.
func NewTile(glyphs string, c Color) Tile {
	return Tile{Glyphs: []rune(glyphs), Color: c}
}

type atlasKey struct {
	x, y, w, h int
}

// Atlas maps source rectangles of a sprite sheet to terminal tiles, so games
// address sprites by sheet offset the way a pixel renderer would.
type Atlas struct {
	tiles map[atlasKey]Tile
}

// NewAtlas creates an empty atlas.
func NewAtlas() *Atlas {
	return &Atlas{tiles: make(map[atlasKey]Tile)}
}

// Define binds the source rectangle (srcX, srcY, w, h) to a tile.
func (a *Atlas) Define(srcX, srcY, w, h int, t Tile) {
	a.tiles[atlasKey{srcX, srcY, w, h}] = t
}

// Lookup returns the tile bound to a source rectangle.
func (a *Atlas) Lookup(srcX, srcY, w, h int) (Tile, bool) {
	if a == nil {
		return Tile{}, false
	}
	t, ok := a.tiles[atlasKey{srcX, srcY, w, h}]
	return t, ok
}
