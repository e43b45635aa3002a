package mapgen

// Sprite enumerates the tile visuals the baker assigns to grid.Tile's
// SpriteIndex. Named after original_source/src/sprite.cpp's TILE_* table;
// only the subset the baker and match loop actually reference is kept —
// the remaining ~30 cosmetic blob-autotile variants the original table
// carries (inner corners split by wall thickness, alternate stair treads,
// etc.) collapse onto the nearest sprite here, since SpriteIndex is read
// only by a future renderer and never by simulation logic (see DESIGN.md).
type Sprite uint16

const (
	SpriteSand Sprite = iota
	SpriteSand2
	SpriteSand3
	SpriteWater

	SpriteWallNWCorner
	SpriteWallNECorner
	SpriteWallSWCorner
	SpriteWallSECorner
	SpriteWallNorthEdge
	SpriteWallWestEdge
	SpriteWallEastEdge
	SpriteWallSouthEdge
	SpriteWallSWFront
	SpriteWallSouthFront
	SpriteWallSEFront

	SpriteStairSouthLeft
	SpriteStairSouthCenter
	SpriteStairSouthRight
	SpriteStairSouthFrontLeft
	SpriteStairSouthFrontCenter
	SpriteStairSouthFrontRight
	SpriteStairNorthLeft
	SpriteStairNorthCenter
	SpriteStairNorthRight
	SpriteStairWestTop
	SpriteStairWestCenter
	SpriteStairWestBottom
	SpriteStairEastTop
	SpriteStairEastCenter
	SpriteStairEastBottom
)

func isSand(s Sprite) bool {
	return s == SpriteSand || s == SpriteSand2 || s == SpriteSand3
}

func isRampSprite(s Sprite) bool {
	return s >= SpriteStairSouthLeft && s <= SpriteStairEastBottom
}
