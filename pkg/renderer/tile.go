package renderer

import "image"

// NewTileGrid splits the image into tile rectangles of at most tileSize on a
// side. Tiles never overlap, so concurrent workers can write their pixels to
// a shared framebuffer without locking.
func NewTileGrid(width, height, tileSize int) []image.Rectangle {
	var tiles []image.Rectangle
	for y := 0; y < height; y += tileSize {
		for x := 0; x < width; x += tileSize {
			tiles = append(tiles, image.Rect(x, y, min(x+tileSize, width), min(y+tileSize, height)))
		}
	}
	return tiles
}
