package layout

// Geometry holds the computed rectangles for a node after a resolve pass.
//
// Draw and Layout are expressed in the parent's frame space. Children and
// Render are expressed in the node's own space, where (0, 0) is the top-left
// corner of the draw rectangle; they are only populated for containers.
type Geometry struct {
	// Draw is the final rectangle the node is drawn with.
	Draw Rect

	// Layout is Draw expanded outward by margin. Ancestors measure this
	// rectangle when auto-sizing; it is never drawn.
	Layout Rect

	// Children is the frame children resolve their anchor and relative
	// size against: Draw shrunk by padding, positioned at the padding's
	// top-left inset.
	Children Rect

	// Render is the reported canvas. Equal to the draw rectangle for
	// masked containers; for unmasked containers it is the union of the
	// draw rectangle and every child's layout rectangle, so a rasterizer
	// can draw overflowing children without clipping. Render never feeds
	// back into layout decisions.
	Render Rect
}
