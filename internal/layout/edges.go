package layout

// Edges represents spacing on four sides of a rectangle.
// Used for both margin (outside the draw rectangle) and padding (inside it).
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float64) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(vertical, horizontal float64) Edges {
	return Edges{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(top, right, bottom, left float64) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal returns the combined left and right spacing.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom spacing.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}
