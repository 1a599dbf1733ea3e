package layout

// Anchor identifies a point in a reference rectangle as a pair of fractions
// in [0, 1] of the rectangle's width and height. The nine canonical positions
// are provided as package variables; [Relative] builds an arbitrary one.
//
// An anchor is resolved against the parent's children frame to place a node,
// and against the node's own draw size when used as an origin.
type Anchor struct {
	RX, RY float64
}

// The nine canonical anchor positions.
var (
	TopLeft      = Anchor{0, 0}
	TopCentre    = Anchor{0.5, 0}
	TopRight     = Anchor{1, 0}
	CentreLeft   = Anchor{0, 0.5}
	Centre       = Anchor{0.5, 0.5}
	CentreRight  = Anchor{1, 0.5}
	BottomLeft   = Anchor{0, 1}
	BottomCentre = Anchor{0.5, 1}
	BottomRight  = Anchor{1, 1}
)

// Relative creates an anchor at an arbitrary relative point.
// Fractions are clamped to [0, 1].
func Relative(rx, ry float64) Anchor {
	return Anchor{RX: min(max(rx, 0), 1), RY: min(max(ry, 0), 1)}
}

// Point resolves the anchor against a reference rectangle.
func (a Anchor) Point(r Rect) Point {
	return Point{
		X: r.X + a.RX*r.Width,
		Y: r.Y + a.RY*r.Height,
	}
}

// Offset resolves the anchor against a size, as used for origins.
func (a Anchor) Offset(s Size) Point {
	return Point{X: a.RX * s.Width, Y: a.RY * s.Height}
}
