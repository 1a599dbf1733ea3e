// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package scene

import "github.com/grindlemire/go-scene/internal/layout"

// Point represents an (X, Y) coordinate in pixel space.
type Point = layout.Point

// Size represents a width/height pair in pixels.
type Size = layout.Size

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Axes is a flag pair selecting the X and/or Y axis.
type Axes = layout.Axes

const (
	AxesNone = layout.AxesNone
	AxesX    = layout.AxesX
	AxesY    = layout.AxesY
	AxesBoth = layout.AxesBoth
)

// Anchor identifies a relative point in a reference rectangle.
type Anchor = layout.Anchor

// The nine canonical anchor positions.
var (
	TopLeft      = layout.TopLeft
	TopCentre    = layout.TopCentre
	TopRight     = layout.TopRight
	CentreLeft   = layout.CentreLeft
	Centre       = layout.Centre
	CentreRight  = layout.CentreRight
	BottomLeft   = layout.BottomLeft
	BottomCentre = layout.BottomCentre
	BottomRight  = layout.BottomRight
)

// Geometry holds the rectangles computed for a node by [Resolve].
type Geometry = layout.Geometry

// Structural errors reported by [Resolve].
var (
	ErrCycle        = layout.ErrCycle
	ErrAxisConflict = layout.ErrAxisConflict
)

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// Relative creates an anchor at an arbitrary relative point in [0, 1]².
func Relative(rx, ry float64) Anchor {
	return layout.Relative(rx, ry)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float64) Edges {
	return layout.EdgeAll(v)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(vertical, horizontal float64) Edges {
	return layout.EdgeSymmetric(vertical, horizontal)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(top, right, bottom, left float64) Edges {
	return layout.EdgeTRBL(top, right, bottom, left)
}

// Resolve computes draw, layout, children, and render geometry for every node
// in the tree against a viewport of the given size. The tree must not be
// mutated while a resolve is running.
func Resolve(root Node, viewportWidth, viewportHeight float64) error {
	if err := layout.Resolve(root, viewportWidth, viewportHeight); err != nil {
		return err
	}
	clearDirty(root)
	return nil
}

func clearDirty(n Node) {
	n.base().dirty = false
	if c, ok := n.(*Container); ok {
		for _, child := range c.children {
			clearDirty(child)
		}
	}
}
