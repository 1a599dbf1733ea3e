package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrCycle is returned when a node is reachable through more than one
	// path from the root, either because the parent chain loops or because
	// the node appears in more than one child list.
	ErrCycle = errors.New("layout: node reachable through more than one path")

	// ErrAxisConflict is returned when a container declares both relative
	// size and auto size on the same axis. Auto size is defined by the
	// container's children while relative size is defined by its parent;
	// the two cannot hold simultaneously.
	ErrAxisConflict = errors.New("layout: relative-size and auto-size declared on the same axis")
)

// Resolve computes the geometry of every node in the tree against a viewport
// of the given size. The viewport acts as the root's parent frame, positioned
// at the origin.
//
// Resolution is a full recomputation: every computed field of every node is
// overwritten. On error no geometry should be trusted; computed fields may
// have been partially written.
func Resolve(root Node, viewportWidth, viewportHeight float64) error {
	if root == nil {
		return errors.New("layout: nil root")
	}
	if err := validate(root); err != nil {
		return err
	}
	frame := Rect{Width: max(viewportWidth, 0), Height: max(viewportHeight, 0)}
	resolveNode(root, frame)
	return nil
}

// validate walks the tree before any geometry is written, failing fast on
// structural errors: aliased or cyclic nodes and per-axis sizing conflicts.
func validate(root Node) error {
	seen := make(map[Node]struct{})
	var walk func(n Node) error
	walk = func(n Node) error {
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w", ErrCycle)
		}
		seen[n] = struct{}{}

		p, ok := n.(Parent)
		if !ok {
			return nil
		}
		if conflict := n.LayoutSpec().RelativeSizeAxes & p.FrameSpec().AutoSizeAxes; conflict != AxesNone {
			return fmt.Errorf("%w (axes %v)", ErrAxisConflict, conflict)
		}
		for _, child := range p.ChildNodes() {
			if child == nil {
				return errors.New("layout: nil child node")
			}
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

// resolveNode computes the geometry of n within parentFrame and recurses into
// children. parentFrame is the children frame of n's parent (or the viewport
// for the root), expressed in the parent's own space.
func resolveNode(n Node, parentFrame Rect) {
	spec := n.LayoutSpec()

	parent, isParent := n.(Parent)
	var auto Axes
	if isParent {
		auto = parent.FrameSpec().AutoSizeAxes
	}

	size := provisionalSize(spec, parentFrame, auto)

	var geom Geometry
	if isParent {
		frame := parent.FrameSpec()
		children := parent.ChildNodes()

		// First sub-pass: resolve children against the provisional frame.
		// Deferred (auto) axes carry a provisional size of 0 here, so a
		// child that relative-sizes on an auto axis measures as 0 on it.
		childFrame := contentFrame(size, frame.Padding)
		for _, child := range children {
			resolveNode(child, childFrame)
		}

		if auto != AxesNone {
			if auto.Has(AxesX) {
				size.Width = autoExtent(children, frame.Padding.Right, extentRight)
			}
			if auto.Has(AxesY) {
				size.Height = autoExtent(children, frame.Padding.Bottom, extentBottom)
			}

			// Second sub-pass: anchors and relative sizes that depended
			// on the deferred axis settle against the back-filled frame.
			childFrame = contentFrame(size, frame.Padding)
			for _, child := range children {
				resolveNode(child, childFrame)
			}
		}

		geom.Children = childFrame
		geom.Render = renderBounds(size, frame.Masking, children)
	}

	pos := place(spec, size, parentFrame)
	geom.Draw = Rect{X: pos.X, Y: pos.Y, Width: size.Width, Height: size.Height}
	geom.Layout = geom.Draw.Expand(spec.Margin)
	n.SetGeometry(geom)
}

// provisionalSize computes the node's draw size on each axis independently:
// the authored pixel value for absolute axes, the parent frame scaled by the
// authored fraction minus margin for relative axes, and 0 for deferred auto
// axes. Results are clamped so a dimension never goes negative.
func provisionalSize(spec Spec, parentFrame Rect, auto Axes) Size {
	var s Size

	switch {
	case spec.RelativeSizeAxes.Has(AxesX):
		s.Width = parentFrame.Width*spec.Size.Width - spec.Margin.Horizontal()
	case auto.Has(AxesX):
		s.Width = 0
	default:
		s.Width = spec.Size.Width
	}

	switch {
	case spec.RelativeSizeAxes.Has(AxesY):
		s.Height = parentFrame.Height*spec.Size.Height - spec.Margin.Vertical()
	case auto.Has(AxesY):
		s.Height = 0
	default:
		s.Height = spec.Size.Height
	}

	s.Width = max(s.Width, 0)
	s.Height = max(s.Height, 0)
	return s
}

// contentFrame computes the children frame for a container of the given draw
// size: the draw rectangle shrunk by padding, positioned at the padding's
// top-left inset in the container's own space.
func contentFrame(size Size, padding Edges) Rect {
	return Rect{Width: size.Width, Height: size.Height}.Inset(padding)
}

func extentRight(r Rect) float64  { return r.Right() }
func extentBottom(r Rect) float64 { return r.Bottom() }

// autoExtent computes a container's back-filled size on one axis: the far
// edge of the children's layout rectangles plus trailing padding. A container
// with no children auto-sizes to 0.
func autoExtent(children []Node, trailing float64, edge func(Rect) float64) float64 {
	if len(children) == 0 {
		return 0
	}
	var farthest float64
	for _, child := range children {
		farthest = max(farthest, edge(child.Geometry().Layout))
	}
	return max(farthest+trailing, 0)
}

// renderBounds computes the container's reported canvas in its own space.
// Masked containers clip to their draw rectangle. Unmasked containers expand
// to cover every child's layout rectangle, recursively including the render
// bounds of unmasked child containers.
func renderBounds(size Size, masking bool, children []Node) Rect {
	own := Rect{Width: size.Width, Height: size.Height}
	if masking {
		return own
	}
	bounds := own
	for _, child := range children {
		g := child.Geometry()
		bounds = bounds.Union(g.Layout)
		if p, ok := child.(Parent); ok && !p.FrameSpec().Masking {
			bounds = bounds.Union(g.Render.Translate(g.Draw.X, g.Draw.Y))
		}
	}
	return bounds
}

// place resolves the node's draw position in the parent frame: the anchor
// point in the frame, minus the origin offset in the node's own size, plus
// the authored position. Margin then nudges the node away from anchored
// edges: the full leading margin applies at the leading edge, the negated
// trailing margin at the trailing edge, interpolated between.
func place(spec Spec, size Size, parentFrame Rect) Point {
	anchor := spec.Anchor.Point(parentFrame)
	origin := spec.Origin.Offset(size)

	x := anchor.X - origin.X + spec.Position.X
	y := anchor.Y - origin.Y + spec.Position.Y

	x += spec.Margin.Left*(1-spec.Anchor.RX) - spec.Margin.Right*spec.Anchor.RX
	y += spec.Margin.Top*(1-spec.Anchor.RY) - spec.Margin.Bottom*spec.Anchor.RY

	return Point{X: x, Y: y}
}
