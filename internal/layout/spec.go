package layout

// Spec holds the authored layout inputs shared by every node.
type Spec struct {
	// Size is the requested size in pixels. On an axis selected by
	// RelativeSizeAxes it is instead a fraction of the parent frame.
	Size Size

	// Position offsets the node from its resolved anchor point.
	Position Point

	// Anchor is the point in the parent's children frame this node
	// attaches to.
	Anchor Anchor

	// Origin is the point in this node's own draw rectangle that is
	// placed at the anchor.
	Origin Anchor

	// Margin expands the node's layout rectangle without affecting
	// its draw rectangle.
	Margin Edges

	// RelativeSizeAxes selects which axes of Size are fractions of the
	// parent frame rather than absolute pixels.
	RelativeSizeAxes Axes
}

// DefaultSpec returns a Spec with the default anchor and origin.
func DefaultSpec() Spec {
	return Spec{
		Anchor: TopLeft,
		Origin: TopLeft,
	}
}

// FrameSpec holds the authored inputs specific to container nodes.
type FrameSpec struct {
	// Padding shrinks the children frame inward from the container's
	// draw rectangle.
	Padding Edges

	// AutoSizeAxes selects axes on which the container sizes itself to
	// the extent of its children. Mutually exclusive per axis with the
	// container's RelativeSizeAxes.
	AutoSizeAxes Axes

	// Masking clips children to the container's draw rectangle. When
	// false the container reports expanded render bounds instead.
	Masking bool
}

// DefaultFrameSpec returns a FrameSpec with masking enabled.
func DefaultFrameSpec() FrameSpec {
	return FrameSpec{Masking: true}
}
