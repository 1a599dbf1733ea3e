package layout

// Node is the interface for anything that can participate in layout
// resolution. The engine works entirely with this interface, enabling
// custom implementations.
//
// The engine is the only writer of geometry during [Resolve]; callers must
// not mutate the tree or any authored property while a resolve is running.
type Node interface {
	// LayoutSpec returns the authored layout inputs for this node.
	LayoutSpec() Spec

	// SetGeometry is called by the engine to store computed geometry.
	SetGeometry(Geometry)

	// Geometry returns the last computed geometry.
	Geometry() Geometry
}

// Parent is implemented by nodes that host children inside a padded frame.
// The engine feeds each child the parent's children frame and, for auto-sized
// axes, aggregates children layout rectangles back up.
type Parent interface {
	Node

	// FrameSpec returns the authored container inputs for this node.
	FrameSpec() FrameSpec

	// ChildNodes returns the children in declared order.
	ChildNodes() []Node
}
