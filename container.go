package scene

import "github.com/grindlemire/go-scene/internal/layout"

// Container is a node that hosts children inside a padded frame. It owns its
// children exclusively: a node belongs to at most one container at a time,
// and adding it elsewhere reparents it.
type Container struct {
	Drawable

	frame    layout.FrameSpec
	children []Node
}

var _ layout.Parent = (*Container)(nil)

// NewContainer creates a container with the given options.
// Masking is enabled by default.
func NewContainer(opts ...Option) *Container {
	c := &Container{
		Drawable: newDrawable(),
		frame:    layout.DefaultFrameSpec(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FrameSpec returns the authored container inputs for the layout engine.
func (c *Container) FrameSpec() layout.FrameSpec { return c.frame }

// ChildNodes returns the children as layout nodes, in declared order.
func (c *Container) ChildNodes() []layout.Node {
	nodes := make([]layout.Node, len(c.children))
	for i, child := range c.children {
		nodes[i] = child
	}
	return nodes
}

// Add appends children to this container, detaching each from any previous
// parent first.
func (c *Container) Add(children ...Node) {
	for _, child := range children {
		if prev := child.base().parent; prev != nil {
			prev.Remove(child)
		}
		child.base().parent = c
		c.children = append(c.children, child)
	}
	c.MarkDirty()
}

// AddAt inserts a child at the given index in the child sequence. An index
// of -1 (or past the end) appends.
func (c *Container) AddAt(child Node, index int) {
	if prev := child.base().parent; prev != nil {
		prev.Remove(child)
	}
	child.base().parent = c

	if index < 0 || index >= len(c.children) {
		c.children = append(c.children, child)
	} else {
		c.children = append(c.children[:index], append([]Node{child}, c.children[index:]...)...)
	}
	c.MarkDirty()
}

// Remove removes a child from this container.
// Returns true if the child was found and removed.
func (c *Container) Remove(child Node) bool {
	for i, existing := range c.children {
		if existing == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			child.base().parent = nil
			c.MarkDirty()
			return true
		}
	}
	return false
}

// RemoveAll removes all children from this container.
func (c *Container) RemoveAll() {
	for _, child := range c.children {
		child.base().parent = nil
	}
	c.children = nil
	c.MarkDirty()
}

// Children returns the child nodes in declared order. Later children paint
// over earlier ones.
func (c *Container) Children() []Node { return c.children }

// Padding returns the container's padding.
func (c *Container) Padding() Edges { return c.frame.Padding }

// SetPadding sets the container's padding.
func (c *Container) SetPadding(e Edges) {
	c.frame.Padding = e
	c.MarkDirty()
}

// AutoSizeAxes returns the axes on which the container sizes itself to its
// children.
func (c *Container) AutoSizeAxes() Axes { return c.frame.AutoSizeAxes }

// SetAutoSizeAxes selects axes on which the container sizes itself to the
// extent of its children. Mutually exclusive per axis with relative sizing.
func (c *Container) SetAutoSizeAxes(a Axes) {
	c.frame.AutoSizeAxes = a
	c.MarkDirty()
}

// Masking returns whether the container clips children to its bounds.
func (c *Container) Masking() bool { return c.frame.Masking }

// SetMasking sets whether the container clips children to its bounds. When
// disabled the container reports expanded render bounds so overflowing
// children stay drawable.
func (c *Container) SetMasking(masking bool) {
	c.frame.Masking = masking
	c.MarkDirty()
}

// ChildrenRect returns the frame children resolved against, in this
// container's own space.
func (c *Container) ChildrenRect() Rect { return c.geom.Children }

// RenderRect returns the reported canvas in this container's own space.
func (c *Container) RenderRect() Rect { return c.geom.Render }
