package scene

import "github.com/grindlemire/go-scene/internal/layout"

// Node is anything that can be placed in a scene tree and rendered into a
// static image. All implementations embed [Drawable]; the interface cannot be
// satisfied outside this package.
type Node interface {
	layout.Node

	base() *Drawable
	paint(p painter) error
}

// Drawable holds the layout state shared by every node kind: the authored
// size, position, anchor, origin, margin, and relative-size axes, plus the
// geometry computed by the last resolve pass.
//
// Computed geometry is undefined before the first call to [Resolve] and is
// recomputed in full on every resolve.
type Drawable struct {
	spec   layout.Spec
	geom   layout.Geometry
	parent *Container
	dirty  bool
}

func newDrawable() Drawable {
	return Drawable{spec: layout.DefaultSpec(), dirty: true}
}

func (d *Drawable) base() *Drawable { return d }

// LayoutSpec returns the authored layout inputs for this node.
func (d *Drawable) LayoutSpec() layout.Spec { return d.spec }

// SetGeometry is called by the layout engine to store computed geometry.
func (d *Drawable) SetGeometry(g Geometry) { d.geom = g }

// Geometry returns the geometry computed by the last resolve pass.
func (d *Drawable) Geometry() Geometry { return d.geom }

// Parent returns the container this node belongs to, or nil for a root.
// The back-link is only for looking up context; mutate the tree through the
// parent's Add and Remove.
func (d *Drawable) Parent() *Container { return d.parent }

// IsDirty returns whether the node's subtree changed since the last resolve.
func (d *Drawable) IsDirty() bool { return d.dirty }

// MarkDirty marks this node and its ancestors as changed since the last
// resolve. Setters call this automatically.
func (d *Drawable) MarkDirty() {
	d.dirty = true
	for c := d.parent; c != nil && !c.dirty; c = c.parent {
		c.dirty = true
	}
}
