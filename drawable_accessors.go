package scene

// --- Authored properties ---

// Width returns the authored width (a fraction if the X axis is relative).
func (d *Drawable) Width() float64 { return d.spec.Size.Width }

// SetWidth sets the authored width.
func (d *Drawable) SetWidth(w float64) {
	d.spec.Size.Width = w
	d.MarkDirty()
}

// Height returns the authored height (a fraction if the Y axis is relative).
func (d *Drawable) Height() float64 { return d.spec.Size.Height }

// SetHeight sets the authored height.
func (d *Drawable) SetHeight(h float64) {
	d.spec.Size.Height = h
	d.MarkDirty()
}

// Size returns the authored size.
func (d *Drawable) Size() Size { return d.spec.Size }

// SetSize sets the authored width and height.
func (d *Drawable) SetSize(w, h float64) {
	d.spec.Size = Size{Width: w, Height: h}
	d.MarkDirty()
}

// Position returns the authored position offset.
func (d *Drawable) Position() Point { return d.spec.Position }

// SetPosition sets the authored position offset from the anchor point.
func (d *Drawable) SetPosition(x, y float64) {
	d.spec.Position = Point{X: x, Y: y}
	d.MarkDirty()
}

// X returns the authored X offset.
func (d *Drawable) X() float64 { return d.spec.Position.X }

// SetX sets the authored X offset.
func (d *Drawable) SetX(x float64) {
	d.spec.Position.X = x
	d.MarkDirty()
}

// Y returns the authored Y offset.
func (d *Drawable) Y() float64 { return d.spec.Position.Y }

// SetY sets the authored Y offset.
func (d *Drawable) SetY(y float64) {
	d.spec.Position.Y = y
	d.MarkDirty()
}

// Anchor returns the point in the parent's children frame this node attaches
// to.
func (d *Drawable) Anchor() Anchor { return d.spec.Anchor }

// SetAnchor sets the anchor.
func (d *Drawable) SetAnchor(a Anchor) {
	d.spec.Anchor = a
	d.MarkDirty()
}

// Origin returns the point in this node that is placed at the anchor.
func (d *Drawable) Origin() Anchor { return d.spec.Origin }

// SetOrigin sets the origin.
func (d *Drawable) SetOrigin(a Anchor) {
	d.spec.Origin = a
	d.MarkDirty()
}

// Margin returns the node's margin.
func (d *Drawable) Margin() Edges { return d.spec.Margin }

// SetMargin sets the node's margin.
func (d *Drawable) SetMargin(e Edges) {
	d.spec.Margin = e
	d.MarkDirty()
}

// RelativeSizeAxes returns which axes are sized relative to the parent frame.
func (d *Drawable) RelativeSizeAxes() Axes { return d.spec.RelativeSizeAxes }

// SetRelativeSizeAxes selects which axes of the authored size are fractions
// of the parent frame rather than absolute pixels.
func (d *Drawable) SetRelativeSizeAxes(a Axes) {
	d.spec.RelativeSizeAxes = a
	d.MarkDirty()
}

// --- Computed geometry (valid after Resolve) ---

// DrawRect returns the computed draw rectangle in the parent's frame space.
func (d *Drawable) DrawRect() Rect { return d.geom.Draw }

// LayoutRect returns the computed draw rectangle expanded by margin. This is
// what an ancestor measures when auto-sizing.
func (d *Drawable) LayoutRect() Rect { return d.geom.Layout }
