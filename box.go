package scene

import "image/color"

// Box is a node that draws as a filled rectangle, either a solid colour or a
// gradient.
type Box struct {
	Drawable

	fill     color.Color
	gradient *Gradient
}

// NewBox creates a box filled with the given colour.
func NewBox(fill color.Color, opts ...Option) *Box {
	b := &Box{
		Drawable: newDrawable(),
		fill:     fill,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Fill returns the box's solid fill colour.
func (b *Box) Fill() color.Color { return b.fill }

// SetFill sets the box's solid fill colour.
func (b *Box) SetFill(c color.Color) {
	b.fill = c
	b.MarkDirty()
}

// Gradient returns the box's gradient fill, or nil for a solid fill.
func (b *Box) Gradient() *Gradient { return b.gradient }

// SetGradient fills the box with a gradient instead of its solid colour.
// Pass nil to revert to the solid fill.
func (b *Box) SetGradient(g *Gradient) {
	b.gradient = g
	b.MarkDirty()
}
