package scene

import (
	"fmt"
	"image/color"
)

// Option configures a node at construction time.
type Option func(Node)

// --- Dimension options ---

// WithWidth sets the authored width in pixels (or a fraction if the X axis is
// made relative).
func WithWidth(w float64) Option {
	return func(n Node) {
		n.base().spec.Size.Width = w
	}
}

// WithHeight sets the authored height in pixels (or a fraction if the Y axis
// is made relative).
func WithHeight(h float64) Option {
	return func(n Node) {
		n.base().spec.Size.Height = h
	}
}

// WithSize sets both authored dimensions.
func WithSize(w, h float64) Option {
	return func(n Node) {
		n.base().spec.Size = Size{Width: w, Height: h}
	}
}

// WithRelativeSizeAxes selects which axes of the authored size are fractions
// of the parent's children frame rather than absolute pixels.
func WithRelativeSizeAxes(a Axes) Option {
	return func(n Node) {
		n.base().spec.RelativeSizeAxes = a
	}
}

// --- Placement options ---

// WithPosition sets the offset from the resolved anchor point.
func WithPosition(x, y float64) Option {
	return func(n Node) {
		n.base().spec.Position = Point{X: x, Y: y}
	}
}

// WithX sets the X offset from the resolved anchor point.
func WithX(x float64) Option {
	return func(n Node) {
		n.base().spec.Position.X = x
	}
}

// WithY sets the Y offset from the resolved anchor point.
func WithY(y float64) Option {
	return func(n Node) {
		n.base().spec.Position.Y = y
	}
}

// WithAnchor sets the point in the parent's children frame the node attaches
// to.
func WithAnchor(a Anchor) Option {
	return func(n Node) {
		n.base().spec.Anchor = a
	}
}

// WithOrigin sets the point in the node that is placed at the anchor.
func WithOrigin(a Anchor) Option {
	return func(n Node) {
		n.base().spec.Origin = a
	}
}

// WithMargin sets the node's margin.
func WithMargin(e Edges) Option {
	return func(n Node) {
		n.base().spec.Margin = e
	}
}

// --- Container options ---

// WithChildren adds the given children to a container.
func WithChildren(children ...Node) Option {
	return func(n Node) {
		asContainer(n, "WithChildren").Add(children...)
	}
}

// WithPadding sets a container's padding.
func WithPadding(e Edges) Option {
	return func(n Node) {
		asContainer(n, "WithPadding").frame.Padding = e
	}
}

// WithAutoSizeAxes selects axes on which a container sizes itself to the
// extent of its children.
func WithAutoSizeAxes(a Axes) Option {
	return func(n Node) {
		asContainer(n, "WithAutoSizeAxes").frame.AutoSizeAxes = a
	}
}

// WithMasking sets whether a container clips children to its bounds.
// Masking is enabled by default.
func WithMasking(masking bool) Option {
	return func(n Node) {
		asContainer(n, "WithMasking").frame.Masking = masking
	}
}

func asContainer(n Node, opt string) *Container {
	c, ok := n.(*Container)
	if !ok {
		panic(fmt.Sprintf("scene: %s applies only to containers, got %T", opt, n))
	}
	return c
}

// --- Box options ---

// WithGradient fills a box with a gradient instead of its solid colour.
func WithGradient(g *Gradient) Option {
	return func(n Node) {
		b, ok := n.(*Box)
		if !ok {
			panic(fmt.Sprintf("scene: WithGradient applies only to boxes, got %T", n))
		}
		b.gradient = g
	}
}

// --- Sprite options ---

// WithSizeToImage makes a sprite track the size of its image.
func WithSizeToImage() Option {
	return func(n Node) {
		s, ok := n.(*Sprite)
		if !ok {
			panic(fmt.Sprintf("scene: WithSizeToImage applies only to sprites, got %T", n))
		}
		s.sizeToImage = true
		if s.img != nil {
			b := s.img.Bounds()
			s.spec.Size = Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
		}
	}
}

// --- Text options ---

// WithTextColour sets the colour text is drawn with.
func WithTextColour(c color.Color) Option {
	return func(n Node) {
		t, ok := n.(*Text)
		if !ok {
			panic(fmt.Sprintf("scene: WithTextColour applies only to text, got %T", n))
		}
		t.colour = c
	}
}

// WithTextMode sets how text fits its drawable.
func WithTextMode(m TextMode) Option {
	return func(n Node) {
		t, ok := n.(*Text)
		if !ok {
			panic(fmt.Sprintf("scene: WithTextMode applies only to text, got %T", n))
		}
		t.mode = m
	}
}

// WithLineSpacing sets the vertical space between wrapped lines.
func WithLineSpacing(px float64) Option {
	return func(n Node) {
		t, ok := n.(*Text)
		if !ok {
			panic(fmt.Sprintf("scene: WithLineSpacing applies only to text, got %T", n))
		}
		t.lineSpacing = px
	}
}
