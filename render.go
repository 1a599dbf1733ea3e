package scene

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// painter carries rasterization state down the tree: the destination image,
// the absolute pixel offset of the current coordinate space, and the clip
// rectangle inherited from masking ancestors.
type painter struct {
	dst    *image.RGBA
	offset Point
	clip   image.Rectangle
}

// Render resolves the scene and rasterizes it into a transparent image of the
// given pixel size. Children paint over their parents, and later siblings
// over earlier ones.
func Render(root Node, width, height int) (*image.RGBA, error) {
	if err := Resolve(root, float64(width), float64(height)); err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if err := root.paint(painter{dst: dst, clip: dst.Bounds()}); err != nil {
		return nil, err
	}
	return dst, nil
}

func (c *Container) paint(p painter) error {
	abs := c.geom.Draw.Translate(p.offset.X, p.offset.Y)

	child := painter{dst: p.dst, offset: abs.Position(), clip: p.clip}
	if c.frame.Masking {
		child.clip = p.clip.Intersect(pixelRect(abs))
		if child.clip.Empty() {
			return nil
		}
	}

	for _, node := range c.children {
		if err := node.paint(child); err != nil {
			return err
		}
	}
	return nil
}

func (b *Box) paint(p painter) error {
	target := pixelRect(b.geom.Draw.Translate(p.offset.X, p.offset.Y))
	area := target.Intersect(p.clip)
	if area.Empty() {
		return nil
	}

	if b.gradient != nil {
		b.gradient.draw(p.dst, area, target)
		return nil
	}
	if b.fill == nil {
		return nil
	}
	draw.Draw(p.dst, area, image.NewUniform(b.fill), image.Point{}, draw.Over)
	return nil
}

func (s *Sprite) paint(p painter) error {
	if s.img == nil {
		return nil
	}
	target := pixelRect(s.geom.Draw.Translate(p.offset.X, p.offset.Y))
	if target.Empty() || target.Intersect(p.clip).Empty() {
		return nil
	}

	scaled := image.NewRGBA(image.Rect(0, 0, target.Dx(), target.Dy()))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), s.img, s.img.Bounds(), xdraw.Src, nil)
	compose(p.dst, target.Intersect(p.clip), scaled, target)
	return nil
}

func (t *Text) paint(p painter) error {
	if t.font == nil || t.content == "" {
		return nil
	}
	abs := t.geom.Draw.Translate(p.offset.X, p.offset.Y)

	switch t.mode {
	case TextWrap:
		lines := t.wrapLines(abs.Width)
		lineHeight := t.font.lineHeight()
		total := float64(len(lines))*lineHeight + float64(len(lines)-1)*t.lineSpacing
		y := abs.Y + t.spec.Anchor.RY*(abs.Height-total)
		for _, line := range lines {
			t.placeLine(p, t.lineImage(line), abs, y)
			y += lineHeight + t.lineSpacing
		}

	case TextSquish:
		line := t.lineImage(t.content)
		if float64(line.Bounds().Dx()) <= abs.Width {
			t.placeLine(p, line, abs, abs.Y)
			return nil
		}
		target := pixelRect(abs)
		if target.Empty() {
			return nil
		}
		squished := image.NewRGBA(image.Rect(0, 0, target.Dx(), target.Dy()))
		xdraw.ApproxBiLinear.Scale(squished, squished.Bounds(), line, line.Bounds(), xdraw.Src, nil)
		compose(p.dst, target.Intersect(p.clip), squished, target)

	default:
		t.placeLine(p, t.lineImage(t.content), abs, abs.Y)
	}
	return nil
}

// placeLine composes one rasterized line, aligned horizontally within the
// drawable by the node's anchor.
func (t *Text) placeLine(p painter, line *image.RGBA, abs Rect, y float64) {
	x := abs.X + t.spec.Anchor.RX*(abs.Width-float64(line.Bounds().Dx()))
	target := line.Bounds().Add(image.Pt(int(math.Round(x)), int(math.Round(y))))
	compose(p.dst, target.Intersect(p.clip), line, target)
}

func (t *SpriteText) paint(p painter) error {
	if t.font == nil || t.content == "" {
		return nil
	}
	rendered, err := t.font.render(t.content)
	if err != nil {
		return err
	}
	target := pixelRect(t.geom.Draw.Translate(p.offset.X, p.offset.Y))
	compose(p.dst, target.Intersect(p.clip), rendered, target)
	return nil
}

// compose draws src over dst inside area, aligning src's origin with target's
// top-left corner. area must be a sub-rectangle of target.
func compose(dst *image.RGBA, area image.Rectangle, src image.Image, target image.Rectangle) {
	area = area.Intersect(dst.Bounds())
	if area.Empty() {
		return
	}
	draw.Draw(dst, area, src, src.Bounds().Min.Add(area.Min.Sub(target.Min)), draw.Over)
}

// pixelRect converts a rectangle to pixel coordinates by rounding its edges.
func pixelRect(r Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)), int(math.Round(r.Y)),
		int(math.Round(r.Right())), int(math.Round(r.Bottom())),
	)
}

// ceilPositive rounds a dimension up to whole pixels, clamping negatives.
func ceilPositive(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Ceil(v))
}
