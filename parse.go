package scene

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	_ "image/jpeg"
	_ "image/png"
)

// ParseFile loads a scene tree from an XML markup file. Relative resource
// paths (sprite sources, fonts) resolve against the file's directory.
func ParseFile(path string) (Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: opening markup %q: %w", path, err)
	}
	defer f.Close()
	return Parse(f, filepath.Dir(path))
}

// Parse loads a scene tree from XML markup. dir is the directory relative
// resource paths resolve against.
//
// Markup mirrors the node kinds: <container>, <box>, <sprite>, <text>, and
// <sprite-text> elements, with layout inputs as attributes:
//
//	<container anchor="centre" width="200" height="120" padding="8">
//	    <box colour="#1e90ff" width="1" height="1" relative-size-axes="both"/>
//	    <text font="regular.ttf" size="14" anchor="centre" origin="centre">hi</text>
//	</container>
func Parse(r io.Reader, dir string) (Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("scene: reading markup: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("scene: markup has no root element")
	}

	p := &parser{
		dir:         dir,
		fonts:       make(map[string]*Font),
		spriteFonts: make(map[string]*SpriteFont),
	}
	return p.node(root)
}

// parser builds nodes from markup elements, caching the fonts it loads so
// repeated references share one face.
type parser struct {
	dir         string
	fonts       map[string]*Font
	spriteFonts map[string]*SpriteFont
}

func (p *parser) node(el *etree.Element) (Node, error) {
	var (
		n   Node
		err error
	)
	switch el.Tag {
	case "container":
		n, err = p.container(el)
	case "box":
		n, err = p.box(el)
	case "sprite":
		n, err = p.sprite(el)
	case "text":
		n, err = p.text(el)
	case "sprite-text":
		n, err = p.spriteText(el)
	default:
		return nil, fmt.Errorf("scene: unknown markup element <%s>", el.Tag)
	}
	if err != nil {
		return nil, err
	}
	if err := applyCommonAttrs(el, n); err != nil {
		return nil, fmt.Errorf("scene: <%s>: %w", el.Tag, err)
	}
	return n, nil
}

func (p *parser) container(el *etree.Element) (Node, error) {
	c := NewContainer()

	if raw := el.SelectAttrValue("padding", ""); raw != "" {
		padding, err := parseEdgeList(raw)
		if err != nil {
			return nil, fmt.Errorf("scene: <container>: padding: %w", err)
		}
		c.frame.Padding = padding
	}
	if err := applyEdgeSides(el, "padding", &c.frame.Padding); err != nil {
		return nil, fmt.Errorf("scene: <container>: %w", err)
	}
	if raw := el.SelectAttrValue("auto-size-axes", ""); raw != "" {
		axes, err := parseAxes(raw)
		if err != nil {
			return nil, fmt.Errorf("scene: <container>: auto-size-axes: %w", err)
		}
		c.frame.AutoSizeAxes = axes
	}
	if raw := el.SelectAttrValue("masking", ""); raw != "" {
		masking, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("scene: <container>: masking: %w", err)
		}
		c.frame.Masking = masking
	}

	for _, childEl := range el.ChildElements() {
		child, err := p.node(childEl)
		if err != nil {
			return nil, err
		}
		c.Add(child)
	}
	return c, nil
}

func (p *parser) box(el *etree.Element) (Node, error) {
	fill, err := ParseColour(el.SelectAttrValue("colour", "#ffffff"))
	if err != nil {
		return nil, fmt.Errorf("scene: <box>: %w", err)
	}
	b := NewBox(fill)

	gradient, err := parseGradient(el)
	if err != nil {
		return nil, fmt.Errorf("scene: <box>: %w", err)
	}
	b.gradient = gradient
	return b, nil
}

func (p *parser) sprite(el *etree.Element) (Node, error) {
	src := el.SelectAttrValue("src", "")
	if src == "" {
		return nil, fmt.Errorf("scene: <sprite> needs a src attribute")
	}

	path := filepath.Join(p.dir, src)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: <sprite>: opening %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene: <sprite>: decoding %q: %w", path, err)
	}
	slog.Debug("loaded sprite image", "src", path, "format", format, "bounds", img.Bounds())

	var opts []Option
	if raw := el.SelectAttrValue("size-to-image", ""); raw != "" {
		sized, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("scene: <sprite>: size-to-image: %w", err)
		}
		if sized {
			opts = append(opts, WithSizeToImage())
		}
	}
	return NewSprite(img, opts...), nil
}

func (p *parser) text(el *etree.Element) (Node, error) {
	src := el.SelectAttrValue("font", "")
	if src == "" {
		return nil, fmt.Errorf("scene: <text> needs a font attribute")
	}
	size := 16.0
	if raw := el.SelectAttrValue("size", ""); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("scene: <text>: size: %w", err)
		}
		size = v
	}

	font, err := p.font(src, size)
	if err != nil {
		return nil, err
	}
	t := NewText(font, strings.TrimSpace(el.Text()))

	if raw := el.SelectAttrValue("colour", ""); raw != "" {
		colour, err := ParseColour(raw)
		if err != nil {
			return nil, fmt.Errorf("scene: <text>: %w", err)
		}
		t.colour = colour
	}
	if raw := el.SelectAttrValue("mode", ""); raw != "" {
		switch raw {
		case "single-line":
			t.mode = TextSingleLine
		case "squish":
			t.mode = TextSquish
		case "wrap":
			t.mode = TextWrap
		default:
			return nil, fmt.Errorf("scene: <text>: unknown mode %q", raw)
		}
	}
	if raw := el.SelectAttrValue("line-spacing", ""); raw != "" {
		spacing, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("scene: <text>: line-spacing: %w", err)
		}
		t.lineSpacing = spacing
	}
	t.updateSize()
	return t, nil
}

func (p *parser) spriteText(el *etree.Element) (Node, error) {
	src := el.SelectAttrValue("font", "")
	if src == "" {
		return nil, fmt.Errorf("scene: <sprite-text> needs a font attribute")
	}
	font, err := p.spriteFont(src)
	if err != nil {
		return nil, err
	}
	return NewSpriteText(font, strings.TrimSpace(el.Text())), nil
}

func (p *parser) font(src string, sizePx float64) (*Font, error) {
	key := fmt.Sprintf("%s@%g", src, sizePx)
	if f, ok := p.fonts[key]; ok {
		return f, nil
	}
	f, err := LoadFont(filepath.Join(p.dir, src), sizePx)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded font", "src", src, "size_px", sizePx)
	p.fonts[key] = f
	return f, nil
}

func (p *parser) spriteFont(src string) (*SpriteFont, error) {
	if f, ok := p.spriteFonts[src]; ok {
		return f, nil
	}
	f, err := LoadSpriteFont(filepath.Join(p.dir, src))
	if err != nil {
		return nil, err
	}
	p.spriteFonts[src] = f
	return f, nil
}

// applyCommonAttrs applies the layout attributes every element supports.
func applyCommonAttrs(el *etree.Element, n Node) error {
	spec := &n.base().spec

	// The "size" shorthand applies first so explicit width/height can
	// override one dimension of it.
	if raw := el.SelectAttrValue("size", ""); raw != "" {
		fields := strings.Fields(raw)
		if len(fields) != 2 {
			return fmt.Errorf("size: expected two values, got %q", raw)
		}
		w, errW := strconv.ParseFloat(fields[0], 64)
		h, errH := strconv.ParseFloat(fields[1], 64)
		if errW != nil || errH != nil {
			return fmt.Errorf("size: invalid values %q", raw)
		}
		spec.Size = Size{Width: w, Height: h}
	}

	for attr, target := range map[string]*float64{
		"x":      &spec.Position.X,
		"y":      &spec.Position.Y,
		"width":  &spec.Size.Width,
		"height": &spec.Size.Height,
	} {
		raw := el.SelectAttrValue(attr, "")
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", attr, err)
		}
		*target = v
	}

	if raw := el.SelectAttrValue("anchor", ""); raw != "" {
		anchor, err := parseAnchor(raw)
		if err != nil {
			return fmt.Errorf("anchor: %w", err)
		}
		spec.Anchor = anchor
	}
	if raw := el.SelectAttrValue("origin", ""); raw != "" {
		origin, err := parseAnchor(raw)
		if err != nil {
			return fmt.Errorf("origin: %w", err)
		}
		spec.Origin = origin
	}
	if raw := el.SelectAttrValue("relative-size-axes", ""); raw != "" {
		axes, err := parseAxes(raw)
		if err != nil {
			return fmt.Errorf("relative-size-axes: %w", err)
		}
		spec.RelativeSizeAxes = axes
	}
	if raw := el.SelectAttrValue("margin", ""); raw != "" {
		margin, err := parseEdgeList(raw)
		if err != nil {
			return fmt.Errorf("margin: %w", err)
		}
		spec.Margin = margin
	}
	return applyEdgeSides(el, "margin", &spec.Margin)
}

// applyEdgeSides applies prefix-top, prefix-right, prefix-bottom, and
// prefix-left attributes over already-parsed edges.
func applyEdgeSides(el *etree.Element, prefix string, edges *Edges) error {
	for side, target := range map[string]*float64{
		"top":    &edges.Top,
		"right":  &edges.Right,
		"bottom": &edges.Bottom,
		"left":   &edges.Left,
	} {
		attr := prefix + "-" + side
		raw := el.SelectAttrValue(attr, "")
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", attr, err)
		}
		*target = v
	}
	return nil
}

// anchorNames maps markup anchor names to the canonical anchors, accepting
// both spellings of centre.
var anchorNames = map[string]Anchor{
	"top-left":      TopLeft,
	"top-centre":    TopCentre,
	"top-center":    TopCentre,
	"top-right":     TopRight,
	"centre-left":   CentreLeft,
	"center-left":   CentreLeft,
	"centre":        Centre,
	"center":        Centre,
	"centre-right":  CentreRight,
	"center-right":  CentreRight,
	"bottom-left":   BottomLeft,
	"bottom-centre": BottomCentre,
	"bottom-center": BottomCentre,
	"bottom-right":  BottomRight,
}

// parseAnchor accepts a named anchor ("centre", "bottom-right") or a relative
// pair ("0.25,0.75").
func parseAnchor(s string) (Anchor, error) {
	if a, ok := anchorNames[s]; ok {
		return a, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) == 2 {
		rx, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		ry, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX == nil && errY == nil {
			return Relative(rx, ry), nil
		}
	}
	return Anchor{}, fmt.Errorf("unknown anchor %q", s)
}

func parseAxes(s string) (Axes, error) {
	switch s {
	case "none":
		return AxesNone, nil
	case "x":
		return AxesX, nil
	case "y":
		return AxesY, nil
	case "both":
		return AxesBoth, nil
	}
	return AxesNone, fmt.Errorf("unknown axes %q", s)
}

// parseEdgeList parses CSS-style shorthand: one value for all sides, two for
// vertical/horizontal, or four in top right bottom left order.
func parseEdgeList(s string) (Edges, error) {
	fields := strings.Fields(s)
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Edges{}, fmt.Errorf("invalid edge value %q", field)
		}
		values[i] = v
	}

	switch len(values) {
	case 1:
		return EdgeAll(values[0]), nil
	case 2:
		return EdgeSymmetric(values[0], values[1]), nil
	case 4:
		return EdgeTRBL(values[0], values[1], values[2], values[3]), nil
	}
	return Edges{}, fmt.Errorf("expected 1, 2, or 4 edge values, got %d", len(values))
}

// parseGradient builds a gradient from the gradient-stops attribute: stops
// separated by commas, each a colour optionally followed by a position and a
// midpoint ("#ff0000, #00ff00 0.6 0.3"). Stops without positions spread
// evenly.
func parseGradient(el *etree.Element) (*Gradient, error) {
	raw := el.SelectAttrValue("gradient-stops", "")
	if raw == "" {
		return nil, nil
	}

	direction := GradientHorizontal
	switch dir := el.SelectAttrValue("gradient-direction", "horizontal"); dir {
	case "horizontal":
	case "vertical":
		direction = GradientVertical
	default:
		return nil, fmt.Errorf("unknown gradient-direction %q", dir)
	}

	entries := strings.Split(raw, ",")
	stops := make([]GradientStop, 0, len(entries))
	positioned := false
	for _, entry := range entries {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty gradient stop in %q", raw)
		}
		colour, err := ParseColour(fields[0])
		if err != nil {
			return nil, err
		}
		stop := GradientStop{Colour: colour, Midpoint: 0.5}
		if len(fields) > 1 {
			pos, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("gradient stop position %q: %w", fields[1], err)
			}
			stop.Position = pos
			positioned = true
		}
		if len(fields) > 2 {
			mid, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("gradient stop midpoint %q: %w", fields[2], err)
			}
			stop.Midpoint = mid
		}
		stops = append(stops, stop)
	}

	if !positioned && len(stops) > 1 {
		for i := range stops {
			stops[i].Position = float64(i) / float64(len(stops)-1)
		}
	}
	return NewGradient(direction, stops...), nil
}
