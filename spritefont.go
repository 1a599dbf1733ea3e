package scene

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/beevik/etree"
)

// SpriteFont is a fixed-size glyph font composed of static images.
//
// A sprite font is a directory holding a font.xml describing the glyph
// dimensions and spacing, plus one image per character:
//
//	<font width="8" height="12" spacing="1">
//	    <character value="/">slash.png</character>
//	</font>
//
// Glyph files are named after the character they represent ("a.png"); the
// optional character nodes map characters that cannot appear in filenames to
// explicit files.
type SpriteFont struct {
	dir      string
	charSize Size
	spacing  float64
	files    map[rune]string
	glyphs   map[rune]image.Image
}

// LoadSpriteFont loads a sprite font from a directory containing a font.xml.
func LoadSpriteFont(dir string) (*SpriteFont, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(filepath.Join(dir, "font.xml")); err != nil {
		return nil, fmt.Errorf("scene: reading sprite font in %q: %w", dir, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "font" {
		return nil, fmt.Errorf("scene: sprite font %q: font.xml must have a root <font> node", dir)
	}

	width, err := requireFloatAttr(root, "width")
	if err != nil {
		return nil, fmt.Errorf("scene: sprite font %q: %w", dir, err)
	}
	height, err := requireFloatAttr(root, "height")
	if err != nil {
		return nil, fmt.Errorf("scene: sprite font %q: %w", dir, err)
	}
	spacing, err := requireFloatAttr(root, "spacing")
	if err != nil {
		return nil, fmt.Errorf("scene: sprite font %q: %w", dir, err)
	}

	files := make(map[rune]string)
	for _, node := range root.FindElements("character") {
		value := node.SelectAttrValue("value", "")
		if value == "" || node.Text() == "" {
			return nil, fmt.Errorf("scene: sprite font %q: <character> nodes need a value attribute and a file name", dir)
		}
		files[[]rune(value)[0]] = node.Text()
	}

	slog.Debug("loaded sprite font",
		"dir", dir,
		"glyph_size", fmt.Sprintf("%gx%g", width, height),
		"mapped_characters", len(files))

	return &SpriteFont{
		dir:      dir,
		charSize: Size{Width: width, Height: height},
		spacing:  spacing,
		files:    files,
		glyphs:   make(map[rune]image.Image),
	}, nil
}

func requireFloatAttr(el *etree.Element, name string) (float64, error) {
	raw := el.SelectAttrValue(name, "")
	if raw == "" {
		return 0, fmt.Errorf("the <font> node must specify a %q attribute", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %q attribute: %w", name, err)
	}
	return v, nil
}

// CharacterSize returns the size of every glyph in the font.
func (f *SpriteFont) CharacterSize() Size { return f.charSize }

// Measure returns the size of text drawn with this font.
func (f *SpriteFont) Measure(text string) Size {
	runes := []rune(text)
	if len(runes) == 0 {
		return Size{}
	}
	width := float64(len(runes))*f.charSize.Width + float64(len(runes)-1)*f.spacing
	return Size{Width: max(width, 0), Height: f.charSize.Height}
}

// glyph loads (and caches) the image for a single character.
func (f *SpriteFont) glyph(ch rune) (image.Image, error) {
	if img, ok := f.glyphs[ch]; ok {
		return img, nil
	}

	file, ok := f.files[ch]
	if !ok {
		file = string(ch) + ".png"
	}

	handle, err := os.Open(filepath.Join(f.dir, file))
	if err != nil {
		return nil, fmt.Errorf("scene: no glyph for %q in sprite font %q: %w", ch, f.dir, err)
	}
	defer handle.Close()

	img, err := png.Decode(handle)
	if err != nil {
		return nil, fmt.Errorf("scene: decoding glyph %q in sprite font %q: %w", file, f.dir, err)
	}
	f.glyphs[ch] = img
	return img, nil
}

// render composes the glyph images for text into a single image.
func (f *SpriteFont) render(text string) (*image.RGBA, error) {
	size := f.Measure(text)
	img := image.NewRGBA(image.Rect(0, 0, ceilPositive(size.Width), ceilPositive(size.Height)))

	advance := f.charSize.Width + f.spacing
	for i, ch := range []rune(text) {
		glyph, err := f.glyph(ch)
		if err != nil {
			return nil, err
		}
		at := image.Pt(int(float64(i)*advance), 0)
		compose(img, glyph.Bounds().Sub(glyph.Bounds().Min).Add(at), glyph, glyph.Bounds().Sub(glyph.Bounds().Min).Add(at))
	}
	return img, nil
}

// SpriteText is a node that draws text with a [SpriteFont]. It sizes itself
// to its text; the authored size should not be changed.
type SpriteText struct {
	Drawable

	font    *SpriteFont
	content string
}

// NewSpriteText creates a sprite text node drawing content with the given
// font.
func NewSpriteText(f *SpriteFont, content string, opts ...Option) *SpriteText {
	t := &SpriteText{
		Drawable: newDrawable(),
		font:     f,
		content:  content,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.updateSize()
	return t
}

// Content returns the displayed string.
func (t *SpriteText) Content() string { return t.content }

// SetContent replaces the displayed string and re-fits the drawable.
func (t *SpriteText) SetContent(s string) {
	t.content = s
	t.updateSize()
	t.MarkDirty()
}

func (t *SpriteText) updateSize() {
	if t.font == nil {
		return
	}
	t.spec.Size = t.font.Measure(t.content)
}
