package scene

import "image"

// Sprite is a node that draws an image, scaled to its draw rectangle.
type Sprite struct {
	Drawable

	img         image.Image
	sizeToImage bool
}

// NewSprite creates a sprite drawing the given image.
func NewSprite(img image.Image, opts ...Option) *Sprite {
	s := &Sprite{
		Drawable: newDrawable(),
		img:      img,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Image returns the image this sprite draws.
func (s *Sprite) Image() image.Image { return s.img }

// SetImage replaces the image this sprite draws. If the sprite sizes to its
// image, the authored size follows the new image.
func (s *Sprite) SetImage(img image.Image) {
	s.img = img
	if s.sizeToImage && img != nil {
		b := img.Bounds()
		s.spec.Size = Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	}
	s.MarkDirty()
}

// SizeToImage returns whether the sprite tracks the size of its image.
func (s *Sprite) SizeToImage() bool { return s.sizeToImage }
