package scene

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alphaAt(img *image.RGBA, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestRenderBox(t *testing.T) {
	box := NewBox(RGB(255, 0, 0), WithSize(4, 4))

	img, err := Render(box, 10, 10)
	require.NoError(t, err)

	assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(0, 0)))
	assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(3, 3)))
	assert.Zero(t, alphaAt(img, 4, 4), "background stays transparent")
}

func TestRenderGradientBox(t *testing.T) {
	box := NewBox(nil,
		WithSize(4, 1),
		WithGradient(NewGradient(GradientHorizontal, EvenStops(RGB(255, 0, 0), RGB(0, 0, 255))...)),
	)

	img, err := Render(box, 4, 1)
	require.NoError(t, err)

	assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(0, 0)))
	assertColour(t, [4]uint8{0, 0, 255, 255}, rgba8(img.At(3, 0)))
}

func TestRenderPaintOrder(t *testing.T) {
	root := NewContainer(
		WithSize(4, 4),
		WithChildren(
			NewBox(RGB(255, 0, 0), WithSize(4, 4)),
			NewBox(RGB(0, 0, 255), WithSize(4, 4)),
		),
	)

	img, err := Render(root, 4, 4)
	require.NoError(t, err)

	assertColour(t, [4]uint8{0, 0, 255, 255}, rgba8(img.At(2, 2)), "later sibling paints over earlier")
}

func TestRenderMasking(t *testing.T) {
	overflowing := func(masking bool) *Container {
		return NewContainer(
			WithSize(6, 6),
			WithMasking(masking),
			WithChildren(NewBox(RGB(255, 0, 0), WithSize(20, 20))),
		)
	}

	t.Run("masked clips children", func(t *testing.T) {
		img, err := Render(overflowing(true), 10, 10)
		require.NoError(t, err)

		assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(5, 5)))
		assert.Zero(t, alphaAt(img, 7, 7), "overflow clipped at the container edge")
	})

	t.Run("unmasked lets children overflow", func(t *testing.T) {
		img, err := Render(overflowing(false), 10, 10)
		require.NoError(t, err)

		assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(7, 7)))
	})

	t.Run("ancestor mask still applies", func(t *testing.T) {
		inner := overflowing(false)
		outer := NewContainer(WithSize(8, 8), WithChildren(inner))

		img, err := Render(outer, 10, 10)
		require.NoError(t, err)

		assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(7, 7)))
		assert.Zero(t, alphaAt(img, 9, 9), "outer masking container clips the overflow")
	})
}

func TestRenderNestedOffsets(t *testing.T) {
	root := NewContainer(
		WithSize(10, 10),
		WithChildren(
			NewContainer(
				WithPosition(2, 3),
				WithSize(6, 6),
				WithChildren(NewBox(RGB(255, 0, 0), WithPosition(1, 1), WithSize(2, 2))),
			),
		),
	)

	img, err := Render(root, 10, 10)
	require.NoError(t, err)

	assert.Zero(t, alphaAt(img, 2, 3), "outside the box")
	assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(3, 4)))
	assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(4, 5)))
	assert.Zero(t, alphaAt(img, 5, 6), "past the box")
}

func TestRenderPaddingOffsetsChildren(t *testing.T) {
	root := NewContainer(
		WithSize(10, 10),
		WithPadding(EdgeAll(3)),
		WithChildren(NewBox(RGB(255, 0, 0), WithSize(2, 2))),
	)

	img, err := Render(root, 10, 10)
	require.NoError(t, err)

	assert.Zero(t, alphaAt(img, 2, 2), "inside the padding")
	assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(3, 3)))
	assert.Zero(t, alphaAt(img, 5, 5), "past the box")
}

func TestRenderSprite(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, RGB(255, 0, 0))
		}
	}

	t.Run("size to image", func(t *testing.T) {
		sprite := NewSprite(src, WithSizeToImage())

		img, err := Render(sprite, 4, 4)
		require.NoError(t, err)

		assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(1, 1)))
		assert.Zero(t, alphaAt(img, 2, 2))
	})

	t.Run("scaled to authored size", func(t *testing.T) {
		sprite := NewSprite(src, WithSize(4, 4))

		img, err := Render(sprite, 4, 4)
		require.NoError(t, err)

		assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(0, 0)))
		assertColour(t, [4]uint8{255, 0, 0, 255}, rgba8(img.At(3, 3)))
	})
}

func TestRenderResolveError(t *testing.T) {
	conflicted := NewContainer(
		WithAutoSizeAxes(AxesX),
		WithRelativeSizeAxes(AxesX),
	)

	_, err := Render(conflicted, 10, 10)
	assert.ErrorIs(t, err, ErrAxisConflict)
}
