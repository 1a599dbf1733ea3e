package scene

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertColour compares 8-bit channels with a small tolerance for rounding in
// the blend arithmetic.
func assertColour(t *testing.T, want, got [4]uint8, msgAndArgs ...any) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1, msgAndArgs...)
	}
}

func TestGradientAt(t *testing.T) {
	red := RGB(255, 0, 0)
	blue := RGB(0, 0, 255)

	t.Run("endpoints", func(t *testing.T) {
		g := NewGradient(GradientHorizontal, EvenStops(red, blue)...)
		assertColour(t, rgba8(red), rgba8(g.At(0)))
		assertColour(t, rgba8(blue), rgba8(g.At(1)))
	})

	t.Run("linear halfway", func(t *testing.T) {
		g := NewGradient(GradientHorizontal, EvenStops(red, blue)...)
		assertColour(t, [4]uint8{128, 0, 128, 255}, rgba8(g.At(0.5)))
	})

	t.Run("clamps outside range", func(t *testing.T) {
		g := NewGradient(GradientHorizontal, EvenStops(red, blue)...)
		assertColour(t, rgba8(red), rgba8(g.At(-3)))
		assertColour(t, rgba8(blue), rgba8(g.At(7)))
	})

	t.Run("midpoint skews blend", func(t *testing.T) {
		// With the midpoint at 0.25 the halfway colour arrives a quarter of
		// the way in.
		g := NewGradient(GradientHorizontal,
			GradientStop{Position: 0, Colour: red, Midpoint: 0.25},
			GradientStop{Position: 1, Colour: blue},
		)
		assertColour(t, [4]uint8{128, 0, 128, 255}, rgba8(g.At(0.25)))
	})

	t.Run("stops sorted by position", func(t *testing.T) {
		g := NewGradient(GradientHorizontal,
			GradientStop{Position: 1, Colour: blue, Midpoint: 0.5},
			GradientStop{Position: 0, Colour: red, Midpoint: 0.5},
		)
		assertColour(t, rgba8(red), rgba8(g.At(0)))
		assertColour(t, rgba8(blue), rgba8(g.At(1)))
	})

	t.Run("single stop", func(t *testing.T) {
		g := NewGradient(GradientVertical, GradientStop{Position: 0.5, Colour: red})
		assertColour(t, rgba8(red), rgba8(g.At(0)))
		assertColour(t, rgba8(red), rgba8(g.At(1)))
	})

	t.Run("no stops is transparent", func(t *testing.T) {
		g := NewGradient(GradientHorizontal)
		_, _, _, a := g.At(0.5).RGBA()
		assert.Zero(t, a)
	})
}

func TestEvenStops(t *testing.T) {
	red, green, blue := RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)

	stops := EvenStops(red, green, blue)
	require.Len(t, stops, 3)
	assert.Equal(t, 0.0, stops[0].Position)
	assert.Equal(t, 0.5, stops[1].Position)
	assert.Equal(t, 1.0, stops[2].Position)

	single := EvenStops(red)
	require.Len(t, single, 1)
	assert.Equal(t, 0.0, single[0].Position)
}

func TestGradientDraw(t *testing.T) {
	red := RGB(255, 0, 0)
	blue := RGB(0, 0, 255)

	t.Run("horizontal", func(t *testing.T) {
		g := NewGradient(GradientHorizontal, EvenStops(red, blue)...)
		dst := image.NewRGBA(image.Rect(0, 0, 4, 2))
		g.draw(dst, dst.Bounds(), dst.Bounds())

		assertColour(t, rgba8(red), rgba8(dst.At(0, 0)))
		assertColour(t, rgba8(blue), rgba8(dst.At(3, 0)))
		// Columns are uniform.
		assert.Equal(t, dst.At(2, 0), dst.At(2, 1))
	})

	t.Run("vertical", func(t *testing.T) {
		g := NewGradient(GradientVertical, EvenStops(red, blue)...)
		dst := image.NewRGBA(image.Rect(0, 0, 2, 4))
		g.draw(dst, dst.Bounds(), dst.Bounds())

		assertColour(t, rgba8(red), rgba8(dst.At(0, 0)))
		assertColour(t, rgba8(blue), rgba8(dst.At(0, 3)))
		assert.Equal(t, dst.At(0, 2), dst.At(1, 2))
	})

	t.Run("clipped region keeps full span", func(t *testing.T) {
		// Drawing only the right half must not restart the gradient there.
		g := NewGradient(GradientHorizontal, EvenStops(red, blue)...)
		dst := image.NewRGBA(image.Rect(0, 0, 4, 1))
		g.draw(dst, image.Rect(2, 0, 4, 1), dst.Bounds())

		_, _, _, a := dst.At(0, 0).RGBA()
		assert.Zero(t, a, "clipped-out pixels stay untouched")
		assertColour(t, rgba8(blue), rgba8(dst.At(3, 0)))
	})
}
