package scene

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// GradientDirection specifies the axis a gradient runs along.
type GradientDirection uint8

const (
	// GradientHorizontal blends from left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical blends from top to bottom.
	GradientVertical
)

// GradientStop is a colour at a position along a gradient.
type GradientStop struct {
	// Position of the stop in [0, 1] along the gradient axis.
	Position float64

	// Colour at the stop.
	Colour color.Color

	// Midpoint skews the blend toward the next stop: the halfway colour is
	// reached at this fraction of the segment. 0.5 is a linear blend; the
	// zero value is treated as 0.5.
	Midpoint float64
}

// Gradient is a linear blend through an ordered sequence of colour stops.
type Gradient struct {
	direction GradientDirection
	stops     []GradientStop
}

// NewGradient creates a gradient from the given stops. Stops are sorted by
// position; at least one is required for the gradient to draw anything.
func NewGradient(direction GradientDirection, stops ...GradientStop) *Gradient {
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return &Gradient{direction: direction, stops: sorted}
}

// EvenStops spreads the given colours evenly from 0 to 1 with linear blends.
func EvenStops(colours ...color.Color) []GradientStop {
	stops := make([]GradientStop, len(colours))
	for i, c := range colours {
		position := 0.0
		if len(colours) > 1 {
			position = float64(i) / float64(len(colours)-1)
		}
		stops[i] = GradientStop{Position: position, Colour: c, Midpoint: 0.5}
	}
	return stops
}

// Direction returns the axis the gradient runs along.
func (g *Gradient) Direction() GradientDirection { return g.direction }

// At returns the gradient colour at t in [0, 1].
func (g *Gradient) At(t float64) color.Color {
	if len(g.stops) == 0 {
		return color.Transparent
	}

	t = min(max(t, 0), 1)
	first, last := g.stops[0], g.stops[len(g.stops)-1]
	if t <= first.Position {
		return first.Colour
	}
	if t >= last.Position {
		return last.Colour
	}

	for i := 0; i < len(g.stops)-1; i++ {
		from, to := g.stops[i], g.stops[i+1]
		if t > to.Position {
			continue
		}
		span := to.Position - from.Position
		if span <= 0 {
			return to.Colour
		}
		u := skew((t-from.Position)/span, from.Midpoint)

		a, okA := colorful.MakeColor(from.Colour)
		b, okB := colorful.MakeColor(to.Colour)
		if !okA || !okB {
			// Fully transparent stops cannot be converted; snap to the
			// nearer one.
			if u < 0.5 {
				return from.Colour
			}
			return to.Colour
		}
		return a.BlendRgb(b, u).Clamped()
	}
	return last.Colour
}

// skew remaps u so the halfway colour lands at the midpoint.
func skew(u, midpoint float64) float64 {
	if midpoint <= 0 || midpoint >= 1 {
		midpoint = 0.5
	}
	if midpoint == 0.5 {
		return u
	}
	return math.Pow(u, math.Log(0.5)/math.Log(midpoint))
}

// draw fills r in dst with the gradient. r is assumed to already be clipped
// to dst's bounds; full is the unclipped target rectangle the gradient spans.
func (g *Gradient) draw(dst *image.RGBA, r, full image.Rectangle) {
	if r.Empty() || full.Empty() {
		return
	}

	if g.direction == GradientHorizontal {
		for x := r.Min.X; x < r.Max.X; x++ {
			t := position(x, full.Min.X, full.Dx())
			c := g.At(t)
			for y := r.Min.Y; y < r.Max.Y; y++ {
				dst.Set(x, y, c)
			}
		}
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		t := position(y, full.Min.Y, full.Dy())
		c := g.At(t)
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.Set(x, y, c)
		}
	}
}

// position maps a pixel coordinate to a gradient fraction over the span.
func position(v, start, span int) float64 {
	if span <= 1 {
		return 0
	}
	return float64(v-start) / float64(span-1)
}
