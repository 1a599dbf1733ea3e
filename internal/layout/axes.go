package layout

// Axes is a flag pair selecting the X and/or Y axis.
// Used for both relative sizing and auto sizing.
type Axes uint8

const (
	AxesNone Axes = 0
	AxesX    Axes = 1 << 0
	AxesY    Axes = 1 << 1
	AxesBoth      = AxesX | AxesY
)

// Has returns true if all axes in a are selected.
func (x Axes) Has(a Axes) bool {
	return x&a == a
}

// String returns a human-readable form, used in error messages.
func (x Axes) String() string {
	switch x {
	case AxesNone:
		return "none"
	case AxesX:
		return "x"
	case AxesY:
		return "y"
	case AxesBoth:
		return "both"
	}
	return "invalid"
}
