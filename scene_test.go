package scene

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// approx compares geometry with a tolerance for float arithmetic.
var approx = cmpopts.EquateApprox(0, 1e-9)

func TestResolveGeometry(t *testing.T) {
	badge := NewBox(RGB(255, 0, 0),
		WithSize(40, 40),
		WithAnchor(Centre),
		WithOrigin(Centre),
	)
	panel := NewContainer(
		WithSize(0.5, 200),
		WithRelativeSizeAxes(AxesX),
		WithMargin(EdgeAll(10)),
		WithPadding(EdgeAll(5)),
		WithChildren(badge),
	)
	root := NewContainer(WithSize(400, 300), WithChildren(panel))

	require.NoError(t, Resolve(root, 400, 300))

	// Half of 400 minus the 10px margin on each side.
	wantPanel := Geometry{
		Draw:     NewRect(10, 10, 180, 200),
		Layout:   NewRect(0, 0, 200, 220),
		Children: NewRect(5, 5, 170, 190),
		Render:   NewRect(0, 0, 180, 200),
	}
	if diff := cmp.Diff(wantPanel, panel.Geometry(), approx); diff != "" {
		t.Errorf("panel geometry mismatch (-want +got):\n%s", diff)
	}

	// Centred in the 170x190 children frame starting at (5, 5).
	wantBadge := Geometry{
		Draw:   NewRect(70, 80, 40, 40),
		Layout: NewRect(70, 80, 40, 40),
	}
	if diff := cmp.Diff(wantBadge, badge.Geometry(), approx); diff != "" {
		t.Errorf("badge geometry mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveAutoSizeFitsChildren(t *testing.T) {
	wrapper := NewContainer(
		WithAutoSizeAxes(AxesBoth),
		WithPadding(EdgeAll(5)),
		WithChildren(NewBox(RGB(0, 0, 0), WithSize(40, 40))),
	)
	root := NewContainer(WithSize(200, 200), WithChildren(wrapper))

	require.NoError(t, Resolve(root, 200, 200))

	if diff := cmp.Diff(Size{Width: 50, Height: 50}, wrapper.Geometry().Draw.Size(), approx); diff != "" {
		t.Errorf("auto size mismatch (-want +got):\n%s", diff)
	}
}
