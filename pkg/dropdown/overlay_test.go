package dropdown

import (
	"testing"

	"github.com/marcus/dropdown/pkg/dom"
)

// newOverlayFixture builds a trigger/panel pair with known geometry on a
// fresh document. The trigger sits mid-screen; the panel is 10x4.
func newOverlayFixture(cfg Config, cb Callbacks) (*dom.Document, *dom.Element, *dom.Element, *Overlay) {
	doc := dom.NewDocument()
	trigger := doc.CreateElement("trigger")
	panel := doc.CreateElement("panel")
	doc.Root().AppendChild(trigger)
	doc.Root().AppendChild(panel)

	trigger.SetBounds(dom.Rect{X: 30, Y: 10, W: 10, H: 1})
	panel.SetBounds(dom.Rect{W: 10, H: 4})

	o := NewOverlay(trigger, panel, cfg, cb)
	o.SetViewport(dom.Rect{W: 80, H: 24})
	return doc, trigger, panel, o
}

// TestPlacementGeometry tests the twelve placements against a fixed anchor
func TestPlacementGeometry(t *testing.T) {
	// Trigger at (30,10) 10x1, panel 10x4, distance 1, viewport 80x24.
	tests := []struct {
		placement Placement
		wantX     int
		wantY     int
	}{
		{PlacementBottomStart, 30, 12},
		{PlacementBottom, 30, 12}, // same width: centered == start
		{PlacementBottomEnd, 30, 12},
		{PlacementTopStart, 30, 5},
		{PlacementTop, 30, 5},
		{PlacementTopEnd, 30, 5},
		{PlacementRightStart, 41, 10},
		{PlacementLeftStart, 19, 10},
		{PlacementRight, 41, 9}, // centered on a 1-high anchor: (1-4)/2 = -1
		{PlacementLeft, 19, 9},
		{PlacementRightEnd, 41, 7},
		{PlacementLeftEnd, 19, 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.placement), func(t *testing.T) {
			_, _, panel, o := newOverlayFixture(Config{
				Strategy:  StrategyFixed,
				Placement: tt.placement,
				Distance:  1,
			}, Callbacks{})

			o.Reposition()
			got := panel.Bounds()
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("panel at (%d,%d), want (%d,%d)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestSkiddingOffset tests the along-trigger offset
func TestSkiddingOffset(t *testing.T) {
	_, _, panel, o := newOverlayFixture(Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
		Skidding:  5,
	}, Callbacks{})

	o.Reposition()
	if got := panel.Bounds().X; got != 35 {
		t.Errorf("skidded X = %d, want 35", got)
	}
}

// TestFlipOnOverflow tests the flip to the opposite side
func TestFlipOnOverflow(t *testing.T) {
	_, trigger, panel, o := newOverlayFixture(Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
		Distance:  1,
	}, Callbacks{})

	// Trigger on the last row: bottom placement cannot fit.
	trigger.SetBounds(dom.Rect{X: 30, Y: 23, W: 10, H: 1})
	o.Reposition()

	got := panel.Bounds()
	if got.Y != 23-1-4 {
		t.Errorf("panel Y = %d, want %d (flipped above)", got.Y, 23-1-4)
	}
}

// TestClampIntoBoundary tests edge clamping when neither side fits cleanly
func TestClampIntoBoundary(t *testing.T) {
	_, _, panel, o := newOverlayFixture(Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
		Skidding:  100,
	}, Callbacks{})

	o.Reposition()
	got := panel.Bounds()
	if got.Right() > 80 {
		t.Errorf("panel right edge %d overflows the 80-wide viewport", got.Right())
	}
}

// TestAbsoluteStrategyUsesParentBoundary tests strategy selection
func TestAbsoluteStrategyUsesParentBoundary(t *testing.T) {
	doc := dom.NewDocument()
	section := doc.CreateElement("section")
	section.SetBounds(dom.Rect{X: 0, Y: 0, W: 40, H: 12})
	doc.Root().AppendChild(section)

	trigger := doc.CreateElement("trigger")
	trigger.SetBounds(dom.Rect{X: 5, Y: 10, W: 10, H: 1})
	section.AppendChild(trigger)

	panel := doc.CreateElement("panel")
	panel.SetBounds(dom.Rect{W: 10, H: 4})
	doc.Root().AppendChild(panel)

	o := NewOverlay(trigger, panel, Config{
		Strategy:  StrategyAbsolute,
		Placement: PlacementBottomStart,
	}, Callbacks{})
	o.SetViewport(dom.Rect{W: 80, H: 24})

	// Bottom overflows the 12-high section even though the viewport has
	// room, so the panel flips above the trigger.
	o.Reposition()
	if got := panel.Bounds(); got.Y != 6 {
		t.Errorf("panel Y = %d, want 6 (flipped within the section)", got.Y)
	}

	// Hoisting to the fixed strategy escapes the section.
	o.SetOptions(Config{Strategy: StrategyFixed, Placement: PlacementBottomStart})
	o.Reposition()
	if got := panel.Bounds(); got.Y != 11 {
		t.Errorf("hoisted panel Y = %d, want 11", got.Y)
	}
}

// TestTransitionCallbacksAsync tests that completion waits for a flush
func TestTransitionCallbacksAsync(t *testing.T) {
	var afterShow, afterHide, transitions int
	doc, _, _, o := newOverlayFixture(Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
	}, Callbacks{
		AfterShow:     func() { afterShow++ },
		AfterHide:     func() { afterHide++ },
		TransitionEnd: func() { transitions++ },
	})

	o.Show()
	if afterShow != 0 {
		t.Fatal("after-show fired synchronously")
	}
	doc.Flush()
	if afterShow != 1 || transitions != 1 {
		t.Errorf("after flush: afterShow=%d transitions=%d", afterShow, transitions)
	}

	o.Hide()
	doc.Flush()
	if afterHide != 1 || transitions != 2 {
		t.Errorf("after hide flush: afterHide=%d transitions=%d", afterHide, transitions)
	}
}

// TestSupersededTransition tests that a hide before the show completes
// suppresses the stale show callback
func TestSupersededTransition(t *testing.T) {
	var afterShow, afterHide int
	doc, _, _, o := newOverlayFixture(Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
	}, Callbacks{
		AfterShow: func() { afterShow++ },
		AfterHide: func() { afterHide++ },
	})

	o.Show()
	o.Hide()
	doc.Flush()

	if afterShow != 0 {
		t.Errorf("stale after-show fired %d times", afterShow)
	}
	if afterHide != 1 {
		t.Errorf("after-hide fired %d times, want 1", afterHide)
	}
}

// TestDestroySuppressesCallbacks tests teardown
func TestDestroySuppressesCallbacks(t *testing.T) {
	var fired int
	doc, _, panel, o := newOverlayFixture(Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
	}, Callbacks{
		AfterShow: func() { fired++ },
	})

	o.Show()
	o.Destroy()
	doc.Flush()

	if fired != 0 {
		t.Error("callbacks must not fire after Destroy")
	}
	if _, visible := panel.Attribute("data-visible"); visible {
		t.Error("Destroy should clear the visibility marker")
	}

	// Calls after Destroy are no-ops.
	o.Show()
	o.Reposition()
	doc.Flush()
	if fired != 0 {
		t.Error("Show after Destroy ran")
	}
}

// TestMeasureFromText tests content measurement when the panel carries no
// explicit size
func TestMeasureFromText(t *testing.T) {
	doc := dom.NewDocument()
	trigger := doc.CreateElement("trigger")
	trigger.SetBounds(dom.Rect{X: 0, Y: 0, W: 5, H: 1})
	panel := doc.CreateElement("panel")
	doc.Root().AppendChild(trigger)
	doc.Root().AppendChild(panel)

	for _, label := range []string{"Cut", "Copy", "Paste All"} {
		item := doc.CreateElement("menuitem")
		item.SetText(label)
		panel.AppendChild(item)
	}

	o := NewOverlay(trigger, panel, Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
	}, Callbacks{})
	o.SetViewport(dom.Rect{W: 80, H: 24})
	o.Reposition()

	got := panel.Bounds()
	if got.W != len("Paste All") {
		t.Errorf("measured width = %d, want %d", got.W, len("Paste All"))
	}
	if got.H != 3 {
		t.Errorf("measured height = %d, want 3", got.H)
	}
}

// TestVisibleMarker tests the data-visible attribute lifecycle
func TestVisibleMarker(t *testing.T) {
	doc, _, panel, o := newOverlayFixture(Config{
		Strategy:  StrategyFixed,
		Placement: PlacementBottomStart,
	}, Callbacks{})

	o.Show()
	if v, _ := panel.Attribute("data-visible"); v != "true" {
		t.Error("data-visible not set on show")
	}
	if !o.Visible() {
		t.Error("Visible() = false after Show")
	}

	o.Hide()
	doc.Flush()
	if _, ok := panel.Attribute("data-visible"); ok {
		t.Error("data-visible not cleared on hide")
	}
}
