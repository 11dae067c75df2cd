package dropdown

// Placement names the panel's position relative to the trigger. The base
// side carries an optional alignment suffix: -start aligns the panel with
// the trigger's leading edge, -end with its trailing edge.
type Placement string

const (
	PlacementTop         Placement = "top"
	PlacementTopStart    Placement = "top-start"
	PlacementTopEnd      Placement = "top-end"
	PlacementBottom      Placement = "bottom"
	PlacementBottomStart Placement = "bottom-start"
	PlacementBottomEnd   Placement = "bottom-end"
	PlacementLeft        Placement = "left"
	PlacementLeftStart   Placement = "left-start"
	PlacementLeftEnd     Placement = "left-end"
	PlacementRight       Placement = "right"
	PlacementRightStart  Placement = "right-start"
	PlacementRightEnd    Placement = "right-end"
)

// Placements lists every valid placement value.
func Placements() []Placement {
	return []Placement{
		PlacementTop, PlacementTopStart, PlacementTopEnd,
		PlacementBottom, PlacementBottomStart, PlacementBottomEnd,
		PlacementLeft, PlacementLeftStart, PlacementLeftEnd,
		PlacementRight, PlacementRightStart, PlacementRightEnd,
	}
}

// ValidPlacement reports whether p is one of the twelve placement values.
func ValidPlacement(p Placement) bool {
	for _, v := range Placements() {
		if v == p {
			return true
		}
	}
	return false
}

// side returns the base side of the placement, without alignment suffix.
func (p Placement) side() string {
	switch p {
	case PlacementTop, PlacementTopStart, PlacementTopEnd:
		return "top"
	case PlacementBottom, PlacementBottomStart, PlacementBottomEnd:
		return "bottom"
	case PlacementLeft, PlacementLeftStart, PlacementLeftEnd:
		return "left"
	case PlacementRight, PlacementRightStart, PlacementRightEnd:
		return "right"
	}
	return "bottom"
}

// align returns the alignment component: "start", "end", or "" for centered.
func (p Placement) align() string {
	switch p {
	case PlacementTopStart, PlacementBottomStart, PlacementLeftStart, PlacementRightStart:
		return "start"
	case PlacementTopEnd, PlacementBottomEnd, PlacementLeftEnd, PlacementRightEnd:
		return "end"
	}
	return ""
}

// flipped returns the placement mirrored to the opposite side, preserving
// alignment. Used when the preferred side overflows the boundary.
func (p Placement) flipped() Placement {
	switch p.side() {
	case "top":
		return Placement("bottom" + suffix(p))
	case "bottom":
		return Placement("top" + suffix(p))
	case "left":
		return Placement("right" + suffix(p))
	case "right":
		return Placement("left" + suffix(p))
	}
	return p
}

func suffix(p Placement) string {
	if a := p.align(); a != "" {
		return "-" + a
	}
	return ""
}

// Strategy selects the coordinate space the panel is positioned in.
type Strategy string

const (
	// StrategyAbsolute keeps the panel inside the trigger's parent region.
	StrategyAbsolute Strategy = "absolute"
	// StrategyFixed positions against the viewport, escaping any clipping
	// parent. Selected by the widget's hoist option.
	StrategyFixed Strategy = "fixed"
)

// Config is the geometry configuration pushed to a positioner. The widget
// re-pushes it whenever placement, distance, skidding, or hoist changes.
type Config struct {
	Strategy  Strategy
	Placement Placement
	// Distance offsets the panel outward from the trigger, in cells.
	Distance int
	// Skidding offsets the panel along the trigger, in cells.
	Skidding int
}

// Callbacks notify the widget of transition completion. AfterShow and
// AfterHide fire once per completed transition; TransitionEnd fires for
// both directions before the direction-specific callback.
type Callbacks struct {
	AfterShow     func()
	AfterHide     func()
	TransitionEnd func()
}

// Positioner is the geometry engine consumed by the widget. Show and Hide
// start transitions that complete asynchronously via Callbacks; Reposition
// recomputes coordinates without a visibility change; Destroy tears the
// engine down and suppresses any pending callbacks.
type Positioner interface {
	SetOptions(Config)
	Show()
	Hide()
	Reposition()
	Destroy()
}
