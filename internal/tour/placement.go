package tour

// Rect is an on-screen rectangle in document coordinates.
type Rect struct {
	Top    float64
	Left   float64
	Width  float64
	Height float64
}

// Point is a document-coordinate origin.
type Point struct {
	Top  float64
	Left float64
}

// Viewport describes the visible window: its size and scroll offsets.
type Viewport struct {
	Width      float64
	Height     float64
	ScrollTop  float64
	ScrollLeft float64
}

// Resolver maps a step's target locator to its on-screen rectangle. A false
// return means the locator matched nothing.
type Resolver func(target string) (Rect, bool)

// Placement is the computed anchoring for one step: where the tooltip panel
// goes, the spotlight rectangle around the target (nil for whole-viewport
// steps), and a scroll destination when the target is outside the visible
// window (nil when no scroll is needed).
type Placement struct {
	Tooltip   Point
	Spotlight *Rect
	ScrollTo  *Point
}

// Geometry holds the fixed panel size and margin used for placement.
type Geometry struct {
	PanelWidth  float64
	PanelHeight float64
	Margin      float64
}

// DefaultGeometry matches the web client's tooltip dimensions.
func DefaultGeometry() Geometry {
	return Geometry{PanelWidth: 320, PanelHeight: 200, Margin: 20}
}

// Compute derives the placement for a step. It is pure and idempotent:
// the same step, resolver result and viewport always yield the same
// placement, so it is safe to call on every scroll and resize event.
//
// The whole-viewport sentinel and any unresolved target both fall back to a
// centered panel with no spotlight and no scrolling.
func (g Geometry) Compute(step Step, resolve Resolver, vp Viewport) Placement {
	if step.Target == TargetBody {
		return g.centered(vp)
	}

	target, ok := resolve(step.Target)
	if !ok {
		return g.centered(vp)
	}

	var tooltip Point
	switch step.Position {
	case PositionTop:
		tooltip = Point{
			Top:  target.Top - g.PanelHeight - g.Margin,
			Left: target.Left + target.Width/2 - g.PanelWidth/2,
		}
	case PositionBottom:
		tooltip = Point{
			Top:  target.Top + target.Height + g.Margin,
			Left: target.Left + target.Width/2 - g.PanelWidth/2,
		}
	case PositionLeft:
		tooltip = Point{
			Top:  target.Top + target.Height/2 - g.PanelHeight/2,
			Left: target.Left - g.PanelWidth - g.Margin,
		}
	case PositionRight:
		tooltip = Point{
			Top:  target.Top + target.Height/2 - g.PanelHeight/2,
			Left: target.Left + target.Width + g.Margin,
		}
	case PositionCenter:
		tooltip = Point{
			Top:  vp.Height/2 - g.PanelHeight/2 + vp.ScrollTop,
			Left: vp.Width/2 - g.PanelWidth/2 + vp.ScrollLeft,
		}
	default:
		tooltip = Point{Top: target.Top, Left: target.Left}
	}

	tooltip = g.clamp(tooltip, vp)

	spotlight := target
	p := Placement{
		Tooltip:   tooltip,
		Spotlight: &spotlight,
	}

	if step.Position != PositionCenter && !visible(target, vp) {
		p.ScrollTo = &Point{
			Top:  target.Top + target.Height/2,
			Left: target.Left + target.Width/2,
		}
	}

	return p
}

func (g Geometry) centered(vp Viewport) Placement {
	return Placement{
		Tooltip: Point{
			Top:  vp.Height/2 - g.PanelHeight/2 + vp.ScrollTop,
			Left: vp.Width/2 - g.PanelWidth/2 + vp.ScrollLeft,
		},
	}
}

// clamp keeps the panel inside the visible window minus the margin on every
// edge.
func (g Geometry) clamp(p Point, vp Viewport) Point {
	if p.Left < vp.ScrollLeft+g.Margin {
		p.Left = vp.ScrollLeft + g.Margin
	}
	if p.Left+g.PanelWidth > vp.ScrollLeft+vp.Width-g.Margin {
		p.Left = vp.ScrollLeft + vp.Width - g.PanelWidth - g.Margin
	}
	if p.Top < vp.ScrollTop+g.Margin {
		p.Top = vp.ScrollTop + g.Margin
	}
	if p.Top+g.PanelHeight > vp.ScrollTop+vp.Height-g.Margin {
		p.Top = vp.ScrollTop + vp.Height - g.PanelHeight - g.Margin
	}
	return p
}

// visible reports whether any part of the rect is inside the window.
func visible(r Rect, vp Viewport) bool {
	if r.Top+r.Height < vp.ScrollTop || r.Top > vp.ScrollTop+vp.Height {
		return false
	}
	if r.Left+r.Width < vp.ScrollLeft || r.Left > vp.ScrollLeft+vp.Width {
		return false
	}
	return true
}
