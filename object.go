package ginga

// OnePoint anchors an object by a single point in data space. It is a
// plain composed helper: embedding types get the position fields and
// movement methods, nothing else.
type OnePoint struct {
	X, Y float64
}

// ReferencePt returns the anchor position.
func (p *OnePoint) ReferencePt() (float64, float64) {
	return p.X, p.Y
}

// MoveTo moves the anchor to an absolute position.
func (p *OnePoint) MoveTo(x, y float64) {
	p.X, p.Y = x, y
}

// MoveDelta moves the anchor by an offset.
func (p *OnePoint) MoveDelta(dx, dy float64) {
	p.X += dx
	p.Y += dy
}

// EditKind distinguishes edit handle roles.
type EditKind int

// Edit handle kinds.
const (
	// EditMove repositions the whole object.
	EditMove EditKind = iota

	// EditScale resizes along one or both axes.
	EditScale
)

// EditPoint is one draggable handle exposed by an editable object.
type EditPoint struct {
	Point
	Kind EditKind
}

// EditDetail carries the state captured when an edit drag starts.
type EditDetail struct {
	CenterPos Point
	StartPos  Point
	ScaleX    float64
	ScaleY    float64
}

// calcDualScaleFromPt derives per-axis scale factors from a drag: the
// ratio of the dragged point's offset from the object center to the
// drag start's offset from the center.
func calcDualScaleFromPt(pt Point, detail *EditDetail) (float64, float64) {
	dx0 := detail.StartPos.X - detail.CenterPos.X
	dy0 := detail.StartPos.Y - detail.CenterPos.Y
	sx, sy := 1.0, 1.0
	if dx0 != 0 {
		sx = (pt.X - detail.CenterPos.X) / dx0
	}
	if dy0 != 0 {
		sy = (pt.Y - detail.CenterPos.Y) / dy0
	}
	return sx, sy
}
