package ginga

import (
	"image"

	fgg "github.com/fogleman/gg"
)

// LineStyle selects how object outlines are stroked.
type LineStyle string

// Line styles.
const (
	LineSolid LineStyle = "solid"
	LineDash  LineStyle = "dash"
)

// Stroke carries the appearance of an object outline to the renderer.
type Stroke struct {
	Width int
	Style LineStyle
	Color RGBA
	Alpha float64
}

// DrawContext is a drawing context prepared for one object, able to
// stroke its outline polygon and its cap markers.
type DrawContext interface {
	// StrokePolygon strokes a closed polygon through the points, in
	// window coordinates.
	StrokePolygon(pts []Point)

	// DrawCap draws a cap marker centered on a point.
	DrawCap(x, y float64)
}

// Renderer prepares drawing contexts for object decorations. A
// windowing toolkit with its own vector layer supplies its own
// implementation; SoftwareRenderer covers the rest.
type Renderer interface {
	SetupContext(st Stroke) DrawContext
}

// capRadius is the marker radius in window pixels.
const capRadius = 4

// SoftwareRenderer strokes object decorations into an RGBA image with
// a CPU vector rasterizer.
type SoftwareRenderer struct {
	dst *image.RGBA
}

// NewSoftwareRenderer creates a renderer targeting im. The image is
// drawn into in place.
func NewSoftwareRenderer(im *image.RGBA) *SoftwareRenderer {
	return &SoftwareRenderer{dst: im}
}

// SetupContext implements Renderer.
func (r *SoftwareRenderer) SetupContext(st Stroke) DrawContext {
	dc := fgg.NewContextForRGBA(r.dst)
	dc.SetRGBA(st.Color.R, st.Color.G, st.Color.B, st.Alpha)
	dc.SetLineWidth(float64(st.Width))
	if st.Style == LineDash {
		dc.SetDash(4, 4)
	}
	return &softwareContext{dc: dc}
}

type softwareContext struct {
	dc *fgg.Context
}

func (c *softwareContext) StrokePolygon(pts []Point) {
	if len(pts) == 0 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.dc.Stroke()
}

func (c *softwareContext) DrawCap(x, y float64) {
	c.dc.DrawCircle(x, y, capRadius)
	c.dc.Fill()
}
