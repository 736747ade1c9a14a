package ginga

import (
	"image"
	"testing"
)

func TestSoftwareRendererStrokePolygon(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 50, 50))
	r := NewSoftwareRenderer(im)

	cr := r.SetupContext(Stroke{Width: 3, Style: LineSolid, Color: Red, Alpha: 1})
	cr.StrokePolygon([]Point{Pt(10, 10), Pt(40, 10), Pt(40, 40), Pt(10, 40)})

	// a point on the top edge should be red
	c := im.RGBAAt(25, 10)
	if c.R < 200 {
		t.Errorf("edge pixel = %+v, want red", c)
	}
	// the interior stays untouched
	if c := im.RGBAAt(25, 25); c.R != 0 || c.A != 0 {
		t.Errorf("interior pixel = %+v, want untouched", c)
	}
}

func TestSoftwareRendererDrawCap(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := NewSoftwareRenderer(im)

	cr := r.SetupContext(Stroke{Width: 1, Style: LineSolid, Color: Blue, Alpha: 1})
	cr.DrawCap(10, 10)

	if c := im.RGBAAt(10, 10); c.B < 200 {
		t.Errorf("cap center = %+v, want blue", c)
	}
}

func TestSoftwareRendererEmptyPolygon(t *testing.T) {
	im := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := NewSoftwareRenderer(im)
	cr := r.SetupContext(Stroke{Width: 1, Style: LineDash, Color: Red, Alpha: 1})
	cr.StrokePolygon(nil) // must not panic
}
