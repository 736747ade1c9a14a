package ginga

import "testing"

func TestImageDefaults(t *testing.T) {
	obj := NewImage(1, 2, gradientImage(4, 4, OrderRGB))
	if obj.X != 1 || obj.Y != 2 {
		t.Errorf("anchor = (%g,%g), want (1,2)", obj.X, obj.Y)
	}
	if obj.ScaleX != 1 || obj.ScaleY != 1 {
		t.Errorf("scale = (%g,%g), want (1,1)", obj.ScaleX, obj.ScaleY)
	}
	if obj.Alpha != 1 {
		t.Errorf("alpha = %g, want 1", obj.Alpha)
	}
	if obj.Interpolation != "" {
		t.Errorf("interpolation = %q, want viewer default", obj.Interpolation)
	}
	if obj.LineWidth != 0 || obj.LineStyle != LineSolid {
		t.Errorf("border = (%d,%q), want (0,solid)", obj.LineWidth, obj.LineStyle)
	}
	if !obj.Optimize {
		t.Error("Optimize = false, want true")
	}
	if obj.Editable {
		t.Error("Editable = true, want false by default")
	}
	if obj.Kind() != "image" {
		t.Errorf("Kind() = %q, want image", obj.Kind())
	}
}

func TestImageOptions(t *testing.T) {
	obj := NewImage(0, 0, nil,
		WithScale(2, 3),
		WithInterpolation(InterpBicubic),
		WithAlpha(0.5),
		WithBorder(2, LineDash, Red),
		WithShowCap(true),
		WithFlipY(true),
		WithOptimize(false))

	if obj.ScaleX != 2 || obj.ScaleY != 3 {
		t.Errorf("scale = (%g,%g), want (2,3)", obj.ScaleX, obj.ScaleY)
	}
	if obj.Interpolation != InterpBicubic {
		t.Errorf("interpolation = %q, want bicubic", obj.Interpolation)
	}
	if obj.Alpha != 0.5 {
		t.Errorf("alpha = %g, want 0.5", obj.Alpha)
	}
	if obj.LineWidth != 2 || obj.LineStyle != LineDash || obj.Color != Red {
		t.Errorf("border = (%d,%q,%+v), want (2,dash,red)", obj.LineWidth, obj.LineStyle, obj.Color)
	}
	if !obj.ShowCap || !obj.FlipY || obj.Optimize {
		t.Errorf("flags = (cap %v, flipy %v, optimize %v)", obj.ShowCap, obj.FlipY, obj.Optimize)
	}
}

func TestNormImageOptions(t *testing.T) {
	m := GrayRGBMap(64)
	ac := StdDevAutoCuts{}
	obj := NewNormImage(0, 0, nil,
		WithCuts(10, 90),
		WithRGBMap(m),
		WithAutoCuts(ac))

	if obj.Kind() != "normimage" {
		t.Errorf("Kind() = %q, want normimage", obj.Kind())
	}
	if obj.Cuts == nil || obj.Cuts.Lo != 10 || obj.Cuts.Hi != 90 {
		t.Errorf("cuts = %+v, want (10,90)", obj.Cuts)
	}
	if obj.RGBMap != m {
		t.Error("RGBMap not applied")
	}
	if obj.AutoCuts != ac {
		t.Error("AutoCuts not applied")
	}
}
