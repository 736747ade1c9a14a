package ginga

// ImageOption configures an image object during creation.
//
// Example:
//
//	obj := ginga.NewNormImage(0, 0, img,
//	    ginga.WithScale(2, 2),
//	    ginga.WithCuts(10, 250),
//	    ginga.WithBorder(1, ginga.LineDash, ginga.LightGreen))
type ImageOption func(*imageOptions)

// imageOptions holds optional configuration for both image kinds.
type imageOptions struct {
	scaleX, scaleY float64
	interpolation  Interp
	alpha          float64
	lineWidth      int
	lineStyle      LineStyle
	color          RGBA
	showCap        bool
	flipY          bool
	optimize       bool

	// normalized variant only
	cuts     *Cuts
	rgbmap   ColorMapper
	autocuts AutoCuts
}

func defaultImageOptions() imageOptions {
	return imageOptions{
		scaleX:    1,
		scaleY:    1,
		alpha:     1,
		lineStyle: LineSolid,
		color:     LightGreen,
		optimize:  true,
	}
}

// WithScale sets the object's per-axis scale factors (default 1, 1).
func WithScale(sx, sy float64) ImageOption {
	return func(o *imageOptions) {
		o.scaleX, o.scaleY = sx, sy
	}
}

// WithInterpolation sets an explicit interpolation method instead of
// the viewer default.
func WithInterpolation(m Interp) ImageOption {
	return func(o *imageOptions) {
		o.interpolation = m
	}
}

// WithAlpha sets the compositing opacity (default 1).
func WithAlpha(alpha float64) ImageOption {
	return func(o *imageOptions) {
		o.alpha = alpha
	}
}

// WithBorder enables an outline of the given width, style and color.
func WithBorder(width int, style LineStyle, color RGBA) ImageOption {
	return func(o *imageOptions) {
		o.lineWidth = width
		o.lineStyle = style
		o.color = color
	}
}

// WithShowCap enables cap markers on the object corners.
func WithShowCap(show bool) ImageOption {
	return func(o *imageOptions) {
		o.showCap = show
	}
}

// WithFlipY flips the image vertically. The flip is applied to the
// cutout, before any normalization.
func WithFlipY(flip bool) ImageOption {
	return func(o *imageOptions) {
		o.flipY = flip
	}
}

// WithOptimize toggles the per-viewer render cache (default on).
func WithOptimize(optimize bool) ImageOption {
	return func(o *imageOptions) {
		o.optimize = optimize
	}
}

// WithCuts sets explicit (low, high) cut levels. Normalized image
// objects only.
func WithCuts(lo, hi float64) ImageOption {
	return func(o *imageOptions) {
		o.cuts = &Cuts{Lo: lo, Hi: hi}
	}
}

// WithRGBMap sets a dedicated color mapper instead of the viewer's.
// Normalized image objects only.
func WithRGBMap(m ColorMapper) ImageOption {
	return func(o *imageOptions) {
		o.rgbmap = m
	}
}

// WithAutoCuts sets a dedicated auto-cuts policy instead of the
// viewer's. Normalized image objects only.
func WithAutoCuts(a AutoCuts) ImageOption {
	return func(o *imageOptions) {
		o.autocuts = a
	}
}

func applyImageOptions(obj *ImageObject, opts []ImageOption) {
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}
	obj.ScaleX, obj.ScaleY = o.scaleX, o.scaleY
	obj.Interpolation = o.interpolation
	obj.Alpha = o.alpha
	obj.LineWidth = o.lineWidth
	obj.LineStyle = o.lineStyle
	obj.Color = o.color
	obj.ShowCap = o.showCap
	obj.FlipY = o.flipY
	obj.Optimize = o.optimize
}

func applyNormImageOptions(obj *NormImageObject, opts []ImageOption) {
	o := defaultImageOptions()
	for _, opt := range opts {
		opt(&o)
	}
	obj.ScaleX, obj.ScaleY = o.scaleX, o.scaleY
	obj.Interpolation = o.interpolation
	obj.Alpha = o.alpha
	obj.LineWidth = o.lineWidth
	obj.LineStyle = o.lineStyle
	obj.Color = o.color
	obj.ShowCap = o.showCap
	obj.FlipY = o.flipY
	obj.Optimize = o.optimize
	obj.Cuts = o.cuts
	obj.RGBMap = o.rgbmap
	obj.AutoCuts = o.autocuts
}
