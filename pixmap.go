package ginga

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer with an explicit channel
// order. It is used for source images, scaled cutouts, color-mapped
// results and destination framebuffers alike.
type Pixmap struct {
	width  int
	height int
	order  Order
	data   []uint8 // len(order) bytes per pixel, row-major
}

// NewPixmap creates a new pixmap with the given dimensions and channel
// order.
func NewPixmap(width, height int, order Order) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		order:  order,
		data:   make([]uint8, width*height*order.Channels()),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Order returns the channel order of the pixmap.
func (p *Pixmap) Order() Order {
	return p.order
}

// Data returns the raw pixel data in the pixmap's channel order.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Pix returns the bytes of a single pixel as a slice view into the
// underlying data. Mutations write through. Returns nil if (x, y) is
// out of bounds.
func (p *Pixmap) Pix(x, y int) []uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return nil
	}
	ch := p.order.Channels()
	i := (y*p.width + x) * ch
	return p.data[i : i+ch]
}

// SetPixel sets the color of a single pixel. Components absent from the
// channel order are dropped; a mono pixmap stores the red component.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	px := p.Pix(x, y)
	if px == nil {
		return
	}
	for i := 0; i < len(p.order); i++ {
		switch p.order[i] {
		case 'R', 'M':
			px[i] = uint8(clamp255(c.R * 255))
		case 'G':
			px[i] = uint8(clamp255(c.G * 255))
		case 'B':
			px[i] = uint8(clamp255(c.B * 255))
		case 'A':
			px[i] = uint8(clamp255(c.A * 255))
		}
	}
}

// GetPixel returns the color of a single pixel. A pixmap without an
// alpha channel reads as opaque; a mono pixmap reads as gray.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	px := p.Pix(x, y)
	if px == nil {
		return Transparent
	}
	c := RGBA{A: 1}
	for i := 0; i < len(p.order); i++ {
		v := float64(px[i]) / 255
		switch p.order[i] {
		case 'R':
			c.R = v
		case 'G':
			c.G = v
		case 'B':
			c.B = v
		case 'A':
			c.A = v
		case 'M':
			c.R, c.G, c.B = v, v, v
		}
	}
	return c
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// Channel returns a copy of a single channel plane, sample per pixel.
func (p *Pixmap) Channel(i int) []uint8 {
	ch := p.order.Channels()
	out := make([]uint8, p.width*p.height)
	for j := range out {
		out[j] = p.data[j*ch+i]
	}
	return out
}

// DropChannel returns a new pixmap with channel i removed from every
// pixel and from the order.
func (p *Pixmap) DropChannel(i int) *Pixmap {
	ch := p.order.Channels()
	out := NewPixmap(p.width, p.height, p.order[:i]+p.order[i+1:])
	och := ch - 1
	for j := 0; j < p.width*p.height; j++ {
		src := p.data[j*ch : j*ch+ch]
		dst := out.data[j*och : j*och+och]
		copy(dst[:i], src[:i])
		copy(dst[i:], src[i+1:])
	}
	return out
}

// FlipV returns a new pixmap with the rows in reverse order. The swap
// is done on the raw bytes so translucent samples survive exactly.
func (p *Pixmap) FlipV() *Pixmap {
	out := NewPixmap(p.width, p.height, p.order)
	stride := p.width * p.order.Channels()
	for y := 0; y < p.height; y++ {
		src := p.data[y*stride : (y+1)*stride]
		dst := out.data[(p.height-1-y)*stride : (p.height-y)*stride]
		copy(dst, src)
	}
	return out
}

// ToImage converts the pixmap to an image.NRGBA, honoring the channel
// order. Pixmaps without alpha convert as fully opaque; a primary the
// order does not carry converts as 0.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	ch := p.order.Channels()
	ri := p.order.Index('R')
	gi := p.order.Index('G')
	bi := p.order.Index('B')
	ai := p.order.Index('A')
	mi := p.order.Index('M')
	sample := func(px []uint8, i int) uint8 {
		if i < 0 {
			return 0
		}
		return px[i]
	}
	for j := 0; j < p.width*p.height; j++ {
		px := p.data[j*ch : j*ch+ch]
		o := j * 4
		if mi >= 0 {
			img.Pix[o+0] = px[mi]
			img.Pix[o+1] = px[mi]
			img.Pix[o+2] = px[mi]
		} else {
			img.Pix[o+0] = sample(px, ri)
			img.Pix[o+1] = sample(px, gi)
			img.Pix[o+2] = sample(px, bi)
		}
		if ai >= 0 {
			img.Pix[o+3] = px[ai]
		} else {
			img.Pix[o+3] = 255
		}
	}
	return img
}

// FromImage creates a pixmap in the given channel order from an image.
func FromImage(img image.Image, order Order) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy(), order)
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}
	return pm
}

// fromNRGBA converts an NRGBA image back into the given channel order
// without going through the color.Color interface.
func fromNRGBA(img *image.NRGBA, order Order) *Pixmap {
	pm := NewPixmap(img.Rect.Dx(), img.Rect.Dy(), order)
	ch := order.Channels()
	for j := 0; j < pm.width*pm.height; j++ {
		src := img.Pix[j*4 : j*4+4]
		dst := pm.data[j*ch : j*ch+ch]
		for i := 0; i < len(order); i++ {
			switch order[i] {
			case 'R', 'M':
				dst[i] = src[0]
			case 'G':
				dst[i] = src[1]
			case 'B':
				dst[i] = src[2]
			case 'A':
				dst[i] = src[3]
			}
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
