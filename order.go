package ginga

import "strings"

// Order describes the per-pixel arrangement of color and alpha
// components in a pixel buffer, one letter per channel. Typical values
// are "RGB", "RGBA", "BGRA" and "ARGB". "M" denotes a single
// monochrome channel.
type Order string

// Common channel orders.
const (
	OrderRGB  Order = "RGB"
	OrderRGBA Order = "RGBA"
	OrderBGRA Order = "BGRA"
	OrderARGB Order = "ARGB"
	OrderMono Order = "M"
)

// Channels returns the number of components per pixel.
func (o Order) Channels() int {
	return len(o)
}

// Index returns the position of channel c within the order, or -1 if
// the order does not contain it.
func (o Order) Index(c byte) int {
	return strings.IndexByte(string(o), c)
}

// HasAlpha reports whether the order includes an alpha channel.
func (o Order) HasAlpha() bool {
	return o.Index('A') >= 0
}

// Valid reports whether the order is non-empty and contains only known
// channel letters, each at most once.
func (o Order) Valid() bool {
	if len(o) == 0 {
		return false
	}
	seen := [256]bool{}
	for i := 0; i < len(o); i++ {
		c := o[i]
		switch c {
		case 'R', 'G', 'B', 'A', 'M':
		default:
			return false
		}
		if seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// Drop returns the order with channel c removed. If c is absent the
// order is returned unchanged.
func (o Order) Drop(c byte) Order {
	i := o.Index(c)
	if i < 0 {
		return o
	}
	return o[:i] + o[i+1:]
}
