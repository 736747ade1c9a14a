package ginga

// IndexArray holds unsigned color-table indexes produced by cut-levels
// normalization, one sample per pixel per channel.
type IndexArray struct {
	Width    int
	Height   int
	Channels int
	Data     []uint32
}

// NewIndexArray allocates an index array.
func NewIndexArray(width, height, channels int) *IndexArray {
	return &IndexArray{
		Width:    width,
		Height:   height,
		Channels: channels,
		Data:     make([]uint32, width*height*channels),
	}
}

// ColorMapper converts an index array into colored pixels. A viewer
// supplies its current mapper; a NormImage may carry a dedicated one.
type ColorMapper interface {
	// HashSize returns the number of entries in the color table.
	// Valid indexes are [0, HashSize()-1].
	HashSize() int

	// MaxC returns the maximum output component value.
	MaxC() uint8

	// RGBArray maps idx through the color table into a pixmap in
	// dstOrder. imageOrder is the channel order of the source the
	// indexes were derived from; a multi-channel index array maps each
	// primary through its own curve.
	RGBArray(idx *IndexArray, dstOrder, imageOrder Order) *Pixmap
}

// RGBMap is a lookup-table color mapper.
type RGBMap struct {
	clut [][3]uint8
}

// NewRGBMap creates a mapper from an explicit color table. The table
// length is the hash size.
func NewRGBMap(table [][3]uint8) *RGBMap {
	return &RGBMap{clut: table}
}

// GrayRGBMap creates a linear grayscale mapper with the given hash
// size.
func GrayRGBMap(hashSize int) *RGBMap {
	if hashSize <= 1 {
		hashSize = 256
	}
	table := make([][3]uint8, hashSize)
	for i := range table {
		v := uint8(i * 255 / (hashSize - 1))
		table[i] = [3]uint8{v, v, v}
	}
	return &RGBMap{clut: table}
}

// HashSize returns the number of color table entries.
func (m *RGBMap) HashSize() int {
	return len(m.clut)
}

// MaxC returns the maximum output component value.
func (m *RGBMap) MaxC() uint8 {
	return 255
}

// RGBArray implements ColorMapper. Mono index arrays look up full
// table rows; 3-channel index arrays send each source primary through
// its own column of the table. Alpha in dstOrder is set to MaxC; the
// caller overrides it when a separated alpha plane exists.
func (m *RGBMap) RGBArray(idx *IndexArray, dstOrder, imageOrder Order) *Pixmap {
	out := NewPixmap(idx.Width, idx.Height, dstOrder)
	och := dstOrder.Channels()
	last := uint32(len(m.clut) - 1)

	// column of the table feeding each destination channel
	col := make([]int, len(dstOrder))
	srcCh := make([]int, len(dstOrder))
	for i := 0; i < len(dstOrder); i++ {
		switch dstOrder[i] {
		case 'R', 'M':
			col[i] = 0
		case 'G':
			col[i] = 1
		case 'B':
			col[i] = 2
		case 'A':
			col[i] = -1
		}
		if idx.Channels > 1 {
			// index samples follow the source color layout, alpha
			// already stripped
			srcCh[i] = imageOrder.Drop('A').Index(dstOrder[i])
		}
	}

	for j := 0; j < idx.Width*idx.Height; j++ {
		dp := out.data[j*och : j*och+och]
		for i := 0; i < len(dstOrder); i++ {
			if col[i] < 0 {
				dp[i] = m.MaxC()
				continue
			}
			var v uint32
			if idx.Channels == 1 {
				v = idx.Data[j]
			} else {
				si := srcCh[i]
				if si < 0 || si >= idx.Channels {
					si = col[i]
				}
				v = idx.Data[j*idx.Channels+si]
			}
			if v > last {
				v = last
			}
			dp[i] = m.clut[v][col[i]]
		}
	}
	return out
}
