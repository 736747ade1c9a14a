package ginga

import (
	"math"
	"testing"
)

func TestCutLevelsLinear(t *testing.T) {
	pm := NewPixmap(4, 1, OrderMono)
	copy(pm.Data(), []uint8{0, 100, 200, 255})

	idx := cutLevels(pm, 0, 255, 0, 255)
	want := []uint32{0, 100, 200, 255}
	for i, w := range want {
		if idx.Data[i] != w {
			t.Errorf("idx[%d] = %d, want %d", i, idx.Data[i], w)
		}
	}
}

func TestCutLevelsClips(t *testing.T) {
	pm := NewPixmap(3, 1, OrderMono)
	copy(pm.Data(), []uint8{10, 100, 240})

	idx := cutLevels(pm, 50, 150, 0, 255)
	if idx.Data[0] != 0 {
		t.Errorf("below lo maps to %d, want 0", idx.Data[0])
	}
	if idx.Data[2] != 255 {
		t.Errorf("above hi maps to %d, want 255", idx.Data[2])
	}
	// midpoint of the window maps to midpoint of the range
	if got := idx.Data[1]; got != 128 {
		t.Errorf("mid value maps to %d, want 128", got)
	}
}

func TestCutLevelsDegenerateWindow(t *testing.T) {
	pm := NewPixmap(2, 1, OrderMono)
	copy(pm.Data(), []uint8{10, 200})

	idx := cutLevels(pm, 100, 100, 0, 255)
	if idx.Data[0] != 0 {
		t.Errorf("below threshold = %d, want 0", idx.Data[0])
	}
	if idx.Data[1] != 255 {
		t.Errorf("above threshold = %d, want 255", idx.Data[1])
	}
}

func TestCutLevelsKeepsChannels(t *testing.T) {
	pm := gradientPixmap(3, 2, OrderRGB)
	idx := cutLevels(pm, 0, 255, 0, 255)
	if idx.Channels != 3 {
		t.Errorf("Channels = %d, want 3", idx.Channels)
	}
	if len(idx.Data) != 3*2*3 {
		t.Errorf("len(Data) = %d, want 18", len(idx.Data))
	}
}

func TestMinMaxAutoCuts(t *testing.T) {
	pm := NewPixmap(4, 1, OrderMono)
	copy(pm.Data(), []uint8{30, 5, 250, 100})

	lo, hi := MinMaxAutoCuts{}.CalcCutLevels(pm)
	if lo != 5 || hi != 250 {
		t.Errorf("cut levels = (%g, %g), want (5, 250)", lo, hi)
	}
}

func TestStdDevAutoCutsUniform(t *testing.T) {
	pm := NewPixmap(10, 1, OrderMono)
	for i := range pm.Data() {
		pm.Data()[i] = 42
	}

	lo, hi := StdDevAutoCuts{}.CalcCutLevels(pm)
	if lo != 42 || hi != 42 {
		t.Errorf("uniform data cut levels = (%g, %g), want (42, 42)", lo, hi)
	}
}

func TestStdDevAutoCutsSpread(t *testing.T) {
	pm := NewPixmap(2, 1, OrderMono)
	copy(pm.Data(), []uint8{0, 200})

	lo, hi := StdDevAutoCuts{Hensa: 1}.CalcCutLevels(pm)
	mean := 100.0
	if !(lo < mean && hi > mean) {
		t.Errorf("cut levels (%g, %g) do not bracket the mean", lo, hi)
	}
	if math.Abs((mean-lo)-(hi-mean)) > 1e-9 {
		t.Errorf("window not centered: (%g, %g)", lo, hi)
	}
}

func TestHistogramAutoCuts(t *testing.T) {
	pm := NewPixmap(100, 1, OrderMono)
	for i := 0; i < 100; i++ {
		pm.Data()[i] = uint8(i)
	}

	lo, hi := HistogramAutoCuts{Pct: 0.9}.CalcCutLevels(pm)
	if lo < 1 || lo > 10 {
		t.Errorf("lo = %g, want within the lower tail", lo)
	}
	if hi < 90 || hi > 99 {
		t.Errorf("hi = %g, want within the upper tail", hi)
	}
	if hi <= lo {
		t.Errorf("hi %g <= lo %g", hi, lo)
	}
}

func TestMedianAutoCutsSuppressesHotPixel(t *testing.T) {
	pm := NewPixmap(9, 9, OrderRGB)
	for i := range pm.Data() {
		pm.Data()[i] = 10
	}
	// one hot pixel in the middle
	copy(pm.Pix(4, 4), []uint8{255, 255, 255})

	_, hiRaw := MinMaxAutoCuts{}.CalcCutLevels(pm)
	if hiRaw != 255 {
		t.Fatalf("raw hi = %g, want 255", hiRaw)
	}
	_, hiMed := MedianAutoCuts{Size: 3}.CalcCutLevels(pm)
	if hiMed != 10 {
		t.Errorf("median-filtered hi = %g, want 10", hiMed)
	}
}
