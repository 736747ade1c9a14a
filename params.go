package ginga

import "sync"

// Param describes one editable parameter of a canvas object kind.
// Tables of Params are static metadata consumed by generic property
// editors; they carry no behavior of their own.
type Param struct {
	Name        string
	Type        string // "float", "int", "bool", "str"
	Default     any
	Min, Max    float64
	HasRange    bool
	Valid       []string
	Description string
}

var (
	typesMu sync.RWMutex
	types   = map[string][]Param{}
)

// RegisterType registers the parameter table for a canvas object kind.
// Registering a kind twice replaces its table.
func RegisterType(kind string, params []Param) {
	typesMu.Lock()
	defer typesMu.Unlock()
	types[kind] = params
}

// ParamsFor returns the parameter table registered for a kind, or nil.
func ParamsFor(kind string) []Param {
	typesMu.RLock()
	defer typesMu.RUnlock()
	return types[kind]
}

// CanvasTypes returns the registered kind names.
func CanvasTypes() []string {
	typesMu.RLock()
	defer typesMu.RUnlock()
	out := make([]string, 0, len(types))
	for k := range types {
		out = append(out, k)
	}
	return out
}

// imageParams is the shared head of both image kinds' tables.
func imageParams() []Param {
	return []Param{
		{Name: "x", Type: "float", Default: 0.0,
			Description: "X coordinate of corner of object"},
		{Name: "y", Type: "float", Default: 0.0,
			Description: "Y coordinate of corner of object"},
		{Name: "scale_x", Type: "float", Default: 1.0,
			Description: "Scaling factor for X dimension of object"},
		{Name: "scale_y", Type: "float", Default: 1.0,
			Description: "Scaling factor for Y dimension of object"},
		{Name: "interpolation", Type: "str", Default: "",
			Valid: []string{"", "basic", "nearest", "linear", "area", "bicubic", "lanczos"},
			Description: "Interpolation method for scaling pixels"},
		{Name: "linewidth", Type: "int", Default: 0, Min: 0, Max: 20, HasRange: true,
			Description: "Width of outline"},
		{Name: "linestyle", Type: "str", Default: "solid",
			Valid:       []string{"solid", "dash"},
			Description: "Style of outline (default: solid)"},
		{Name: "alpha", Type: "float", Default: 1.0, Min: 0, Max: 1, HasRange: true,
			Description: "Opacity of the composited image"},
		{Name: "showcap", Type: "bool", Default: false,
			Description: "Show caps for this object"},
		{Name: "optimize", Type: "bool", Default: true,
			Description: "Optimize rendering for this object"},
	}
}

func init() {
	RegisterType("image", append(imageParams(),
		Param{Name: "flipy", Type: "bool", Default: false,
			Description: "Flip image in Y direction"}))
	RegisterType("normimage", imageParams())
}
