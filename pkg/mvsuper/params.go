package mvsuper

import "fmt"

// Subpel is the sub-pixel precision of a plane: the number of phases per
// integer pixel along each axis. A plane at precision p carries p*p
// phase-shifted copies of itself ("windows") in the shared buffer.
type Subpel int

const (
	SubpelFull    Subpel = 1
	SubpelHalf    Subpel = 2
	SubpelQuarter Subpel = 4
)

// ParseSubpel validates the external 'pel' parameter.
func ParseSubpel(v int) (Subpel, error) {
	switch v {
	case 1:
		return SubpelFull, nil
	case 2:
		return SubpelHalf, nil
	case 4:
		return SubpelQuarter, nil
	}
	return 0, fmt.Errorf("invalid value for 'pel', must be 1, 2, or 4, got %d", v)
}

func (s Subpel) String() string {
	switch s {
	case SubpelFull:
		return "full"
	case SubpelHalf:
		return "half"
	case SubpelQuarter:
		return "quarter"
	}
	return fmt.Sprintf("Subpel(%d)", int(s))
}

// Windows is the number of sub-pixel phase windows (pel squared).
func (s Subpel) Windows() int {
	return int(s) * int(s)
}

// SubpelMethod selects the interpolation kernel family used to
// synthesize the sub-pixel phases.
type SubpelMethod int

const (
	SubpelBilinear SubpelMethod = iota // soft 2-tap interpolation
	SubpelBicubic                      // 4-tap Catmull-Rom
	SubpelWiener                       // sharper 6-tap, Lanczos-like
)

// ParseSubpelMethod validates the external 'sharp' parameter.
func ParseSubpelMethod(v int) (SubpelMethod, error) {
	if v < 0 || v > 2 {
		return 0, fmt.Errorf("invalid value for 'sharp', must be 0-2, got %d", v)
	}
	return SubpelMethod(v), nil
}

func (m SubpelMethod) String() string {
	switch m {
	case SubpelBilinear:
		return "bilinear"
	case SubpelBicubic:
		return "bicubic"
	case SubpelWiener:
		return "wiener"
	}
	return fmt.Sprintf("SubpelMethod(%d)", int(m))
}

// ReduceFilter selects the smoothing kernel used when halving a plane
// into the next coarser pyramid level.
type ReduceFilter int

const (
	ReduceAverage   ReduceFilter = iota // plain 2x2 averaging
	ReduceTriangle                      // shifted triangle, more smoothing
	ReduceBilinear                      // bilinear-resize-like
	ReduceQuadratic                     // 6-tap quadratic
	ReduceCubic                         // 6-tap cubic (b=1, c=0)
)

// ParseReduceFilter validates the external 'rfilter' parameter.
func ParseReduceFilter(v int) (ReduceFilter, error) {
	if v < 0 || v > 4 {
		return 0, fmt.Errorf("invalid value for 'rfilter', must be 0-4, got %d", v)
	}
	return ReduceFilter(v), nil
}

func (f ReduceFilter) String() string {
	switch f {
	case ReduceAverage:
		return "average"
	case ReduceTriangle:
		return "triangle"
	case ReduceBilinear:
		return "bilinear"
	case ReduceQuadratic:
		return "quadratic"
	case ReduceCubic:
		return "cubic"
	}
	return fmt.Sprintf("ReduceFilter(%d)", int(f))
}

// PlaneSet selects which color planes an operation touches.
type PlaneSet uint8

const (
	YPlane PlaneSet = 1 << iota
	UPlane
	VPlane

	UVPlanes  = UPlane | VPlane
	YUVPlanes = YPlane | UPlane | VPlane
)

// Has reports whether plane index i (0=Y, 1=U, 2=V) is in the set.
func (ps PlaneSet) Has(i int) bool {
	return ps&(1<<i) != 0
}
