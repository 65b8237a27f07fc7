package mvsuper

import "fmt"

// SuperOptions configures a superframe builder.
type SuperOptions struct {
	// Source frame geometry.
	Width         int
	Height        int
	BitsPerSample int
	// Chroma subsampling ratios (1 for 4:4:4, 2 for 4:2:0/4:2:2 axes).
	XRatioUV int
	YRatioUV int
	// PlaneCount is 1 for grayscale sources, 3 for YUV.
	PlaneCount int

	// HPad/VPad is the integer-pixel border added on each side for more
	// correct motion estimation near frame edges.
	HPad int
	VPad int
	// Pel is the sub-pixel precision of the finest level.
	Pel Subpel
	// Levels is the number of pyramid levels; 0 selects every level that
	// still has at least two chroma-aligned pixels per axis.
	Levels int
	// Chroma selects whether chroma planes are prepared too.
	Chroma bool
	// Sharp is the sub-pixel interpolation method for Pel > 1.
	Sharp SubpelMethod
	// RFilter is the level-halving smoothing filter.
	RFilter ReduceFilter
}

// Super builds superframes: buffers that stack every pyramid level of a
// frame, with sub-pixel phase windows at the finest level, laid out at
// offsets the search side can address through the plane window tables.
type Super[T Pixel] struct {
	opts   SuperOptions
	levels int

	superWidth  int
	superHeight int
	pitch       [3]int
	planeHeight [3]int
	modeYUV     PlaneSet
}

// SuperProps is the frame metadata a search consumer needs to address a
// finished superframe.
type SuperProps struct {
	Height  int
	HPad    int
	VPad    int
	Pel     int
	ModeYUV PlaneSet
	Levels  int
}

// SuperFrame is one finished superframe: per-plane buffers plus the
// per-level plane table used to address them.
type SuperFrame[T Pixel] struct {
	Planes [3][]T
	Pitch  [3]int
	GOF    *GroupOfFrames[T]
	Props  SuperProps
}

// NewSuper validates the options and computes the superframe geometry.
func NewSuper[T Pixel](opts SuperOptions) (*Super[T], error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("mvsuper: source dimensions must be positive, got %dx%d", opts.Width, opts.Height)
	}
	if opts.BitsPerSample < 1 || opts.BitsPerSample > 16 {
		return nil, fmt.Errorf("mvsuper: input must be 1-16 bits, got %d", opts.BitsPerSample)
	}
	var t T
	if _, is8 := any(t).(uint8); is8 && opts.BitsPerSample > 8 {
		return nil, fmt.Errorf("mvsuper: %d bits per sample does not fit uint8 samples", opts.BitsPerSample)
	}
	if opts.XRatioUV == 0 {
		opts.XRatioUV = 1
	}
	if opts.YRatioUV == 0 {
		opts.YRatioUV = 1
	}
	if opts.XRatioUV > 2 || opts.YRatioUV > 2 {
		return nil, fmt.Errorf("mvsuper: input must be GRAY, 420, 422, 440, or 444")
	}
	if opts.PlaneCount == 0 {
		opts.PlaneCount = 3
	}
	if opts.PlaneCount == 1 {
		opts.Chroma = false
	}
	if opts.Pel == 0 {
		opts.Pel = SubpelHalf
	}
	if _, err := ParseSubpel(int(opts.Pel)); err != nil {
		return nil, err
	}

	levelsMax := 0
	for PlaneHeightLuma(opts.Height, levelsMax, opts.YRatioUV, opts.VPad) >= opts.YRatioUV*2 &&
		PlaneWidthLuma(opts.Width, levelsMax, opts.XRatioUV, opts.HPad) >= opts.XRatioUV*2 {
		levelsMax++
	}
	levels := opts.Levels
	if levels == 0 || levels > levelsMax {
		levels = levelsMax
	}
	if levels == 0 {
		return nil, fmt.Errorf("mvsuper: %dx%d source too small for any pyramid level", opts.Width, opts.Height)
	}

	superWidth := opts.Width + 2*opts.HPad
	superHeight := PlaneSuperOffset(false, opts.Height, levels, opts.Pel, opts.VPad, superWidth, opts.YRatioUV) / superWidth
	if opts.YRatioUV == 2 && superHeight&1 != 0 {
		superHeight++
	}
	if opts.XRatioUV == 2 && superWidth&1 != 0 {
		superWidth++
	}

	modeYUV := YPlane
	if opts.Chroma {
		modeYUV = YUVPlanes
	}

	s := &Super[T]{
		opts:        opts,
		levels:      levels,
		superWidth:  superWidth,
		superHeight: superHeight,
		modeYUV:     modeYUV,
	}
	s.pitch = [3]int{superWidth, superWidth / opts.XRatioUV, superWidth / opts.XRatioUV}
	s.planeHeight = [3]int{superHeight, superHeight / opts.YRatioUV, superHeight / opts.YRatioUV}
	return s, nil
}

// SuperWidth returns the width of the superframe buffer in samples.
func (s *Super[T]) SuperWidth() int { return s.superWidth }

// SuperHeight returns the height of the superframe buffer in rows.
func (s *Super[T]) SuperHeight() int { return s.superHeight }

// Levels returns the number of pyramid levels that will be built.
func (s *Super[T]) Levels() int { return s.levels }

// ValidatePelSource checks a pre-upsampled source against the expected
// pel-multiplied dimensions and reports whether it already carries
// padding. Used when the caller supplies its own upsampler instead of
// the built-in interpolation.
func (s *Super[T]) ValidatePelSource(width, height int) (isPadded bool, err error) {
	pel := int(s.opts.Pel)
	if pel < 2 {
		return false, fmt.Errorf("mvsuper: pel source given but pel is %d", pel)
	}
	switch {
	case width == s.opts.Width*pel && height == s.opts.Height*pel:
		return false, nil
	case width == (s.opts.Width+2*s.opts.HPad)*pel && height == (s.opts.Height+2*s.opts.VPad)*pel:
		return true, nil
	}
	return false, fmt.Errorf("mvsuper: pel source must be %dx the input dimensions, padded or not, got %dx%d",
		pel, width, height)
}

// Process builds one superframe from the given source planes. srcPitch
// is per plane; chroma planes are ignored when chroma was not selected.
// When pelSrc is non-nil its planes must be pre-upsampled by pel (see
// ValidatePelSource) and phase extraction replaces interpolation.
func (s *Super[T]) Process(src [3][]T, srcPitch [3]int, pelSrc *[3][]T, pelSrcPitch [3]int, isPelSrcPadded bool) (*SuperFrame[T], error) {
	gof, err := NewGroupOfFrames[T](s.levels, s.opts.Width, s.opts.Height, s.opts.Pel,
		s.opts.HPad, s.opts.VPad, s.modeYUV, s.opts.XRatioUV, s.opts.YRatioUV,
		s.opts.BitsPerSample, s.pitch, s.opts.PlaneCount)
	if err != nil {
		return nil, err
	}

	out := &SuperFrame[T]{
		Pitch: s.pitch,
		GOF:   gof,
		Props: SuperProps{
			Height:  s.opts.Height,
			HPad:    s.opts.HPad,
			VPad:    s.opts.VPad,
			Pel:     int(s.opts.Pel),
			ModeYUV: s.modeYUV,
			Levels:  s.levels,
		},
	}

	for i := 0; i < s.opts.PlaneCount; i++ {
		if !s.modeYUV.Has(i) {
			continue
		}
		out.Planes[i] = make([]T, s.pitch[i]*s.planeHeight[i])

		plane := gof.Frames[0].Planes[i]
		if plane == nil {
			continue
		}
		if len(src[i]) < srcPitch[i]*(plane.Height-1)+plane.Width {
			return nil, fmt.Errorf("mvsuper: source plane %d too small: %d samples for %dx%d pitch %d",
				i, len(src[i]), plane.Width, plane.Height, srcPitch[i])
		}
		plane.FillPlane(src[i], srcPitch[i], out.Planes[i])
	}

	// Reduce before padding level 0: the downscale reads interior pixels
	// only, and Reduce pads each coarser level itself.
	gof.Reduce(s.modeYUV, s.opts.RFilter, out.Planes)
	gof.Pad(s.modeYUV, out.Planes)

	if pelSrc != nil {
		gof.RefineExt(s.modeYUV, *pelSrc, pelSrcPitch, isPelSrcPadded, out.Planes)
	} else {
		gof.Refine(s.modeYUV, s.opts.Sharp, out.Planes)
	}

	return out, nil
}
