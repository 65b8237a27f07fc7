package mvsuper

// GroupOfFrames is the per-level frame array of one superframe: frame 0
// is the finest (source) level, each following frame half the size. It
// owns no pixels; every operation runs against the shared buffer.
type GroupOfFrames[T Pixel] struct {
	LevelCount int
	Pel        Subpel
	Frames     []*MVFrame[T]

	width    [3]int
	height   [3]int
	hpad     [3]int
	vpad     [3]int
	xRatioUV int
	yRatioUV int
}

// NewGroupOfFrames computes the per-level geometry for levelCount levels
// and lays the planes out in the shared buffer via PlaneSuperOffset.
// Only level 0 carries sub-pixel phase windows; coarser levels are
// full-pel.
func NewGroupOfFrames[T Pixel](levelCount, width, height int, pel Subpel, hpad, vpad int,
	yuvMode PlaneSet, xRatioUV, yRatioUV, bitsPerSample int, pitch [3]int, planeCount int) (*GroupOfFrames[T], error) {

	chromaWidth := width / xRatioUV
	chromaHeight := height / yRatioUV

	gof := &GroupOfFrames[T]{
		LevelCount: levelCount,
		Pel:        pel,
		width:      [3]int{width, chromaWidth, chromaWidth},
		height:     [3]int{height, chromaHeight, chromaHeight},
		hpad:       [3]int{hpad, hpad / xRatioUV, hpad / xRatioUV},
		vpad:       [3]int{vpad, vpad / yRatioUV, vpad / yRatioUV},
		xRatioUV:   xRatioUV,
		yRatioUV:   yRatioUV,
	}

	frames := make([]*MVFrame[T], 0, levelCount)
	for i := 0; i < levelCount; i++ {
		widthI := PlaneWidthLuma(width, i, xRatioUV, hpad)
		heightI := PlaneHeightLuma(height, i, yRatioUV, vpad)

		planeOffsets := make([]int, 0, planeCount)
		for plane := 0; plane < planeCount; plane++ {
			planeOffsets = append(planeOffsets, PlaneSuperOffset(plane > 0,
				gof.height[plane], i, pel, gof.vpad[plane], pitch[plane], yRatioUV))
		}

		levelPel := SubpelFull
		if i == 0 {
			levelPel = pel
		}
		frame, err := NewMVFrame[T](widthI, heightI, levelPel, gof.hpad[0], gof.vpad[0],
			yuvMode, xRatioUV, yRatioUV, bitsPerSample, planeOffsets, pitch)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	gof.Frames = frames

	return gof, nil
}

// Reduce builds every coarser level from the one above it, padding each
// new level as soon as it is filled.
func (g *GroupOfFrames[T]) Reduce(mode PlaneSet, filter ReduceFilter, bufs [3][]T) {
	for i := 0; i < g.LevelCount-1; i++ {
		g.Frames[i].ReduceTo(g.Frames[i+1], mode, filter, bufs)
		g.Frames[i+1].Pad(YUVPlanes, bufs)
	}
}

// Pad edge-replicates the finest level's borders.
func (g *GroupOfFrames[T]) Pad(mode PlaneSet, bufs [3][]T) {
	g.Frames[0].Pad(mode, bufs)
}

// Refine synthesizes the finest level's sub-pixel phases.
func (g *GroupOfFrames[T]) Refine(mode PlaneSet, method SubpelMethod, bufs [3][]T) {
	g.Frames[0].Refine(mode, method, bufs)
}

// RefineExt fills the finest level's sub-pixel phases from pre-upsampled
// source planes.
func (g *GroupOfFrames[T]) RefineExt(mode PlaneSet, srcPel [3][]T, srcPelPitch [3]int, isExtPadded bool, bufs [3][]T) {
	g.Frames[0].RefineExt(mode, srcPel, srcPelPitch, isExtPadded, bufs)
}
