package mvsuper

// MVFrame groups the planes of one frame at one pyramid level. Chroma
// planes get their dimensions and padding divided by the subsampling
// ratios; planes outside the requested PlaneSet are nil.
type MVFrame[T Pixel] struct {
	Planes [3]*MVPlane[T]
}

// NewMVFrame lays out up to three planes for one level. width/height,
// hpad/vpad are luma values; planeOffsets and pitches are per plane.
func NewMVFrame[T Pixel](width, height int, pel Subpel, hpad, vpad int, yuvMode PlaneSet,
	xRatioUV, yRatioUV, bitsPerSample int, planeOffsets []int, pitch [3]int) (*MVFrame[T], error) {

	widths := [3]int{width, width / xRatioUV, width / xRatioUV}
	heights := [3]int{height, height / yRatioUV, height / yRatioUV}
	hpads := [3]int{hpad, hpad / xRatioUV, hpad / xRatioUV}
	vpads := [3]int{vpad, vpad / yRatioUV, vpad / yRatioUV}

	f := &MVFrame[T]{}
	for i := 0; i < 3; i++ {
		if !yuvMode.Has(i) || i >= len(planeOffsets) {
			continue
		}
		plane, err := NewMVPlane[T](widths[i], heights[i], pel, hpads[i], vpads[i],
			bitsPerSample, planeOffsets[i], pitch[i])
		if err != nil {
			return nil, err
		}
		f.Planes[i] = plane
	}
	return f, nil
}

// ReduceTo downscales every selected plane into the corresponding plane
// of the next coarser level's frame. bufs holds the per-plane shared
// buffers.
func (f *MVFrame[T]) ReduceTo(reduced *MVFrame[T], mode PlaneSet, filter ReduceFilter, bufs [3][]T) {
	for i, plane := range f.Planes {
		if plane == nil || reduced.Planes[i] == nil || !mode.Has(i) {
			continue
		}
		plane.ReduceTo(reduced.Planes[i], filter, bufs[i])
	}
}

// Pad edge-replicates the borders of every selected plane.
func (f *MVFrame[T]) Pad(mode PlaneSet, bufs [3][]T) {
	for i, plane := range f.Planes {
		if plane == nil || !mode.Has(i) {
			continue
		}
		plane.Pad(bufs[i])
	}
}

// Refine synthesizes sub-pixel phases for every selected plane.
func (f *MVFrame[T]) Refine(mode PlaneSet, method SubpelMethod, bufs [3][]T) {
	for i, plane := range f.Planes {
		if plane == nil || !mode.Has(i) {
			continue
		}
		plane.Refine(method, bufs[i])
	}
}

// RefineExt fills sub-pixel phases of every selected plane from
// pre-upsampled source planes.
func (f *MVFrame[T]) RefineExt(mode PlaneSet, srcPel [3][]T, srcPelPitch [3]int, isExtPadded bool, bufs [3][]T) {
	for i, plane := range f.Planes {
		if plane == nil || !mode.Has(i) {
			continue
		}
		plane.RefineExt(srcPel[i], srcPelPitch[i], isExtPadded, bufs[i])
	}
}
