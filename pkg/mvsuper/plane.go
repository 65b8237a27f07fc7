package mvsuper

import (
	"fmt"
	"sort"
)

// MVPlane tracks one color plane of one frame at one pyramid level: its
// geometry inside the shared superframe buffer and how far through the
// fill -> pad -> refine lifecycle it has progressed. The pixel data
// itself lives in the caller-owned buffer; an MVPlane only ever holds
// offsets into it.
type MVPlane[T Pixel] struct {
	// SubpelWindowOffsets addresses the pel*pel phase windows in the
	// shared buffer, one padded_width x padded_height window per phase.
	// Offset 0 is the plane's base (unshifted) window.
	SubpelWindowOffsets []int

	Width        int
	Height       int
	PaddedWidth  int
	PaddedHeight int
	Pitch        int
	HPad         int
	VPad         int
	HPadPel      int
	VPadPel      int

	// OffsetPadding is the distance from a window's top-left corner to
	// its first interior pixel: pitch*vpad + hpad.
	OffsetPadding int

	BitsPerSample int
	Pel           Subpel

	filled  bool
	padded  bool
	refined bool
}

// NewMVPlane lays out a plane at planeOffset in the shared buffer. The
// phase windows are allocated back to back, spaced pitch*paddedHeight
// samples apart, so they are same-sized and mutually disjoint by
// construction.
func NewMVPlane[T Pixel](width, height int, pel Subpel, hpad, vpad, bitsPerSample, planeOffset, pitch int) (*MVPlane[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mvsuper: plane dimensions must be positive, got %dx%d", width, height)
	}
	if pitch < width+2*hpad {
		return nil, fmt.Errorf("mvsuper: pitch %d too small for padded width %d", pitch, width+2*hpad)
	}
	if bitsPerSample < 1 || bitsPerSample > 16 {
		return nil, fmt.Errorf("mvsuper: bits per sample must be 1-16, got %d", bitsPerSample)
	}

	pelVal := int(pel)
	paddedHeight := height + 2*vpad

	windows := pelVal * pelVal
	offsets := make([]int, windows)
	for i := range offsets {
		offsets[i] = planeOffset + i*pitch*paddedHeight
	}

	return &MVPlane[T]{
		SubpelWindowOffsets: offsets,
		Width:               width,
		Height:              height,
		PaddedWidth:         width + 2*hpad,
		PaddedHeight:        paddedHeight,
		Pitch:               pitch,
		HPad:                hpad,
		VPad:                vpad,
		HPadPel:             hpad * pelVal,
		VPadPel:             vpad * pelVal,
		OffsetPadding:       pitch*vpad + hpad,
		BitsPerSample:       bitsPerSample,
		Pel:                 pel,
	}, nil
}

// Filled reports whether the plane's interior has been written.
func (p *MVPlane[T]) Filled() bool { return p.filled }

// Padded reports whether the plane's borders have been replicated.
func (p *MVPlane[T]) Padded() bool { return p.padded }

// Refined reports whether the sub-pixel phases have been synthesized.
func (p *MVPlane[T]) Refined() bool { return p.refined }

// FillPlane copies width x height samples from an arbitrarily-pitched
// source into the interior of window 0, leaving borders and the other
// phase windows untouched. A second call is a no-op.
func (p *MVPlane[T]) FillPlane(src []T, srcPitch int, dest []T) {
	if p.filled {
		return
	}

	offset := p.SubpelWindowOffsets[0] + p.OffsetPadding
	BitBlt(dest[offset:], p.Pitch, src, srcPitch, p.Width, p.Height)

	p.filled = true
}

// Pad edge-replicates window 0's borders. A second call is a no-op.
func (p *MVPlane[T]) Pad(buf []T) {
	if p.padded {
		return
	}
	PadReferenceFrame(p.SubpelWindowOffsets[0], p.Pitch, p.HPad, p.VPad, p.Width, p.Height, buf)
	p.padded = true
}

// ReduceTo fills the next coarser level's plane from this one using the
// selected downscale filter. Both planes address the same shared buffer;
// the source and destination windows are split apart so the kernel never
// sees overlapping memory. A no-op if the target is already filled.
func (p *MVPlane[T]) ReduceTo(reduced *MVPlane[T], filter ReduceFilter, buf []T) {
	if reduced.filled {
		return
	}

	srcOff := p.SubpelWindowOffsets[0] + p.OffsetPadding
	destOff := reduced.SubpelWindowOffsets[0] + reduced.OffsetPadding

	reduce := reduceFilter[T](filter)
	if srcOff <= destOff {
		left, right := buf[:destOff], buf[destOff:]
		reduce(right, left[srcOff:], reduced.Pitch, p.Pitch, reduced.Width, reduced.Height)
	} else {
		left, right := buf[:srcOff], buf[srcOff:]
		reduce(left[destOff:], right, reduced.Pitch, p.Pitch, reduced.Width, reduced.Height)
	}

	reduced.filled = true
}

// refineWithSplit runs a refine kernel between two windows of the same
// buffer. Splitting the buffer at the larger offset yields two
// independent slices, proving the kernel's reads and writes cannot
// overlap without copying the plane.
func refineWithSplit[T Pixel](plane []T, srcOffset, destOffset int, fn refineFn[T], pitch, paddedWidth, paddedHeight, bitsPerSample int) {
	if srcOffset <= destOffset {
		left, right := plane[:destOffset], plane[destOffset:]
		fn(right, left[srcOffset:], pitch, paddedWidth, paddedHeight, bitsPerSample)
	} else {
		left, right := plane[:srcOffset], plane[srcOffset:]
		fn(left[destOffset:], right, pitch, paddedWidth, paddedHeight, bitsPerSample)
	}
}

// average2WithSplit averages two windows into a third, all in the same
// buffer. The three offsets are sorted and the buffer is cut into three
// disjoint segments so each window lives in its own slice.
func average2WithSplit[T Pixel](plane []T, src1Offset, src2Offset, destOffset int, pitch, width, height int) {
	type region struct {
		offset int
		role   int // 0 = dest, 1 = src1, 2 = src2
	}
	regions := []region{
		{src1Offset, 1},
		{src2Offset, 2},
		{destOffset, 0},
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i].offset < regions[j].offset })

	second := regions[1].offset
	third := regions[2].offset

	firstPart, rest := plane[:second], plane[second:]
	secondPart, thirdPart := rest[:third-second], rest[third-second:]

	slices := [3][]T{}
	for i, part := range [][]T{firstPart, secondPart, thirdPart} {
		var base int
		switch i {
		case 0:
			base = 0
		case 1:
			base = second
		default:
			base = third
		}
		slices[regions[i].role] = part[regions[i].offset-base:]
	}

	Average2(slices[1], slices[2], slices[0], pitch, width, height)
}

// Refine synthesizes the sub-pixel phase windows in place using the
// selected interpolation method. Half-pel computes the three shifted
// phases directly; quarter-pel computes three "half" phases the same way
// and derives the remaining phases by averaging fixed pairs of
// already-computed windows. Mutually exclusive with RefineExt; whichever
// runs first wins, and a second call is a no-op.
func (p *MVPlane[T]) Refine(method SubpelMethod, plane []T) {
	if p.refined {
		return
	}

	if p.Pel == SubpelFull {
		p.refined = true
		return
	}

	var refine [3]refineFn[T]
	switch method {
	case SubpelBilinear:
		refine = [3]refineFn[T]{
			RefineHorizontalBilinear[T],
			RefineVerticalBilinear[T],
			RefineDiagonalBilinear[T],
		}
	case SubpelBicubic:
		refine = [3]refineFn[T]{
			RefineHorizontalBicubic[T],
			RefineVerticalBicubic[T],
			RefineHorizontalBicubic[T],
		}
	case SubpelWiener:
		refine = [3]refineFn[T]{
			RefineHorizontalWiener[T],
			RefineVerticalWiener[T],
			RefineHorizontalWiener[T],
		}
	default:
		panic(fmt.Sprintf("mvsuper: unknown subpel method %d", method))
	}

	win := p.SubpelWindowOffsets
	var srcOffsets, destOffsets [3]int
	switch p.Pel {
	case SubpelHalf:
		destOffsets = [3]int{win[1], win[2], win[3]}
		srcOffsets = [3]int{win[0], win[0], win[2]}
		if method == SubpelBilinear {
			srcOffsets[2] = win[0]
		}
	case SubpelQuarter:
		destOffsets = [3]int{win[2], win[8], win[10]}
		srcOffsets = [3]int{win[0], win[0], win[8]}
		if method == SubpelBilinear {
			srcOffsets[2] = win[0]
		}
	}

	for i := 0; i < 3; i++ {
		refineWithSplit(plane, srcOffsets[i], destOffsets[i], refine[i],
			p.Pitch, p.PaddedWidth, p.PaddedHeight, p.BitsPerSample)
	}

	if p.Pel == SubpelQuarter {
		pw, ph, pitch := p.PaddedWidth, p.PaddedHeight, p.Pitch

		// Quarter phases between the computed half phases. The pairings
		// form a fixed averaging graph; the +1 / +pitch source offsets
		// shift the left/top operand by one integer sample so the mean
		// lands on the quarter position.
		average2WithSplit(plane, win[0], win[2], win[1], pitch, pw, ph)
		average2WithSplit(plane, win[8], win[10], win[9], pitch, pw, ph)
		average2WithSplit(plane, win[0], win[8], win[4], pitch, pw, ph)
		average2WithSplit(plane, win[2], win[10], win[6], pitch, pw, ph)
		average2WithSplit(plane, win[4], win[6], win[5], pitch, pw, ph)

		average2WithSplit(plane, win[0]+1, win[2], win[3], pitch, pw-1, ph)
		average2WithSplit(plane, win[8]+1, win[10], win[11], pitch, pw-1, ph)
		average2WithSplit(plane, win[0]+pitch, win[8], win[12], pitch, pw, ph-1)
		average2WithSplit(plane, win[2]+pitch, win[10], win[14], pitch, pw, ph-1)
		average2WithSplit(plane, win[12], win[14], win[13], pitch, pw, ph)
		average2WithSplit(plane, win[4]+1, win[6], win[7], pitch, pw-1, ph)
		average2WithSplit(plane, win[12]+1, win[14], win[15], pitch, pw-1, ph)
	}

	p.refined = true
}

// RefineExt fills the phase windows from a caller-supplied pre-upsampled
// (pel x) source instead of interpolating. Mutually exclusive with
// Refine; a second call is a no-op.
func (p *MVPlane[T]) RefineExt(srcPel []T, srcPelPitch int, isExtPadded bool, dest []T) {
	if !p.refined {
		switch p.Pel {
		case SubpelFull:
			// no sub-pixel phases to synthesize
		case SubpelHalf:
			p.refineExtPel2(srcPel, srcPelPitch, isExtPadded, dest)
		case SubpelQuarter:
			p.refineExtPel4(srcPel, srcPelPitch, isExtPadded, dest)
		}
	}
	p.refined = true
}
