package mvsuper

// PlaneHeightLuma returns the luma plane height at a hierarchical level.
// Each level halves the height; the rounding keeps the result aligned to
// the vertical chroma subsampling ratio. With enough vertical padding the
// dimension rounds up, otherwise down, so that chroma planes derived from
// it stay representable.
func PlaneHeightLuma(srcHeight, level, yRatioUV, vpad int) int {
	height := srcHeight
	for i := 1; i <= level; i++ {
		if vpad >= yRatioUV {
			height = (height/yRatioUV + 1) / 2 * yRatioUV
		} else {
			height = height / yRatioUV / 2 * yRatioUV
		}
	}
	return height
}

// PlaneWidthLuma returns the luma plane width at a hierarchical level.
// Mirror of PlaneHeightLuma for the horizontal axis.
func PlaneWidthLuma(srcWidth, level, xRatioUV, hpad int) int {
	width := srcWidth
	for i := 1; i <= level; i++ {
		if hpad >= xRatioUV {
			width = (width/xRatioUV + 1) / 2 * xRatioUV
		} else {
			width = width / xRatioUV / 2 * xRatioUV
		}
	}
	return width
}

// PlaneSuperOffset returns the sample offset where a level's plane begins
// inside the superframe buffer. Level 0 (and its pel*pel phase windows)
// occupies the head of the buffer; each coarser level follows the padded
// extent of the level before it. For any level > 0 the luma and chroma
// computations agree exactly since chroma dimensions are the luma
// dimensions scaled by the subsampling ratio.
func PlaneSuperOffset(chroma bool, srcHeight, level int, pel Subpel, vpad, planePitch, yRatioUV int) int {
	if level == 0 {
		return 0
	}

	pelVal := int(pel)
	offset := pelVal * pelVal * planePitch * (srcHeight + vpad*2)

	for i := 1; i < level; i++ {
		// PlaneHeightLuma applies the halving level times itself, so each
		// intermediate level is computed from the original source height.
		var height int
		if chroma {
			height = PlaneHeightLuma(srcHeight*yRatioUV, i, yRatioUV, vpad*yRatioUV) / yRatioUV
		} else {
			height = PlaneHeightLuma(srcHeight, i, yRatioUV, vpad)
		}
		offset += planePitch * (height + vpad*2)
	}

	return offset
}
