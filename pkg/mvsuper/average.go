package mvsuper

// Average2 writes the rounded-up per-sample mean of two pitched windows
// into a third. Quarter-pel refinement derives most of its phases by
// averaging pairs of already-computed half-pel phases with this.
func Average2[T Pixel](src1, src2 []T, dest []T, pitch, width, height int) {
	offset := 0
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			a := uint32(src1[offset+i])
			b := uint32(src2[offset+i])
			dest[offset+i] = saturate[T]((a + b + 1) / 2)
		}
		offset += pitch
	}
}
