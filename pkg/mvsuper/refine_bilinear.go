package mvsuper

// refineFn synthesizes one sub-pixel phase window from another window of
// the same padded plane. Both windows are width x height with the same
// pitch; bitsPerSample bounds the clamp for the kernels that need one.
type refineFn[T Pixel] func(dest, src []T, pitch, width, height, bitsPerSample int)

// RefineHorizontalBilinear writes the half-sample-right phase with a
// 2-tap horizontal average. The last column has no right neighbor and is
// copied verbatim.
func RefineHorizontalBilinear[T Pixel](dest, src []T, pitch, width, height, _ int) {
	offset := 0
	for j := 0; j < height; j++ {
		for i := 0; i < width-1; i++ {
			a := uint32(src[offset+i])
			b := uint32(src[offset+i+1])
			dest[offset+i] = saturate[T]((a + b + 1) / 2)
		}
		dest[offset+width-1] = src[offset+width-1]
		offset += pitch
	}
}

// RefineVerticalBilinear writes the half-sample-down phase with a 2-tap
// vertical average. The last row is copied verbatim.
func RefineVerticalBilinear[T Pixel](dest, src []T, pitch, width, height, _ int) {
	offset := 0
	for j := 0; j < height-1; j++ {
		for i := 0; i < width; i++ {
			a := uint32(src[offset+i])
			b := uint32(src[offset+i+pitch])
			dest[offset+i] = saturate[T]((a + b + 1) / 2)
		}
		offset += pitch
	}
	copy(dest[offset:offset+width], src[offset:offset+width])
}

// RefineDiagonalBilinear writes the half-sample-diagonal phase by
// averaging the four surrounding integer pixels. The last column and row
// degrade to 2-tap averages and the bottom-right pixel is copied.
func RefineDiagonalBilinear[T Pixel](dest, src []T, pitch, width, height, _ int) {
	offset := 0
	for j := 0; j < height-1; j++ {
		for i := 0; i < width-1; i++ {
			a := uint32(src[offset+i])
			b := uint32(src[offset+i+1])
			c := uint32(src[offset+i+pitch])
			d := uint32(src[offset+i+pitch+1])
			dest[offset+i] = saturate[T]((a + b + c + d + 2) / 4)
		}
		a := uint32(src[offset+width-1])
		b := uint32(src[offset+width-1+pitch])
		dest[offset+width-1] = saturate[T]((a + b + 1) / 2)

		offset += pitch
	}

	for i := 0; i < width-1; i++ {
		a := uint32(src[offset+i])
		b := uint32(src[offset+i+1])
		dest[offset+i] = saturate[T]((a + b + 1) / 2)
	}
	dest[offset+width-1] = src[offset+width-1]
}
