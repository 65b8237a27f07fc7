package mvsuper

// RefineHorizontalWiener writes the half-sample-right phase with a 6-tap
// Wiener kernel, clamp((m0+m5+5*(4*(m2+m3)-(m1+m4))+16)>>5, 0, pixelMax).
// The kernel needs six neighbors, so the first two and the last few
// columns use a 2-tap average and the final column is copied verbatim;
// planes narrower than six samples get only the 2-tap/copy fallback.
func RefineHorizontalWiener[T Pixel](dest, src []T, pitch, width, height, bitsPerSample int) {
	pixelMax := int32(1)<<bitsPerSample - 1
	offset := 0

	wienerStart := 2
	wienerEnd := wienerStart
	if width >= 6 {
		wienerEnd = width - 4
	}

	for j := 0; j < height; j++ {
		if width >= 2 {
			a := uint32(src[offset])
			b := uint32(src[offset+1])
			dest[offset] = saturate[T]((a + b + 1) / 2)

			if width >= 3 {
				c := uint32(src[offset+2])
				dest[offset+1] = saturate[T]((b + c + 1) / 2)
			}
		}

		for i := wienerStart; i < wienerEnd; i++ {
			m0 := int32(src[offset+i-2])
			m1 := int32(src[offset+i-1])
			m2 := int32(src[offset+i])
			m3 := int32(src[offset+i+1])
			m4 := int32(src[offset+i+2])
			m5 := int32(src[offset+i+3])
			dest[offset+i] = clampPixel[T]((m0+m5+((m2+m3)*4-(m1+m4))*5+16)>>5, pixelMax)
		}

		for i := wienerEnd; i < width-1; i++ {
			a := uint32(src[offset+i])
			b := uint32(src[offset+i+1])
			dest[offset+i] = saturate[T]((a + b + 1) / 2)
		}

		dest[offset+width-1] = src[offset+width-1]
		offset += pitch
	}
}

// RefineVerticalWiener is the vertical mirror of RefineHorizontalWiener:
// first two and last few rows 2-tap, last row copied verbatim.
func RefineVerticalWiener[T Pixel](dest, src []T, pitch, width, height, bitsPerSample int) {
	pixelMax := int32(1)<<bitsPerSample - 1

	wienerStart := 2
	wienerEnd := wienerStart
	if height >= 6 {
		wienerEnd = height - 4
	}

	for j := 0; j < min(2, height-1); j++ {
		offset := j * pitch
		for i := 0; i < width; i++ {
			a := uint32(src[offset+i])
			b := uint32(src[offset+i+pitch])
			dest[offset+i] = saturate[T]((a + b + 1) / 2)
		}
	}

	for j := wienerStart; j < wienerEnd; j++ {
		offset := j * pitch
		for i := 0; i < width; i++ {
			m0 := int32(src[offset+i-pitch*2])
			m1 := int32(src[offset+i-pitch])
			m2 := int32(src[offset+i])
			m3 := int32(src[offset+i+pitch])
			m4 := int32(src[offset+i+pitch*2])
			m5 := int32(src[offset+i+pitch*3])
			dest[offset+i] = clampPixel[T]((m0+m5+((m2+m3)*4-(m1+m4))*5+16)>>5, pixelMax)
		}
	}

	for j := max(wienerEnd, 2); j < height-1; j++ {
		offset := j * pitch
		for i := 0; i < width; i++ {
			a := uint32(src[offset+i])
			b := uint32(src[offset+i+pitch])
			dest[offset+i] = saturate[T]((a + b + 1) / 2)
		}
	}

	offset := (height - 1) * pitch
	copy(dest[offset:offset+width], src[offset:offset+width])
}
