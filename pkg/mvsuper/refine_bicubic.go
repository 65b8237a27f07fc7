package mvsuper

// RefineHorizontalBicubic writes the half-sample-right phase with a
// 4-tap Catmull-Rom kernel, clamp((-(a+d)+9(b+c)+8)>>4, 0, pixelMax).
// The first and the two next-to-last columns use a 2-tap average; the
// last column is copied verbatim.
func RefineHorizontalBicubic[T Pixel](dest, src []T, pitch, width, height, bitsPerSample int) {
	pixelMax := int32(1)<<bitsPerSample - 1
	offset := 0

	for j := 0; j < height; j++ {
		a := uint32(src[offset])
		b := uint32(src[offset+1])
		dest[offset] = saturate[T]((a + b + 1) / 2)

		for i := 1; i < width-3; i++ {
			a := int32(src[offset+i-1])
			b := int32(src[offset+i])
			c := int32(src[offset+i+1])
			d := int32(src[offset+i+2])
			dest[offset+i] = clampPixel[T]((-(a+d)+(b+c)*9+8)>>4, pixelMax)
		}

		for i := max(width-3, 1); i < width-1; i++ {
			a := uint32(src[offset+i])
			b := uint32(src[offset+i+1])
			dest[offset+i] = saturate[T]((a + b + 1) / 2)
		}

		dest[offset+width-1] = src[offset+width-1]
		offset += pitch
	}
}

// RefineVerticalBicubic is the vertical mirror of
// RefineHorizontalBicubic: first and two next-to-last rows 2-tap, last
// row copied verbatim.
func RefineVerticalBicubic[T Pixel](dest, src []T, pitch, width, height, bitsPerSample int) {
	pixelMax := int32(1)<<bitsPerSample - 1

	for i := 0; i < width; i++ {
		a := uint32(src[i])
		b := uint32(src[i+pitch])
		dest[i] = saturate[T]((a + b + 1) / 2)
	}

	for j := 1; j < height-3; j++ {
		offset := j * pitch
		for i := 0; i < width; i++ {
			a := int32(src[offset+i-pitch])
			b := int32(src[offset+i])
			c := int32(src[offset+i+pitch])
			d := int32(src[offset+i+pitch*2])
			dest[offset+i] = clampPixel[T]((-(a+d)+(b+c)*9+8)>>4, pixelMax)
		}
	}

	for j := max(height-3, 1); j < height-1; j++ {
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
