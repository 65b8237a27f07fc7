package mvsuper

// Pixel is an unsigned integer video sample. Planes are flat []T buffers
// addressed by a pitch (samples per row, possibly wider than the image)
// and a base offset.
type Pixel interface {
	~uint8 | ~uint16
}

// pixelCap returns the largest value representable by the sample type T.
func pixelCap[T Pixel]() uint32 {
	var t T
	switch any(t).(type) {
	case uint8:
		return 0xff
	default:
		return 0xffff
	}
}

// saturate narrows a widened intermediate back to the sample type,
// clamping at the type's maximum rather than wrapping.
func saturate[T Pixel](v uint32) T {
	if m := pixelCap[T](); v > m {
		return T(m)
	}
	return T(v)
}

// clampPixel clamps a signed intermediate to [0, pixelMax], where
// pixelMax is derived from the plane's bit depth (which may be smaller
// than the sample type allows, e.g. 10-bit video in uint16 samples).
func clampPixel[T Pixel](v int32, pixelMax int32) T {
	if v < 0 {
		return 0
	}
	if v > pixelMax {
		return T(pixelMax)
	}
	return T(v)
}

// BitBlt copies a rowSize x height rectangle of samples between pitched
// buffers. When both pitches equal the row size the whole rectangle is
// contiguous and a single copy suffices.
func BitBlt[T Pixel](dest []T, destPitch int, src []T, srcPitch, rowSize, height int) {
	if srcPitch == destPitch && srcPitch == rowSize {
		copy(dest[:rowSize*height], src[:rowSize*height])
		return
	}
	for i := 0; i < height; i++ {
		copy(dest[i*destPitch:i*destPitch+rowSize], src[i*srcPitch:i*srcPitch+rowSize])
	}
}
