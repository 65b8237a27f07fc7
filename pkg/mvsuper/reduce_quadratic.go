package mvsuper

// ReduceQuadratic2x downscales a plane by 2x with a 6-tap quadratic
// filter, weights (1,9,22,22,9,1)/64, applied vertically then
// horizontally in place. First and last lines and columns fall back to a
// 2-tap average.
func ReduceQuadratic2x[T Pixel](dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int) {
	reduceQuadraticVertical(dest, src, destPitch, srcPitch, destWidth*2, destHeight)
	reduceQuadraticHorizontalInplace(dest, destPitch, destWidth, destHeight)
}

func reduceQuadraticVertical[T Pixel](dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int) {
	// First line
	for x := 0; x < destWidth; x++ {
		a := uint32(src[x])
		b := uint32(src[x+srcPitch])
		dest[x] = saturate[T]((a + b + 1) / 2)
	}

	// Middle lines
	for y := 1; y < destHeight-1; y++ {
		destOff := y * destPitch
		srcOff := y * 2 * srcPitch
		for x := 0; x < destWidth; x++ {
			m0 := uint32(src[srcOff+x-srcPitch*2])
			m1 := uint32(src[srcOff+x-srcPitch])
			m2 := uint32(src[srcOff+x])
			m3 := uint32(src[srcOff+x+srcPitch])
			m4 := uint32(src[srcOff+x+srcPitch*2])
			m5 := uint32(src[srcOff+x+srcPitch*3])
			dest[destOff+x] = saturate[T]((m0 + m5 + (m1+m4)*9 + (m2+m3)*22 + 32) >> 6)
		}
	}

	// Last line
	if destHeight > 1 {
		destOff := (destHeight - 1) * destPitch
		srcOff := (destHeight - 1) * 2 * srcPitch
		for x := 0; x < destWidth; x++ {
			a := uint32(src[srcOff+x])
			b := uint32(src[srcOff+x+srcPitch])
			dest[destOff+x] = saturate[T]((a + b + 1) / 2)
		}
	}
}

func reduceQuadraticHorizontalInplace[T Pixel](dest []T, destPitch, destWidth, destHeight int) {
	for y := 0; y < destHeight; y++ {
		off := y * destPitch

		a := uint32(dest[off])
		b := uint32(dest[off+1])
		first := (a + b + 1) / 2

		for x := 1; x < destWidth-1; x++ {
			m0 := uint32(dest[off+x*2-2])
			m1 := uint32(dest[off+x*2-1])
			m2 := uint32(dest[off+x*2])
			m3 := uint32(dest[off+x*2+1])
			m4 := uint32(dest[off+x*2+2])
			m5 := uint32(dest[off+x*2+3])
			dest[off+x] = saturate[T]((m0 + m5 + (m1+m4)*9 + (m2+m3)*22 + 32) >> 6)
		}

		dest[off] = saturate[T](first)

		if destWidth > 1 {
			x := destWidth - 1
			a := uint32(dest[off+x*2])
			b := uint32(dest[off+x*2+1])
			dest[off+x] = saturate[T]((a + b + 1) / 2)
		}
	}
}
