package mvsuper

// ReduceBilinear2x downscales a plane by 2x with a (1,3,3,1)/8 bilinear
// filter, applied vertically then horizontally in place. First and last
// lines and columns fall back to a 2-tap average since the 4-tap kernel
// would reach outside the plane.
func ReduceBilinear2x[T Pixel](dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int) {
	reduceBilinearVertical(dest, src, destPitch, srcPitch, destWidth*2, destHeight)
	reduceBilinearHorizontalInplace(dest, destPitch, destWidth, destHeight)
}

func reduceBilinearVertical[T Pixel](dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int) {
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
			a := uint32(src[srcOff+x-srcPitch])
			b := uint32(src[srcOff+x])
			c := uint32(src[srcOff+x+srcPitch])
			d := uint32(src[srcOff+x+srcPitch*2])
			dest[destOff+x] = saturate[T]((a + (b+c)*3 + d + 4) / 8)
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

func reduceBilinearHorizontalInplace[T Pixel](dest []T, destPitch, destWidth, destHeight int) {
	for y := 0; y < destHeight; y++ {
		off := y * destPitch

		a := uint32(dest[off])
		b := uint32(dest[off+1])
		first := (a + b + 1) / 2

		for x := 1; x < destWidth-1; x++ {
			a := uint32(dest[off+x*2-1])
			b := uint32(dest[off+x*2])
			c := uint32(dest[off+x*2+1])
			d := uint32(dest[off+x*2+2])
			dest[off+x] = saturate[T]((a + (b+c)*3 + d + 4) / 8)
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
