package mvsuper

// ReduceAverage2x downscales a plane by 2x by averaging each 2x2 block
// into one output pixel, rounding to nearest.
func ReduceAverage2x[T Pixel](dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int) {
	for y := 0; y < destHeight; y++ {
		destOff := y * destPitch
		srcOff := y * 2 * srcPitch
		for x := 0; x < destWidth; x++ {
			a := uint32(src[srcOff+x*2])
			b := uint32(src[srcOff+x*2+1])
			c := uint32(src[srcOff+x*2+srcPitch])
			d := uint32(src[srcOff+x*2+srcPitch+1])
			dest[destOff+x] = saturate[T]((a + b + c + d + 2) / 4)
		}
	}
}
