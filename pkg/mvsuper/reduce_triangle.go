package mvsuper

// ReduceTriangle2x downscales a plane by 2x with a (1,2,1)/4 triangle
// filter, applied vertically then horizontally in place. The shifted
// 3-tap kernel smooths more than plain averaging and reduces aliasing in
// the coarser pyramid levels.
func ReduceTriangle2x[T Pixel](dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int) {
	reduceTriangleVertical(dest, src, destPitch, srcPitch, destWidth*2, destHeight)
	reduceTriangleHorizontalInplace(dest, destPitch, destWidth, destHeight)
}

// reduceTriangleVertical halves the height. The first output row is a
// 2-tap average of the first two input rows; every other output row
// applies (1,2,1)/4 across three consecutive input rows.
func reduceTriangleVertical[T Pixel](dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int) {
	for x := 0; x < destWidth; x++ {
		a := uint32(src[x])
		b := uint32(src[x+srcPitch])
		dest[x] = saturate[T]((a + b + 1) / 2)
	}

	for y := 1; y < destHeight; y++ {
		destOff := y * destPitch
		srcOff := y * 2 * srcPitch
		for x := 0; x < destWidth; x++ {
			a := uint32(src[srcOff+x-srcPitch])
			b := uint32(src[srcOff+x])
			c := uint32(src[srcOff+x+srcPitch])
			dest[destOff+x] = saturate[T]((a + b*2 + c + 2) / 4)
		}
	}
}

// reduceTriangleHorizontalInplace halves the width of the intermediate.
// The first output column is the 2-tap average of the first two samples,
// written last so the filtered columns can still read the original value.
func reduceTriangleHorizontalInplace[T Pixel](dest []T, destPitch, width, height int) {
	for y := 0; y < height; y++ {
		off := y * destPitch
		b := uint32(dest[off])
		c := uint32(dest[off+1])
		first := (b + c + 1) / 2

		for x := 1; x < width; x++ {
			a := uint32(dest[off+x*2-1])
			b := uint32(dest[off+x*2])
			c := uint32(dest[off+x*2+1])
			dest[off+x] = saturate[T]((a + b*2 + c + 2) / 4)
		}
		dest[off] = saturate[T](first)
	}
}
