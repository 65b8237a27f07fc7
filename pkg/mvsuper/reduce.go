package mvsuper

// reduceFn is a 2x downscale kernel. It consumes a 2*destWidth x
// 2*destHeight source window and produces destWidth x destHeight. Except
// for the plain average, the filters run in two separable passes: a
// vertical pass writes an intermediate of height destHeight but full
// width 2*destWidth into dest, then a horizontal pass halves the width
// in place.
type reduceFn[T Pixel] func(dest []T, src []T, destPitch, srcPitch, destWidth, destHeight int)

func reduceFilter[T Pixel](filter ReduceFilter) reduceFn[T] {
	switch filter {
	case ReduceAverage:
		return ReduceAverage2x[T]
	case ReduceTriangle:
		return ReduceTriangle2x[T]
	case ReduceBilinear:
		return ReduceBilinear2x[T]
	case ReduceQuadratic:
		return ReduceQuadratic2x[T]
	case ReduceCubic:
		return ReduceCubic2x[T]
	}
	panic("mvsuper: unknown reduce filter")
}
