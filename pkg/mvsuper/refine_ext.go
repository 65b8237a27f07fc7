package mvsuper

// refineExtPel2 fills the three half-pel phase windows from a 2x
// pre-upsampled source plane instead of interpolating. Even sample
// positions of the source are the original pixels; the odd rows/columns
// land in the matching phase windows. When the source carries no padding
// the writes shift inside the padded window and each written window is
// padded afterwards, so this path sets the padded flag as a side effect.
func (p *MVPlane[T]) refineExtPel2(src2x []T, src2xPitch int, isExtPadded bool, dest []T) {
	p1 := p.SubpelWindowOffsets[1]
	p2 := p.SubpelWindowOffsets[2]
	p3 := p.SubpelWindowOffsets[3]

	// A padded pel source covers the whole extended window; an unpadded
	// one covers the interior only, shifted past the border.
	width, height := p.PaddedWidth, p.PaddedHeight
	if !isExtPadded {
		p1 += p.OffsetPadding
		p2 += p.OffsetPadding
		p3 += p.OffsetPadding
		width, height = p.Width, p.Height
	}

	srcOff := 0
	for h := 0; h < height; h++ {
		for w := 0; w < width; w++ {
			dest[p1+w] = src2x[srcOff+w<<1+1]
			dest[p2+w] = src2x[srcOff+w<<1+src2xPitch]
			dest[p3+w] = src2x[srcOff+w<<1+src2xPitch+1]
		}
		p1 += p.Pitch
		p2 += p.Pitch
		p3 += p.Pitch
		srcOff += src2xPitch * 2
	}

	if !isExtPadded {
		for i := 1; i < 4; i++ {
			PadReferenceFrame(p.SubpelWindowOffsets[i], p.Pitch, p.HPad, p.VPad, p.Width, p.Height, dest)
		}
	}
	p.padded = true
}

// refineExtPel4 fills the fifteen quarter-pel phase windows from a 4x
// pre-upsampled source plane. Same padding side effect as refineExtPel2.
func (p *MVPlane[T]) refineExtPel4(src4x []T, src4xPitch int, isExtPadded bool, dest []T) {
	var pp [16]int
	copy(pp[1:], p.SubpelWindowOffsets[1:16])

	width, height := p.PaddedWidth, p.PaddedHeight
	if !isExtPadded {
		for i := 1; i < 16; i++ {
			pp[i] += p.OffsetPadding
		}
		width, height = p.Width, p.Height
	}

	srcOff := 0
	for h := 0; h < height; h++ {
		for w := 0; w < width; w++ {
			s := srcOff + w<<2
			dest[pp[1]+w] = src4x[s+1]
			dest[pp[2]+w] = src4x[s+2]
			dest[pp[3]+w] = src4x[s+3]
			dest[pp[4]+w] = src4x[s+src4xPitch]
			dest[pp[5]+w] = src4x[s+src4xPitch+1]
			dest[pp[6]+w] = src4x[s+src4xPitch+2]
			dest[pp[7]+w] = src4x[s+src4xPitch+3]
			dest[pp[8]+w] = src4x[s+src4xPitch*2]
			dest[pp[9]+w] = src4x[s+src4xPitch*2+1]
			dest[pp[10]+w] = src4x[s+src4xPitch*2+2]
			dest[pp[11]+w] = src4x[s+src4xPitch*2+3]
			dest[pp[12]+w] = src4x[s+src4xPitch*3]
			dest[pp[13]+w] = src4x[s+src4xPitch*3+1]
			dest[pp[14]+w] = src4x[s+src4xPitch*3+2]
			dest[pp[15]+w] = src4x[s+src4xPitch*3+3]
		}
		for i := 1; i < 16; i++ {
			pp[i] += p.Pitch
		}
		srcOff += src4xPitch * 4
	}

	if !isExtPadded {
		for i := 1; i < 16; i++ {
			PadReferenceFrame(p.SubpelWindowOffsets[i], p.Pitch, p.HPad, p.VPad, p.Width, p.Height, dest)
		}
	}
	p.padded = true
}
