package mvsuper

// PadReferenceFrame fills the hpad/vpad border of a plane window by
// replicating its edge pixels. Corners are filled first, each from the
// single nearest interior corner pixel, then the four edge strips extend
// the first/last row and column. Motion search reads slightly outside the
// visible frame, so every plane window is padded this way before use.
//
// offset addresses the top-left of the padded window inside buf; width
// and height are the unpadded dimensions. hpad==0 or vpad==0 disables
// padding on that axis.
func PadReferenceFrame[T Pixel](offset, pitch, hpad, vpad, width, height int, buf []T) {
	pfoff := offset + vpad*pitch + hpad

	// Corners
	padCorner(offset, buf[pfoff], hpad, vpad, pitch, buf)
	padCorner(offset+hpad+width, buf[pfoff+width-1], hpad, vpad, pitch, buf)
	padCorner(offset+(vpad+height)*pitch, buf[pfoff+(height-1)*pitch], hpad, vpad, pitch, buf)
	padCorner(offset+hpad+width+(vpad+height)*pitch,
		buf[pfoff+(height-1)*pitch+width-1], hpad, vpad, pitch, buf)

	// Top
	for i := 0; i < width; i++ {
		value := buf[pfoff+i]
		poff := offset + hpad + i
		for j := 0; j < vpad; j++ {
			buf[poff] = value
			poff += pitch
		}
	}

	// Left
	for i := 0; i < height; i++ {
		value := buf[pfoff+i*pitch]
		poff := offset + (vpad+i)*pitch
		fill(buf[poff:poff+hpad], value)
	}

	// Right
	for i := 0; i < height; i++ {
		value := buf[pfoff+i*pitch+width-1]
		poff := offset + (vpad+i)*pitch + width + hpad
		fill(buf[poff:poff+hpad], value)
	}

	// Bottom
	for i := 0; i < width; i++ {
		value := buf[pfoff+i+(height-1)*pitch]
		poff := offset + hpad + i + (height+vpad)*pitch
		for j := 0; j < vpad; j++ {
			buf[poff] = value
			poff += pitch
		}
	}
}

// padCorner fills one hpad x vpad rectangle with a scalar.
func padCorner[T Pixel](offset int, val T, hpad, vpad, pitch int, buf []T) {
	for i := 0; i < vpad; i++ {
		fill(buf[offset:offset+hpad], val)
		offset += pitch
	}
}

func fill[T Pixel](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}
