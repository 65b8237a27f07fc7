// Package pgm reads and writes binary PGM (P5) grayscale images, the
// raw-frame interchange format used by the superctl tool. Samples wider
// than 8 bits are big-endian per the Netpbm spec.
package pgm

import (
	"bufio"
	"fmt"
	"io"
)

// Image is one grayscale frame. Pix is always addressed as Pix[y*Width+x];
// for MaxVal <= 255 each sample still occupies one uint16 slot.
type Image struct {
	Width  int
	Height int
	MaxVal int
	Pix    []uint16
}

// BitsPerSample returns the smallest bit depth that holds MaxVal.
func (img *Image) BitsPerSample() int {
	bits := 1
	for 1<<bits-1 < img.MaxVal {
		bits++
	}
	return bits
}

// Decode reads a binary PGM image.
func Decode(r io.Reader) (*Image, error) {
	br := bufio.NewReader(r)

	magic, err := nextToken(br)
	if err != nil {
		return nil, fmt.Errorf("pgm: reading magic: %w", err)
	}
	if magic != "P5" {
		return nil, fmt.Errorf("pgm: unsupported magic %q, want P5", magic)
	}

	var width, height, maxVal int
	for _, field := range []*int{&width, &height, &maxVal} {
		tok, err := nextToken(br)
		if err != nil {
			return nil, fmt.Errorf("pgm: reading header: %w", err)
		}
		if _, err := fmt.Sscanf(tok, "%d", field); err != nil {
			return nil, fmt.Errorf("pgm: bad header field %q: %w", tok, err)
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pgm: bad dimensions %dx%d", width, height)
	}
	if maxVal <= 0 || maxVal > 65535 {
		return nil, fmt.Errorf("pgm: bad maxval %d", maxVal)
	}

	img := &Image{Width: width, Height: height, MaxVal: maxVal, Pix: make([]uint16, width*height)}

	if maxVal < 256 {
		raw := make([]byte, width*height)
		if _, err := io.ReadFull(br, raw); err != nil {
			return nil, fmt.Errorf("pgm: reading samples: %w", err)
		}
		for i, b := range raw {
			img.Pix[i] = uint16(b)
		}
	} else {
		raw := make([]byte, 2*width*height)
		if _, err := io.ReadFull(br, raw); err != nil {
			return nil, fmt.Errorf("pgm: reading samples: %w", err)
		}
		for i := range img.Pix {
			img.Pix[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		}
	}

	return img, nil
}

// Encode writes a binary PGM image.
func Encode(w io.Writer, img *Image) error {
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("pgm: bad dimensions %dx%d", img.Width, img.Height)
	}
	if len(img.Pix) < img.Width*img.Height {
		return fmt.Errorf("pgm: pixel buffer too small: %d for %dx%d", len(img.Pix), img.Width, img.Height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n%d\n", img.Width, img.Height, img.MaxVal); err != nil {
		return err
	}

	n := img.Width * img.Height
	if img.MaxVal < 256 {
		for _, p := range img.Pix[:n] {
			if err := bw.WriteByte(byte(p)); err != nil {
				return err
			}
		}
	} else {
		for _, p := range img.Pix[:n] {
			if err := bw.WriteByte(byte(p >> 8)); err != nil {
				return err
			}
			if err := bw.WriteByte(byte(p)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// nextToken returns the next whitespace-delimited header token, skipping
// '#' comments.
func nextToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			inComment = true
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
