package pgm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGM_RoundTrip_8Bit(t *testing.T) {
	width, height := 16, 9
	img := &Image{Width: width, Height: height, MaxVal: 255, Pix: make([]uint16, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Pix[y*width+x] = uint16((x*16 + y) & 0xff)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Width, decoded.Width)
	assert.Equal(t, img.Height, decoded.Height)
	assert.Equal(t, img.MaxVal, decoded.MaxVal)
	assert.Equal(t, img.Pix, decoded.Pix)
	assert.Equal(t, 8, decoded.BitsPerSample())
}

func TestPGM_RoundTrip_16Bit(t *testing.T) {
	width, height := 7, 5
	img := &Image{Width: width, Height: height, MaxVal: 65535, Pix: make([]uint16, width*height)}
	for i := range img.Pix {
		img.Pix[i] = uint16(i * 1999)
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))

	decoded, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Pix, decoded.Pix)
	assert.Equal(t, 16, decoded.BitsPerSample())
}

func TestPGM_BitsPerSample(t *testing.T) {
	tests := []struct {
		maxVal int
		bits   int
	}{
		{1, 1},
		{255, 8},
		{256, 9},
		{1023, 10},
		{65535, 16},
	}
	for _, tt := range tests {
		img := &Image{MaxVal: tt.maxVal}
		assert.Equal(t, tt.bits, img.BitsPerSample(), "maxval %d", tt.maxVal)
	}
}

func TestPGM_Decode_SkipsComments(t *testing.T) {
	raw := "P5\n# a comment\n2 # inline\n1\n255\n\x0a\x14"
	img, err := Decode(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width)
	assert.Equal(t, 1, img.Height)
	assert.Equal(t, []uint16{10, 20}, img.Pix)
}

func TestPGM_Decode_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"wrong magic", "P6\n2 2\n255\n...."},
		{"ascii variant", "P2\n2 2\n255\n1 2 3 4"},
		{"zero width", "P5\n0 2\n255\n"},
		{"maxval too large", "P5\n2 2\n70000\n"},
		{"truncated samples", "P5\n4 4\n255\nab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestPGM_Encode_Rejects(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, &Image{Width: 0, Height: 2, MaxVal: 255})
	assert.Error(t, err)

	err = Encode(&buf, &Image{Width: 4, Height: 4, MaxVal: 255, Pix: make([]uint16, 3)})
	assert.Error(t, err)
}
