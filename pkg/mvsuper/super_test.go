package mvsuper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graySuperOptions(width, height int) SuperOptions {
	return SuperOptions{
		Width:         width,
		Height:        height,
		BitsPerSample: 8,
		XRatioUV:      1,
		YRatioUV:      1,
		PlaneCount:    1,
		HPad:          8,
		VPad:          8,
		Pel:           SubpelHalf,
	}
}

func TestNewSuper_Geometry(t *testing.T) {
	s, err := NewSuper[uint8](graySuperOptions(64, 48))
	require.NoError(t, err)

	// Heights halve 48,24,12,6,3,2 before dropping under two pixels.
	assert.Equal(t, 6, s.Levels())
	assert.Equal(t, 64+16, s.SuperWidth())

	// The super height stacks 4 phase windows of the padded source plus
	// one padded window per coarser level.
	want := 4*(48+16) + (24 + 16) + (12 + 16) + (6 + 16) + (3 + 16) + (2 + 16)
	assert.Equal(t, want, s.SuperHeight())
}

func TestNewSuper_LevelsCapped(t *testing.T) {
	opts := graySuperOptions(64, 48)
	opts.Levels = 3
	s, err := NewSuper[uint8](opts)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Levels())

	// Requesting more levels than fit falls back to the maximum.
	opts.Levels = 99
	s, err = NewSuper[uint8](opts)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Levels())
}

func TestNewSuper_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SuperOptions)
	}{
		{"zero width", func(o *SuperOptions) { o.Width = 0 }},
		{"negative height", func(o *SuperOptions) { o.Height = -1 }},
		{"zero bits", func(o *SuperOptions) { o.BitsPerSample = 0 }},
		{"bits beyond 16", func(o *SuperOptions) { o.BitsPerSample = 17 }},
		{"unsupported subsampling", func(o *SuperOptions) { o.XRatioUV = 4 }},
		{"bad pel", func(o *SuperOptions) { o.Pel = 3 }},
		{"source too small", func(o *SuperOptions) { o.Width = 1; o.Height = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := graySuperOptions(64, 48)
			tt.mutate(&opts)
			_, err := NewSuper[uint8](opts)
			assert.Error(t, err)
		})
	}
}

func TestNewSuper_BitsMustFitSampleType(t *testing.T) {
	opts := graySuperOptions(64, 48)
	opts.BitsPerSample = 12
	_, err := NewSuper[uint8](opts)
	assert.Error(t, err, "12-bit samples do not fit uint8")

	_, err = NewSuper[uint16](opts)
	assert.NoError(t, err)
}

func TestSuper_ValidatePelSource(t *testing.T) {
	s, err := NewSuper[uint8](graySuperOptions(64, 48))
	require.NoError(t, err)

	isPadded, err := s.ValidatePelSource(128, 96)
	require.NoError(t, err)
	assert.False(t, isPadded)

	isPadded, err = s.ValidatePelSource((64+16)*2, (48+16)*2)
	require.NoError(t, err)
	assert.True(t, isPadded)

	_, err = s.ValidatePelSource(130, 96)
	assert.Error(t, err)

	opts := graySuperOptions(64, 48)
	opts.Pel = SubpelFull
	full, err := NewSuper[uint8](opts)
	require.NoError(t, err)
	_, err = full.ValidatePelSource(64, 48)
	assert.Error(t, err, "pel source makes no sense at full-pel")
}

func constFrame[T Pixel](width, height int, value T) []T {
	buf := make([]T, width*height)
	for i := range buf {
		buf[i] = value
	}
	return buf
}

func TestSuper_Process_ConstantPyramid(t *testing.T) {
	const value = 117
	opts := graySuperOptions(64, 48)
	opts.Sharp = SubpelWiener
	opts.RFilter = ReduceTriangle

	s, err := NewSuper[uint8](opts)
	require.NoError(t, err)

	src := constFrame[uint8](64, 48, value)
	sf, err := s.Process([3][]uint8{src}, [3]int{64}, nil, [3]int{}, false)
	require.NoError(t, err)

	assert.Equal(t, s.Levels(), sf.Props.Levels)
	assert.Equal(t, 2, sf.Props.Pel)
	assert.Len(t, sf.Planes[0], s.SuperWidth()*s.SuperHeight())

	// Every level's padded window, including borders, holds the constant.
	for level, frame := range sf.GOF.Frames {
		plane := frame.Planes[0]
		require.True(t, plane.Filled(), "level %d", level)
		require.True(t, plane.Padded(), "level %d", level)
		off := plane.SubpelWindowOffsets[0]
		for y := 0; y < plane.PaddedHeight; y++ {
			for x := 0; x < plane.PaddedWidth; x++ {
				require.Equal(t, uint8(value), sf.Planes[0][off+y*plane.Pitch+x],
					"level %d (%d,%d)", level, x, y)
			}
		}
	}

	// Sub-pixel phases of the finest level hold it too.
	finest := sf.GOF.Frames[0].Planes[0]
	require.True(t, finest.Refined())
	for win, off := range finest.SubpelWindowOffsets {
		for y := 0; y < finest.PaddedHeight-1; y++ {
			for x := 0; x < finest.PaddedWidth-1; x++ {
				require.Equal(t, uint8(value), sf.Planes[0][off+y*finest.Pitch+x],
					"window %d (%d,%d)", win, x, y)
			}
		}
	}
}

func TestSuper_Process_LevelDimensions(t *testing.T) {
	s, err := NewSuper[uint8](graySuperOptions(64, 48))
	require.NoError(t, err)

	src := constFrame[uint8](64, 48, 10)
	sf, err := s.Process([3][]uint8{src}, [3]int{64}, nil, [3]int{}, false)
	require.NoError(t, err)

	wantW := []int{64, 32, 16, 8, 4, 2}
	wantH := []int{48, 24, 12, 6, 3, 2}
	require.Len(t, sf.GOF.Frames, 6)
	for i, frame := range sf.GOF.Frames {
		assert.Equal(t, wantW[i], frame.Planes[0].Width, "level %d width", i)
		assert.Equal(t, wantH[i], frame.Planes[0].Height, "level %d height", i)
	}

	// Only the finest level carries phase windows.
	assert.Len(t, sf.GOF.Frames[0].Planes[0].SubpelWindowOffsets, 4)
	assert.Len(t, sf.GOF.Frames[1].Planes[0].SubpelWindowOffsets, 1)
}

func TestSuper_Process_QuarterPel(t *testing.T) {
	const value = 44
	opts := graySuperOptions(32, 24)
	opts.Pel = SubpelQuarter
	opts.Sharp = SubpelBicubic

	s, err := NewSuper[uint8](opts)
	require.NoError(t, err)

	src := constFrame[uint8](32, 24, value)
	sf, err := s.Process([3][]uint8{src}, [3]int{32}, nil, [3]int{}, false)
	require.NoError(t, err)

	finest := sf.GOF.Frames[0].Planes[0]
	require.Len(t, finest.SubpelWindowOffsets, 16)
	for win, off := range finest.SubpelWindowOffsets {
		for y := 0; y < finest.PaddedHeight-1; y++ {
			for x := 0; x < finest.PaddedWidth-1; x++ {
				require.Equal(t, uint8(value), sf.Planes[0][off+y*finest.Pitch+x],
					"window %d (%d,%d)", win, x, y)
			}
		}
	}
}

func TestSuper_Process_16Bit(t *testing.T) {
	const value = 700
	opts := graySuperOptions(32, 24)
	opts.BitsPerSample = 10
	opts.Sharp = SubpelBicubic
	opts.RFilter = ReduceCubic

	s, err := NewSuper[uint16](opts)
	require.NoError(t, err)

	src := constFrame[uint16](32, 24, value)
	sf, err := s.Process([3][]uint16{src}, [3]int{32}, nil, [3]int{}, false)
	require.NoError(t, err)

	for level, frame := range sf.GOF.Frames {
		plane := frame.Planes[0]
		off := plane.SubpelWindowOffsets[0] + plane.OffsetPadding
		for y := 0; y < plane.Height; y++ {
			for x := 0; x < plane.Width; x++ {
				require.Equal(t, uint16(value), sf.Planes[0][off+y*plane.Pitch+x],
					"level %d (%d,%d)", level, x, y)
			}
		}
	}
}

func TestSuper_Process_SourceTooSmall(t *testing.T) {
	s, err := NewSuper[uint8](graySuperOptions(64, 48))
	require.NoError(t, err)

	src := make([]uint8, 64*47)
	_, err = s.Process([3][]uint8{src}, [3]int{64}, nil, [3]int{}, false)
	assert.Error(t, err)
}

func TestSuper_Process_ExternalPelSource(t *testing.T) {
	const (
		base = 100
		ext  = 200
	)
	opts := graySuperOptions(16, 12)
	s, err := NewSuper[uint8](opts)
	require.NoError(t, err)

	src := constFrame[uint8](16, 12, base)
	pelSrc := [3][]uint8{constFrame[uint8](32, 24, ext)}
	isPadded, err := s.ValidatePelSource(32, 24)
	require.NoError(t, err)
	require.False(t, isPadded)

	sf, err := s.Process([3][]uint8{src}, [3]int{16}, &pelSrc, [3]int{32}, isPadded)
	require.NoError(t, err)

	finest := sf.GOF.Frames[0].Planes[0]
	require.True(t, finest.Refined())

	// Window 0 keeps the integer-pel samples; windows 1..3 come from the
	// upsampled source.
	off0 := finest.SubpelWindowOffsets[0] + finest.OffsetPadding
	assert.Equal(t, uint8(base), sf.Planes[0][off0])
	for win := 1; win < 4; win++ {
		off := finest.SubpelWindowOffsets[win] + finest.OffsetPadding
		for y := 0; y < finest.Height; y++ {
			for x := 0; x < finest.Width; x++ {
				require.Equal(t, uint8(ext), sf.Planes[0][off+y*finest.Pitch+x],
					"window %d (%d,%d)", win, x, y)
			}
		}
	}
}

func TestSuper_Process_ChromaPlanes(t *testing.T) {
	opts := SuperOptions{
		Width:         64,
		Height:        48,
		BitsPerSample: 8,
		XRatioUV:      2,
		YRatioUV:      2,
		PlaneCount:    3,
		Chroma:        true,
		HPad:          8,
		VPad:          8,
		Pel:           SubpelHalf,
		Levels:        2,
	}
	s, err := NewSuper[uint8](opts)
	require.NoError(t, err)

	y := constFrame[uint8](64, 48, 50)
	u := constFrame[uint8](32, 24, 120)
	v := constFrame[uint8](32, 24, 240)
	sf, err := s.Process([3][]uint8{y, u, v}, [3]int{64, 32, 32}, nil, [3]int{}, false)
	require.NoError(t, err)

	assert.Equal(t, YUVPlanes, sf.Props.ModeYUV)

	wantValue := [3]uint8{50, 120, 240}
	for i := 0; i < 3; i++ {
		require.NotNil(t, sf.GOF.Frames[0].Planes[i], "plane %d missing", i)
		for level, frame := range sf.GOF.Frames {
			plane := frame.Planes[i]
			off := plane.SubpelWindowOffsets[0] + plane.OffsetPadding
			for yy := 0; yy < plane.Height; yy++ {
				for xx := 0; xx < plane.Width; xx++ {
					require.Equal(t, wantValue[i], sf.Planes[i][off+yy*plane.Pitch+xx],
						"plane %d level %d (%d,%d)", i, level, xx, yy)
				}
			}
		}
	}

	// Chroma geometry is the luma geometry scaled by the ratios.
	lum := sf.GOF.Frames[0].Planes[0]
	chr := sf.GOF.Frames[0].Planes[1]
	assert.Equal(t, lum.Width/2, chr.Width)
	assert.Equal(t, lum.Height/2, chr.Height)
	assert.Equal(t, lum.HPad/2, chr.HPad)
	assert.Equal(t, lum.Pitch/2, chr.Pitch)
}
