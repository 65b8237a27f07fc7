package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jpfielding/mvsuper.go/pkg/mvsuper"
	"github.com/jpfielding/mvsuper.go/pkg/pgm"
	"github.com/jpfielding/mvsuper.go/pkg/util"
	"github.com/spf13/cobra"
)

// NewSuperCmd creates the super cobra command
func NewSuperCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "super",
		Short: "Build a multilevel superframe from a PGM frame",
		Long:  "Reads a binary PGM grayscale frame, builds the hierarchical pyramid with sub-pixel phase planes, and writes each level back out as PGM.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, _ := cmd.Flags().GetString("in")
			outDir, _ := cmd.Flags().GetString("out-dir")
			pel, _ := cmd.Flags().GetInt("pel")
			levels, _ := cmd.Flags().GetInt("levels")
			sharp, _ := cmd.Flags().GetInt("sharp")
			rfilter, _ := cmd.Flags().GetInt("rfilter")
			hpad, _ := cmd.Flags().GetInt("hpad")
			vpad, _ := cmd.Flags().GetInt("vpad")
			dumpPhases, _ := cmd.Flags().GetBool("dump-phases")

			if inPath == "" && len(args) > 0 {
				inPath = args[0]
			}
			if inPath == "" {
				return fmt.Errorf("input path is required. Use --in flag or provide as argument")
			}

			return runSuper(ctx, inPath, outDir, pel, levels, sharp, rfilter, hpad, vpad, dumpPhases)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringP("in", "i", "", "PGM frame to read ('-' for stdin)")
	pf.StringP("out-dir", "o", ".", "Directory for per-level PGM output")
	pf.Int("pel", 2, "Sub-pixel precision (1, 2, or 4)")
	pf.Int("levels", 0, "Pyramid levels (0 = all)")
	pf.Int("sharp", 2, "Interpolation: 0 bilinear, 1 bicubic, 2 wiener")
	pf.Int("rfilter", 2, "Reduce filter: 0 average, 1 triangle, 2 bilinear, 3 quadratic, 4 cubic")
	pf.Int("hpad", 16, "Horizontal padding")
	pf.Int("vpad", 16, "Vertical padding")
	pf.Bool("dump-phases", false, "Also write each sub-pixel phase of the finest level")

	return cmd
}

func runSuper(ctx context.Context, inPath, outDir string, pel, levels, sharp, rfilter, hpad, vpad int, dumpPhases bool) error {
	var in *os.File
	if inPath == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(inPath)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	img, err := pgm.Decode(in)
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	slog.InfoContext(ctx, "frame loaded",
		"width", img.Width, "height", img.Height, "bits", img.BitsPerSample())

	subpel, err := mvsuper.ParseSubpel(pel)
	if err != nil {
		return err
	}
	method, err := mvsuper.ParseSubpelMethod(sharp)
	if err != nil {
		return err
	}
	filter, err := mvsuper.ParseReduceFilter(rfilter)
	if err != nil {
		return err
	}

	opts := mvsuper.SuperOptions{
		Width:         img.Width,
		Height:        img.Height,
		BitsPerSample: img.BitsPerSample(),
		XRatioUV:      1,
		YRatioUV:      1,
		PlaneCount:    1,
		HPad:          hpad,
		VPad:          vpad,
		Pel:           subpel,
		Levels:        levels,
		Sharp:         method,
		RFilter:       filter,
	}

	base := "frame"
	if inPath != "-" {
		base = strings.TrimSuffix(filepath.Base(inPath), filepath.Ext(inPath))
	}

	if opts.BitsPerSample <= 8 {
		return buildAndDump[uint8](ctx, img, opts, outDir, base, dumpPhases)
	}
	return buildAndDump[uint16](ctx, img, opts, outDir, base, dumpPhases)
}

// buildAndDump runs the pyramid build at the sample width matching the
// frame's bit depth and writes the results.
func buildAndDump[T mvsuper.Pixel](ctx context.Context, img *pgm.Image, opts mvsuper.SuperOptions, outDir, base string, dumpPhases bool) error {
	super, err := mvsuper.NewSuper[T](opts)
	if err != nil {
		return err
	}

	src := make([]T, len(img.Pix))
	for i, p := range img.Pix {
		src[i] = T(p)
	}

	sf, err := super.Process([3][]T{src}, [3]int{img.Width}, nil, [3]int{}, false)
	if err != nil {
		return fmt.Errorf("superframe build failed: %w", err)
	}

	slog.InfoContext(ctx, "superframe built",
		"levels", sf.Props.Levels, "pel", sf.Props.Pel,
		"super_width", super.SuperWidth(), "super_height", super.SuperHeight(),
		"config", util.HashUUID(opts))

	for level, frame := range sf.GOF.Frames {
		plane := frame.Planes[0]
		out := filepath.Join(outDir, fmt.Sprintf("%s_l%d.pgm", base, level))
		if err := dumpWindow(out, sf.Planes[0], plane.SubpelWindowOffsets[0]+plane.OffsetPadding,
			plane.Pitch, plane.Width, plane.Height, img.MaxVal); err != nil {
			return err
		}
		slog.DebugContext(ctx, "level written", "level", level, "path", out,
			"width", plane.Width, "height", plane.Height)
	}

	if dumpPhases {
		plane := sf.GOF.Frames[0].Planes[0]
		for phase, offset := range plane.SubpelWindowOffsets {
			out := filepath.Join(outDir, fmt.Sprintf("%s_p%d.pgm", base, phase))
			if err := dumpWindow(out, sf.Planes[0], offset, plane.Pitch,
				plane.PaddedWidth, plane.PaddedHeight, img.MaxVal); err != nil {
				return err
			}
		}
	}

	return nil
}

func dumpWindow[T mvsuper.Pixel](path string, buf []T, offset, pitch, width, height, maxVal int) error {
	out := &pgm.Image{Width: width, Height: height, MaxVal: maxVal, Pix: make([]uint16, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out.Pix[y*width+x] = uint16(buf[offset+y*pitch+x])
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer f.Close()
	return pgm.Encode(f, out)
}
