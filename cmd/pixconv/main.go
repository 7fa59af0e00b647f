// Command pixconv converts a raw pixel stream from one pixel format to
// another and writes the result as a PNG.
//
// The input holds height rows of width pixels each, densely packed. For an
// indexed source format the rows are preceded by a 1024-byte palette. With
// -zstd the input is a zstd stream of the same bytes.
//
//	pixconv -in frame.raw.zst -zstd -width 640 -height 480 -src BGRA_PREMUL -out frame.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/pixbase"
	"github.com/gogpu/pixbase/buffer"
	"github.com/gogpu/pixbase/frame"
	"github.com/gogpu/pixbase/interop"
	"github.com/gogpu/pixbase/pixel"
)

// options holds the parsed command line.
type options struct {
	in, out       string
	width, height int
	src, dst      pixel.Format
	blend         pixel.Blend
	zstd          bool
	chunk         int
	verbose       bool
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("pixconv: %v", err)
	}
	if opts.verbose {
		pixbase.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if err := run(opts); err != nil {
		log.Fatalf("pixconv: %v", err)
	}
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var (
		in      = fs.String("in", "-", "input file, - for stdin")
		out     = fs.String("out", "out.png", "output PNG file")
		width   = fs.Int("width", 0, "image width in pixels")
		height  = fs.Int("height", 0, "image height in pixels")
		src     = fs.String("src", "RGBA_NONPREMUL", "source pixel format")
		dst     = fs.String("dst", "RGBA_NONPREMUL", "destination pixel format")
		blend   = fs.String("blend", "src", "blend mode: src or src_over")
		useZstd = fs.Bool("zstd", false, "input is zstd compressed")
		chunk   = fs.Int("chunk", 64<<10, "read buffer size in bytes")
		verbose = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		in:      *in,
		out:     *out,
		width:   *width,
		height:  *height,
		zstd:    *useZstd,
		chunk:   *chunk,
		verbose: *verbose,
	}
	var err error
	if opts.src, err = pixel.ParseFormat(*src); err != nil {
		return options{}, fmt.Errorf("-src: %w", err)
	}
	if opts.dst, err = pixel.ParseFormat(*dst); err != nil {
		return options{}, fmt.Errorf("-dst: %w", err)
	}
	var ok bool
	if opts.blend, ok = pixel.ParseBlend(*blend); !ok {
		return options{}, fmt.Errorf("-blend: unknown mode %q", *blend)
	}
	if opts.width <= 0 || opts.height <= 0 {
		return options{}, fmt.Errorf("invalid size %dx%d", opts.width, opts.height)
	}
	return opts, nil
}

func run(opts options) error {
	var r io.Reader = os.Stdin
	if opts.in != "-" {
		f, err := os.Open(opts.in)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	pixbase.Logger().Info("pixconv: input opened", "path", opts.in, "zstd", opts.zstd)

	if opts.zstd {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return fmt.Errorf("zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	b, err := convert(r, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := interop.EncodePNG(f, b); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	pixbase.Logger().Info("pixconv: frame written", "path", opts.out,
		"width", opts.width, "height", opts.height, "format", opts.dst)
	return nil
}

// convert streams rows from r through a chunk-sized IOBuffer and swizzles
// each complete row into a new frame of the destination format.
func convert(r io.Reader, opts options) (*frame.ImageBuffer, error) {
	out, err := interop.NewImageBuffer(opts.dst, opts.width, opts.height)
	if err != nil {
		return nil, err
	}
	rowBytes := opts.width * opts.src.BitsPerPixel() / 8
	if opts.src.IsIndexed() {
		rowBytes = opts.width
	}
	if rowBytes == 0 || opts.chunk < rowBytes || (opts.src.IsIndexed() && opts.chunk < pixel.PaletteLen) {
		return nil, fmt.Errorf("chunk size %d too small for %v rows of %d bytes", opts.chunk, opts.src, rowBytes)
	}

	iob := buffer.NewIOBuffer(make([]byte, opts.chunk))
	rd := iob.Reader()
	fill := func(need int) error {
		for rd.Available() < need && !iob.IsClosed() {
			iob.Compact()
			n, err := iob.Writer().CopyFrom(r)
			if err != nil {
				return err
			}
			if n == 0 && !iob.IsClosed() {
				return io.ErrNoProgress
			}
			pixbase.Logger().Debug("pixconv: chunk read", "bytes", n)
		}
		if rd.Available() < need {
			return errors.New("input too short")
		}
		return nil
	}

	var palette []byte
	if opts.src.IsIndexed() {
		if err := fill(pixel.PaletteLen); err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		palette = append([]byte(nil), rd.Peek(pixel.PaletteLen)...)
		rd.Skip(pixel.PaletteLen)
	}

	s := pixel.NewSwizzler()
	if st := s.Prepare(opts.dst, nil, opts.src, palette, opts.blend); !st.IsOK() {
		return nil, fmt.Errorf("%v to %v: %w", opts.src, opts.dst, st)
	}

	dst := out.Plane(0)
	for y := 0; y < opts.height; y++ {
		if err := fill(rowBytes); err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		s.Swizzle(dst.Row(y), nil, rd.Peek(rowBytes))
		rd.Skip(rowBytes)
	}
	return out, nil
}
