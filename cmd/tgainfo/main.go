// Command tgainfo prints header and format information for TGA files
// and optionally converts them to PNG.
//
// Usage:
//
//	tgainfo [options] <file.tga>...
//
// With -png, a .png preview is written next to each input (or into the
// directory given by -o). Per-file decode diagnostics are available via
// glog's -v flag, e.g. -v=1 -logtostderr.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/tgakit/tga"
)

func main() {
	toPNG := flag.Bool("png", false, "write a .png preview for each input")
	outDir := flag.String("o", "", "directory for -png output (default: alongside input)")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: tgainfo [options] <file.tga>...\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	exitCode := 0
	for _, path := range flag.Args() {
		if err := run(path, *toPNG, *outDir); err != nil {
			glog.Errorf("%s: %v", path, err)
			fmt.Fprintf(os.Stderr, "tgainfo: %s: %v\n", path, err)
			exitCode = 1
		}
	}
	glog.Flush()
	os.Exit(exitCode)
}

func run(path string, toPNG bool, outDir string) error {
	img, err := tga.Load(path)
	if err != nil {
		return err
	}
	glog.V(1).Infof("%s: decoded %dx%d %s (%d bytes per pixel, %d pixel bytes)",
		path, img.Width, img.Height, img.Format, img.BytesPerPixel, len(img.Pix))

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", img.Format)
	fmt.Printf("Dimensions: %d x %d\n", img.Width, img.Height)
	fmt.Printf("Alpha:      %v\n", img.Format == tga.ARGB32)
	if fi, err := os.Stat(path); err == nil {
		fmt.Printf("File size:  %d bytes\n", fi.Size())
	}

	if !toPNG {
		return nil
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	if outDir != "" {
		outPath = filepath.Join(outDir, filepath.Base(outPath))
	}
	if err := writePNG(outPath, img); err != nil {
		return err
	}
	glog.V(1).Infof("%s: wrote %s", path, outPath)
	fmt.Printf("Preview:    %s\n", outPath)
	return nil
}

func writePNG(path string, img *tga.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, toImage(img)); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// toImage converts a decoded TGA raster to a standard library image for
// PNG output. Grayscale formats map onto Gray/Gray16; everything else
// expands to RGBA.
func toImage(img *tga.Image) image.Image {
	bounds := image.Rect(0, 0, img.Width, img.Height)
	switch img.Format {
	case tga.BW8:
		out := image.NewGray(bounds)
		copy(out.Pix, img.Pix)
		return out
	case tga.BW16:
		out := image.NewGray16(bounds)
		// TGA stores 16-bit gray little-endian; Gray16 wants big-endian.
		for i := 0; i+1 < len(img.Pix); i += 2 {
			out.Pix[i] = img.Pix[i+1]
			out.Pix[i+1] = img.Pix[i]
		}
		return out
	case tga.RGB555:
		out := image.NewRGBA(bounds)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				o := (y*img.Width + x) * 2
				v := uint16(img.Pix[o]) | uint16(img.Pix[o+1])<<8
				out.SetRGBA(x, y, color.RGBA{
					R: expand5(uint8(v >> 10 & 0x1f)),
					G: expand5(uint8(v >> 5 & 0x1f)),
					B: expand5(uint8(v & 0x1f)),
					A: 255,
				})
			}
		}
		return out
	default: // RGB24, ARGB32
		out := image.NewRGBA(bounds)
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				r, g, b, a := img.GetPixel(x, y)
				out.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
			}
		}
		return out
	}
}

// expand5 widens a 5-bit channel to 8 bits, replicating the high bits
// into the low ones so that full intensity maps to 255.
func expand5(c uint8) uint8 {
	return c<<3 | c>>2
}
