package export

import (
	"fmt"
	"image"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/draw"

	"console-cube/internal/raster"
)

// Image converts fb to an image with each cell as a scale×scale block.
func Image(fb *raster.FrameBuffer, scale int) *image.NRGBA {
	img := fb.Image()
	if scale <= 1 {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, fb.Width*scale, fb.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// Ext returns the file extension for an output format.
func Ext(format string) string {
	return "." + format
}

// Encode writes img in the given format ("webp" or "tga").
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "webp":
		if err := nativewebp.Encode(w, img, nil); err != nil {
			return fmt.Errorf("export: webp encode: %w", err)
		}
	case "tga":
		if err := tga.Encode(w, img); err != nil {
			return fmt.Errorf("export: tga encode: %w", err)
		}
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
	return nil
}
