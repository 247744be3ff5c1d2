package tex2png

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// keyToTransparent turns a white-background raster into a transparent one.
// The generated document typesets black glyphs on a white page, so glyph
// coverage equals pixel darkness: each pixel becomes black with alpha
// 255-min(R,G,B). Anti-aliased edges keep partial alpha and the page
// background ends up fully transparent.
func keyToTransparent(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 0; i < len(out.Pix); i += 4 {
		min := out.Pix[i]
		if g := out.Pix[i+1]; g < min {
			min = g
		}
		if b := out.Pix[i+2]; b < min {
			min = b
		}
		out.Pix[i] = 0
		out.Pix[i+1] = 0
		out.Pix[i+2] = 0
		out.Pix[i+3] = 255 - min
	}
	return out
}

// writePNG creates parent directories and encodes img to path as PNG.
func writePNG(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: creating directory %s: %v", ErrWriteImage, dir, err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteImage, path, err)
	}
	return nil
}
