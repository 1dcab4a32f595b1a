// Package texture decodes heightmaps and texture images and converts them to
// the tightly packed layouts OpenGL uploads expect.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Decode decodes image data. name selects the decoder by extension; formats
// without a registered sniffer (TGA, BMP) are routed explicitly and anything
// else goes through image.Decode.
func Decode(data []byte, name string) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".tga":
		img, err = DecodeTGA(data)
	case ".bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	default:
		img, _, err = image.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}

// RGB packs img into 3 bytes per pixel, rows top to bottom with no padding.
// Alpha is dropped; colour is taken without premultiplication.
func RGB(img image.Image) (pix []byte, width, height int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, 0, width*height*3)

	if rgba, ok := img.(*image.RGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			line := rgba.Pix[rgba.PixOffset(b.Min.X, y):][:width*4]
			for x := 0; x < len(line); x += 4 {
				pix = append(pix, line[x], line[x+1], line[x+2])
			}
		}
		return pix, width, height
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pix = append(pix, c.R, c.G, c.B)
		}
	}
	return pix, width, height
}
