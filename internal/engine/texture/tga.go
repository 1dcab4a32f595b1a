package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types.
const (
	TGATypeTrueColor    = 2
	TGATypeGray         = 3
	TGATypeTrueColorRLE = 10
	TGATypeGrayRLE      = 11
)

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE TGA file. True-colour images must
// be 24 or 32 bits per pixel and decode to *image.RGBA; grayscale images must
// be 8 bits and decode to *image.Gray, which is what 8-bit heightmaps use.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, errors.New("tga: header too short")
	}

	idLength := int(data[0])
	if data[1] != 0 {
		return nil, errors.New("tga: colour-mapped images not supported")
	}
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	gray := imageType == TGATypeGray || imageType == TGATypeGrayRLE
	rle := imageType == TGATypeTrueColorRLE || imageType == TGATypeGrayRLE

	switch {
	case gray && bpp != 8:
		return nil, fmt.Errorf("tga: unsupported grayscale depth %d", bpp)
	case !gray && imageType != TGATypeTrueColor && imageType != TGATypeTrueColorRLE:
		return nil, fmt.Errorf("tga: unsupported image type %d", imageType)
	case !gray && bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	var pixels []byte
	var err error
	n := width * height * (bpp / 8)
	if rle {
		pixels, err = expandTGARLE(data[offset:], n, bpp/8)
	} else if len(data)-offset < n {
		err = errTGATruncated
	} else {
		pixels = data[offset : offset+n]
	}
	if err != nil {
		return nil, err
	}

	rect := image.Rect(0, 0, width, height)
	row := func(y int) int {
		if topToBottom {
			return y
		}
		return height - 1 - y
	}

	if gray {
		img := image.NewGray(rect)
		for y := range height {
			copy(img.Pix[row(y)*img.Stride:], pixels[y*width:(y+1)*width])
		}
		return img, nil
	}

	img := image.NewRGBA(rect)
	step := bpp / 8
	for y := range height {
		for x := range width {
			p := pixels[(y*width+x)*step:]
			a := uint8(255)
			if step == 4 {
				a = p[3]
			}
			img.SetRGBA(x, row(y), color.RGBA{R: p[2], G: p[1], B: p[0], A: a})
		}
	}
	return img, nil
}

// expandTGARLE unpacks run-length packets into n raw bytes.
func expandTGARLE(src []byte, n, step int) ([]byte, error) {
	out := make([]byte, 0, n)
	i := 0
	for len(out) < n {
		if i >= len(src) {
			return nil, errTGATruncated
		}
		header := src[i]
		i++
		count := int(header&0x7F) + 1

		if header&0x80 != 0 {
			if i+step > len(src) {
				return nil, errTGATruncated
			}
			for range count {
				out = append(out, src[i:i+step]...)
			}
			i += step
		} else {
			if i+count*step > len(src) {
				return nil, errTGATruncated
			}
			out = append(out, src[i:i+count*step]...)
			i += count * step
		}
	}
	return out[:n], nil
}
