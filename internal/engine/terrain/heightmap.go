package terrain

import (
	"image"
	"image/color"
)

// NewHeightmap returns a flat size×size heightmap.
func NewHeightmap(size int) *Heightmap {
	return &Heightmap{
		Size:    size,
		Heights: make([]float32, size*size),
	}
}

// HeightmapFromImage samples channel 0 of img into a size×size grid, each
// value divided by HeightDivisor. Samples are read without alpha
// premultiplication. Only the region shared by the image and the
// grid is copied; grid points outside the image stay at zero.
func HeightmapFromImage(img image.Image, size int) *Heightmap {
	hm := NewHeightmap(size)

	b := img.Bounds()
	w := min(b.Dx(), size)
	h := min(b.Dy(), size)

	for z := range h {
		for x := range w {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+z)).(color.NRGBA)
			hm.Heights[x+z*size] = float32(c.R) / HeightDivisor
		}
	}

	return hm
}

// At returns the height at grid point (x, z). Any point whose flat index
// x + z*Size falls outside the grid reads as zero.
func (hm *Heightmap) At(x, z int) float32 {
	if hm == nil {
		return 0
	}
	i := x + z*hm.Size
	if i < 0 || i > len(hm.Heights)-1 {
		return 0
	}
	return hm.Heights[i]
}

// Set stores a height at grid point (x, z). Out-of-range points are ignored.
func (hm *Heightmap) Set(x, z int, h float32) {
	if x < 0 || z < 0 || x >= hm.Size || z >= hm.Size {
		return
	}
	hm.Heights[x+z*hm.Size] = h
}

// Range returns the lowest and highest stored heights.
func (hm *Heightmap) Range() (lo, hi float32) {
	if len(hm.Heights) == 0 {
		return 0, 0
	}
	lo, hi = hm.Heights[0], hm.Heights[0]
	for _, h := range hm.Heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return lo, hi
}
