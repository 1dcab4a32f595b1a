package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Faultbox/heightwalk/internal/assets"
	"github.com/Faultbox/heightwalk/internal/engine/lighting"
	"github.com/Faultbox/heightwalk/internal/engine/terrain"
	"github.com/Faultbox/heightwalk/pkg/math"
)

const defaultSize = 512

// gridFlags are shared by every command that builds a terrain.
type gridFlags struct {
	size     int
	scale    float64
	centered bool
}

func newFlagSet(name string, out io.Writer, g *gridFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&g.size, "size", defaultSize, "grid points per side")
	fs.Float64Var(&g.scale, "scale", 1, "world units per cell")
	fs.BoolVar(&g.centered, "centered", false, "centre the terrain on the origin")
	return fs
}

// loadTerrain reads a heightmap image from disk and builds a CPU-only terrain.
func loadTerrain(path string, g gridFlags) (*terrain.Terrain, error) {
	if g.size < 1 {
		return nil, terrain.ErrInvalidSize
	}
	if g.scale <= 0 {
		return nil, terrain.ErrInvalidScale
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	m := assets.NewManager()
	defer m.Close()

	img, err := m.LoadImage(abs)
	if err != nil {
		return nil, fmt.Errorf("loading heightmap: %w", err)
	}

	t := terrain.FromHeightmap(terrain.HeightmapFromImage(img, g.size), float32(g.scale))
	if g.centered {
		t.Center()
	}
	return t, nil
}

func cmdInfo(w io.Writer, args []string) error {
	var g gridFlags
	fs := newFlagSet("info", w, &g)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: terraintool info [options] <heightmap>")
	}

	t, err := loadTerrain(fs.Arg(0), g)
	if err != nil {
		return err
	}

	lo, hi := t.Heightmap.Range()
	minX, minZ, maxX, maxZ := t.Extent()

	fmt.Fprintf(w, "Heightmap: %s\n", fs.Arg(0))
	fmt.Fprintf(w, "Grid:      %d x %d\n", t.Size, t.Size)
	fmt.Fprintf(w, "Heights:   %.3f .. %.3f\n", lo, hi)
	fmt.Fprintf(w, "Extent:    (%.2f, %.2f) .. (%.2f, %.2f)\n", minX, minZ, maxX, maxZ)
	fmt.Fprintf(w, "Triangles: %d\n", terrain.TriangleCount(t.Size))
	fmt.Fprintf(w, "Vertices:  %d\n", t.Mesh.NumVertices)
	return nil
}

func cmdHeight(w io.Writer, args []string) error {
	var g gridFlags
	fs := newFlagSet("height", w, &g)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 3 {
		return fmt.Errorf("usage: terraintool height [options] <heightmap> <x> <z>")
	}

	x, err := strconv.ParseFloat(fs.Arg(1), 32)
	if err != nil {
		return fmt.Errorf("invalid x: %w", err)
	}
	z, err := strconv.ParseFloat(fs.Arg(2), 32)
	if err != nil {
		return fmt.Errorf("invalid z: %w", err)
	}

	t, err := loadTerrain(fs.Arg(0), g)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%.4f\n", t.HeightAt(float32(x), float32(z)))
	return nil
}

func cmdOBJ(w io.Writer, args []string) error {
	var g gridFlags
	fs := newFlagSet("obj", w, &g)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: terraintool obj [options] <heightmap> <out.obj>")
	}

	t, err := loadTerrain(fs.Arg(0), g)
	if err != nil {
		return err
	}

	f, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	if err := writeOBJ(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s (%d triangles)\n", fs.Arg(1), terrain.TriangleCount(t.Size))
	return nil
}

// writeOBJ emits the mesh as unindexed Wavefront OBJ, one v/vt/vn triple per
// vertex, with the terrain's placement and scale applied.
func writeOBJ(out io.Writer, t *terrain.Terrain) error {
	geom := terrain.BuildMesh(t.Heightmap)
	bw := bufio.NewWriter(out)

	fmt.Fprintf(bw, "# heightwalk terrain %dx%d\n", t.Size, t.Size)
	n := geom.VertexCount()
	for i := range n {
		p := geom.Position(i)
		fmt.Fprintf(bw, "v %g %g %g\n", t.Mesh.X+p[0]*t.Scale, p[1], t.Mesh.Z+p[2]*t.Scale)
	}
	for i := range n {
		uv := geom.TexCoord(i)
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for i := range n {
		nv := geom.Normal(i)
		fmt.Fprintf(bw, "vn %g %g %g\n", nv[0], nv[1], nv[2])
	}
	for i := 1; i <= n; i += 3 {
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", i, i, i, i+1, i+1, i+1, i+2, i+2, i+2)
	}

	return bw.Flush()
}

func cmdRelief(w io.Writer, args []string) error {
	var g gridFlags
	fs := newFlagSet("relief", w, &g)
	azimuth := fs.Float64("azimuth", 315, "sun azimuth in degrees")
	elevation := fs.Float64("elevation", 45, "sun elevation in degrees")
	ambient := fs.Float64("ambient", 0.2, "minimum brightness")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: terraintool relief [options] <heightmap> <out.png>")
	}

	t, err := loadTerrain(fs.Arg(0), g)
	if err != nil {
		return err
	}

	img := relief(t.Heightmap, lighting.SunDirection(float32(*azimuth), float32(*elevation)), float32(*ambient))

	f, err := os.Create(fs.Arg(1))
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %s (%dx%d)\n", fs.Arg(1), t.Size, t.Size)
	return nil
}

// relief shades every grid point by its central-difference normal against
// the sun direction. Edge points reuse their own height for missing
// neighbours.
func relief(hm *terrain.Heightmap, sun math.Vec3, ambient float32) *image.Gray {
	size := hm.Size
	img := image.NewGray(image.Rect(0, 0, size, size))

	at := func(x, z int) float32 {
		return hm.At(min(max(x, 0), size-1), min(max(z, 0), size-1))
	}

	for z := range size {
		for x := range size {
			n := math.Vec3{
				X: at(x-1, z) - at(x+1, z),
				Y: 2,
				Z: at(x, z-1) - at(x, z+1),
			}
			b := ambient + (1-ambient)*lighting.Lambert(n, sun)
			img.SetGray(x, z, color.Gray{Y: uint8(min(b, 1) * 255)})
		}
	}

	return img
}
