// terraintool inspects and converts heightmaps without opening a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "height", "h":
		err = cmdHeight(os.Stdout, args)
	case "obj":
		err = cmdOBJ(os.Stdout, args)
	case "relief":
		err = cmdRelief(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - heightmap utility

Usage:
  terraintool <command> [options] <heightmap> ...

Commands:
  info   <heightmap>                 Show grid size, height range and mesh counts
  height <heightmap> <x> <z>         Sample the interpolated ground height
  obj    <heightmap> <out.obj>       Export the terrain mesh as Wavefront OBJ
  relief <heightmap> <out.png>       Render a shaded relief image

Common options:
  -size N      grid points per side (default 512)
  -scale S     world units per cell (default 1)

Examples:
  terraintool info assets/heightmaps/pit.bmp
  terraintool height -size 512 assets/heightmaps/pit.bmp 10.5 -3
  terraintool relief -azimuth 315 -elevation 30 pit.bmp relief.png`)
}
