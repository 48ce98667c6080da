package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/golang/glog"
	"github.com/olivren/bitarea"
)

type Params struct {
	Count  int
	Shift  uint
	Seed   uint64
	Fixed  bool
	Width  int
	Height int
}

func main() {
	var params Params
	flag.IntVar(&params.Count, "n", 5, "Number of random grids to generate")
	flag.UintVar(&params.Shift, "shift", 1, "Number of columns to shift by")
	flag.Uint64Var(&params.Seed, "seed", 1, "Random seed")
	flag.BoolVar(&params.Fixed, "fixed", false, "Generate 3x4 grids only")
	flag.IntVar(&params.Width, "width", 0, "Width of an empty grid to render instead of random ones")
	flag.IntVar(&params.Height, "height", 0, "Height of an empty grid to render instead of random ones")
	flag.Parse()
	defer glog.Flush()

	grids, err := makeGrids(params)
	if err != nil {
		glog.Errorf("Invalid parameters: %v", err)
		glog.Flush()
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	for i, b := range grids {
		glog.Infof("Grid %d: %dx%d, payload %#016x", i, b.Width(), b.Height(), b.Data())
		if err := dump(w, b, params.Shift); err != nil {
			glog.Errorf("Error writing grid %d: %v", i, err)
			glog.Flush()
			os.Exit(1)
		}
	}
	if err := w.Flush(); err != nil {
		glog.Errorf("Error writing output: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func makeGrids(params Params) ([]bitarea.Bitarea, error) {
	if params.Width != 0 || params.Height != 0 {
		b, err := bitarea.NewChecked(params.Width, params.Height)
		if err != nil {
			return nil, err
		}
		return []bitarea.Bitarea{b}, nil
	}
	if params.Count < 0 {
		return nil, fmt.Errorf("negative grid count: %d", params.Count)
	}

	src := rand.New(rand.NewPCG(params.Seed, params.Seed^0x5851f42d4c957f2d))
	shape := bitarea.NewShapeSampler(rand.NewPCG(params.Seed+1, 0xda3e39cb94b95bdb))
	grids := make([]bitarea.Bitarea, 0, params.Count)
	for i := 0; i < params.Count; i++ {
		if params.Fixed {
			grids = append(grids, bitarea.RandomFixed(src))
		} else {
			grids = append(grids, bitarea.Random(src, shape))
		}
	}
	return grids, nil
}

func dump(w io.Writer, b bitarea.Bitarea, shift uint) error {
	_, err := fmt.Fprintf(w, "%dx%d\n%s\n\n<< %d\n%s\n\n>> %d\n%s\n\n",
		b.Width(), b.Height(), b,
		shift, b.ShiftLeft(shift),
		shift, b.ShiftRight(shift))
	return err
}
