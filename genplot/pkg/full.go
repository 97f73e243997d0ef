package genplot

import (
	"errors"
	"flag"
	"fmt"
	"os"
)

// Run is the whole pipeline for one plot: load, scale both axes, render.
func Run(f Flags) error {
	data, e := LoadPoints(f.Inpath, f.XCol, f.YCol, f.Skip)
	if e != nil {
		return e
	}

	xax, e := NewAxis(data.Xs(), float64(f.Xsize))
	if e != nil {
		return e
	}
	yax, e := NewAxis(data.Ys(), float64(f.Ysize))
	if e != nil {
		return e
	}

	cfg := PlotConfig{Xdesc: f.Xdesc, Ydesc: f.Ydesc, Title: f.Title}
	return RenderFile(f.Outpath, data, xax, yax, cfg)
}

func FullGenplot() {
	f, e := GetFlags(os.Args[1:])
	if e == flag.ErrHelp {
		PrintUsage(os.Stdout)
		os.Exit(0)
	}
	var ue UsageError
	if errors.As(e, &ue) {
		fmt.Fprintf(os.Stderr, "genericplotter: %v\nrun 'genericplotter -h' for usage\n", e)
		os.Exit(2)
	}
	if e != nil {
		fmt.Fprintf(os.Stderr, "genericplotter: %v\n", e)
		os.Exit(1)
	}
	if f.Version {
		fmt.Printf("genericplotter %v\n", Version)
		return
	}

	if e := Run(f); e != nil {
		fmt.Fprintf(os.Stderr, "genericplotter: %v\n", e)
		os.Exit(1)
	}
}
