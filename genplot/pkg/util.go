package genplot

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

const Version = "0.2.0"

const (
	DefaultXsize = 800
	DefaultYsize = 600
)

type Flags struct {
	XCol int
	YCol int
	Xdesc string
	Ydesc string
	Xsize int
	Ysize int
	Title string
	Skip int
	Inpath string
	Outpath string
	Version bool
}

// UsageError is a bad or missing command-line argument.
type UsageError struct {
	Err error
}

func (e UsageError) Error() string { return e.Err.Error() }
func (e UsageError) Unwrap() error { return e.Err }

// DataError is an unreadable input file, a missing column, or an
// unparseable field.
type DataError struct {
	Err error
}

func (e DataError) Error() string { return e.Err.Error() }
func (e DataError) Unwrap() error { return e.Err }

// RenderError is an unwritable output file or an encoding failure.
type RenderError struct {
	Err error
}

func (e RenderError) Error() string { return e.Err.Error() }
func (e RenderError) Unwrap() error { return e.Err }

func Must(e error) {
	if e != nil {
		panic(e)
	}
}

func usagef(format string, args ...any) error {
	return UsageError{fmt.Errorf(format, args...)}
}

func NewFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("genericplotter", flag.ContinueOnError)
	fs.IntVar(&f.XCol, "x", -1, "Column to plot on the X axis (0-based; required).")
	fs.IntVar(&f.YCol, "y", -1, "Column to plot on the Y axis (0-based; required).")
	fs.StringVar(&f.Xdesc, "xdesc", "", "Axis description for the X axis.")
	fs.StringVar(&f.Ydesc, "ydesc", "", "Axis description for the Y axis.")
	fs.IntVar(&f.Xsize, "xsize", DefaultXsize, "Canvas size in pixels (X axis).")
	fs.IntVar(&f.Ysize, "ysize", DefaultYsize, "Canvas size in pixels (Y axis).")
	fs.StringVar(&f.Title, "title", "", "Plot title.")
	fs.IntVar(&f.Skip, "skip", 0, "Skip this many leading lines before reading data.")
	fs.BoolVar(&f.Version, "V", false, "Print version and exit.")
	fs.BoolVar(&f.Version, "version", false, "Print version and exit.")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %v [OPTIONS] <infile> <outfile.png>\n", fs.Name())
		fs.PrintDefaults()
	}
	return fs
}

func PrintUsage(w io.Writer) {
	var f Flags
	fs := NewFlagSet(&f)
	fs.SetOutput(w)
	fs.Usage()
}

func GetFlags(args []string) (Flags, error) {
	var f Flags
	fs := NewFlagSet(&f)
	// the flag package prints parse errors and usage on its own;
	// silence it so the caller reports each failure exactly once
	fs.SetOutput(io.Discard)
	if e := fs.Parse(args); e != nil {
		if e == flag.ErrHelp {
			return f, e
		}
		return f, UsageError{e}
	}
	if f.Version {
		return f, nil
	}

	var missing []string
	if f.XCol < 0 {
		missing = append(missing, "-x, X column index")
	}
	if f.YCol < 0 {
		missing = append(missing, "-y, Y column index")
	}
	if len(fs.Args()) != 2 {
		missing = append(missing, "<infile> <outfile.png> arguments")
	}
	if len(missing) > 0 {
		return f, usagef("missing %v", strings.Join(missing, "; missing "))
	}

	f.Inpath = fs.Args()[0]
	f.Outpath = fs.Args()[1]

	if !strings.HasSuffix(f.Outpath, ".png") {
		return f, usagef("output path %v does not end in .png", f.Outpath)
	}
	if f.Xsize < 1 || f.Ysize < 1 {
		return f, usagef("canvas sizes must be positive (got %v x %v)", f.Xsize, f.Ysize)
	}
	if f.Skip < 0 {
		return f, usagef("-skip must not be negative (got %v)", f.Skip)
	}

	return f, nil
}
