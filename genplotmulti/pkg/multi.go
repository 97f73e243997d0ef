package genplotmulti

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jgbaldwinbrown/genericplotter/genplot/pkg"
	"golang.org/x/sync/errgroup"
)

// Job is one plot, read as a JSON object from the job stream. Zero-value
// sizes fall back to the genplot defaults.
type Job struct {
	Inpath string
	Outpath string
	XCol int
	YCol int
	Xdesc string
	Ydesc string
	Title string
	Xsize int
	Ysize int
	Skip int
}

func JobFlags(j Job) (genplot.Flags, error) {
	f := genplot.Flags{
		XCol: j.XCol,
		YCol: j.YCol,
		Xdesc: j.Xdesc,
		Ydesc: j.Ydesc,
		Title: j.Title,
		Xsize: j.Xsize,
		Ysize: j.Ysize,
		Skip: j.Skip,
		Inpath: j.Inpath,
		Outpath: j.Outpath,
	}
	if f.Xsize == 0 {
		f.Xsize = genplot.DefaultXsize
	}
	if f.Ysize == 0 {
		f.Ysize = genplot.DefaultYsize
	}
	if f.Xsize < 0 || f.Ysize < 0 {
		return f, fmt.Errorf("job %v: negative canvas size %v x %v", j.Outpath, f.Xsize, f.Ysize)
	}
	if f.XCol < 0 || f.YCol < 0 {
		return f, fmt.Errorf("job %v: negative column index", j.Outpath)
	}
	if f.Inpath == "" || f.Outpath == "" {
		return f, fmt.Errorf("job %+v: missing input or output path", j)
	}
	return f, nil
}

func RunJob(j Job) error {
	f, e := JobFlags(j)
	if e != nil {
		return e
	}
	if e := genplot.Run(f); e != nil {
		return fmt.Errorf("job %v: %w", j.Outpath, e)
	}
	return nil
}

func PlotMulti(threads int, jobs ...Job) error {
	var g errgroup.Group
	if threads > 0 {
		g.SetLimit(threads)
	}
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			return RunJob(job)
		})
	}
	return g.Wait()
}

func ReadJobs(r io.Reader) ([]Job, error) {
	dec := json.NewDecoder(r)
	var jobs []Job
	for {
		var j Job
		if e := dec.Decode(&j); e == io.EOF {
			break
		} else if e != nil {
			return nil, e
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func FullPlotMulti() {
	threads := flag.Int("t", -1, "Threads to use (default infinite).")
	flag.Parse()

	jobs, e := ReadJobs(os.Stdin)
	if e != nil {
		fmt.Fprintf(os.Stderr, "genplotmulti: %v\n", e)
		os.Exit(1)
	}

	if e := PlotMulti(*threads, jobs...); e != nil {
		fmt.Fprintf(os.Stderr, "genplotmulti: %v\n", e)
		os.Exit(1)
	}
}
