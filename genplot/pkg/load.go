package genplot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jgbaldwinbrown/csvh"
	"github.com/jgbaldwinbrown/iter"
)

type Point struct {
	X float64
	Y float64
}

type Dataset []Point

func (d Dataset) Xs() []float64 {
	out := make([]float64, 0, len(d))
	for _, p := range d {
		out = append(out, p.X)
	}
	return out
}

func (d Dataset) Ys() []float64 {
	out := make([]float64, 0, len(d))
	for _, p := range d {
		out = append(out, p.Y)
	}
	return out
}

// ParsePoints streams (x, y) pairs off of r. The first skip lines and any
// blank lines are ignored; every other line must have enough whitespace-
// separated fields and parseable numbers in the two chosen columns, or the
// whole iteration fails.
func ParsePoints(r io.Reader, xcol, ycol, skip int) *iter.Iterator[Point] {
	return &iter.Iterator[Point]{Iteratef: func(yield func(Point) error) error {
		need := xcol
		if ycol > need {
			need = ycol
		}

		s := bufio.NewScanner(r)
		s.Buffer([]byte{}, 1e12)
		lineno := 0
		for s.Scan() {
			lineno++
			if lineno <= skip {
				continue
			}
			fields := strings.Fields(s.Text())
			if len(fields) == 0 {
				continue
			}
			if len(fields) <= need {
				return DataError{fmt.Errorf("line %v: no such column %v (%v fields)", lineno, need, len(fields))}
			}

			var p Point
			if _, e := csvh.Scan([]string{fields[xcol], fields[ycol]}, &p.X, &p.Y); e != nil {
				return DataError{fmt.Errorf("line %v: %w", lineno, e)}
			}
			if e := yield(p); e != nil {
				return e
			}
		}
		if e := s.Err(); e != nil {
			return DataError{e}
		}
		return nil
	}}
}

func LoadPoints(path string, xcol, ycol, skip int) (Dataset, error) {
	r, e := csvh.OpenMaybeGz(path)
	if e != nil {
		return nil, DataError{fmt.Errorf("reading %v: %w", path, e)}
	}
	defer r.Close()
	br := bufio.NewReader(r)

	pts, e := iter.Collect[Point](ParsePoints(br, xcol, ycol, skip))
	if e != nil {
		return nil, fmt.Errorf("reading %v: %w", path, e)
	}
	return Dataset(pts), nil
}
