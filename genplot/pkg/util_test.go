package genplot

import (
	"errors"
	"strings"
	"testing"
)

func TestGetFlags(t *testing.T) {
	args := []string{"-x", "0", "-y", "1", "--xsize", "100", "--ysize", "100", "--xdesc", "time", "--ydesc", "rate", "in.txt", "out.png"}
	f, e := GetFlags(args)
	if e != nil {
		t.Fatal(e)
	}
	exp := Flags{
		XCol: 0,
		YCol: 1,
		Xdesc: "time",
		Ydesc: "rate",
		Xsize: 100,
		Ysize: 100,
		Inpath: "in.txt",
		Outpath: "out.png",
	}
	if f != exp {
		t.Errorf("got %+v; expected %+v", f, exp)
	}
}

func TestGetFlagsDefaults(t *testing.T) {
	f, e := GetFlags([]string{"-x", "2", "-y", "3", "in.txt", "out.png"})
	if e != nil {
		t.Fatal(e)
	}
	if f.Xsize != DefaultXsize || f.Ysize != DefaultYsize {
		t.Errorf("got default sizes %v x %v; expected %v x %v", f.Xsize, f.Ysize, DefaultXsize, DefaultYsize)
	}
	if f.Xdesc != "" || f.Ydesc != "" || f.Title != "" || f.Skip != 0 {
		t.Errorf("got nonempty optional flags: %+v", f)
	}
}

func TestGetFlagsMissing(t *testing.T) {
	var ue UsageError

	_, e := GetFlags([]string{"-y", "1", "in.txt", "out.png"})
	if !errors.As(e, &ue) {
		t.Errorf("missing -x: expected UsageError, got %v", e)
	}

	_, e = GetFlags([]string{"-x", "0", "in.txt", "out.png"})
	if !errors.As(e, &ue) {
		t.Errorf("missing -y: expected UsageError, got %v", e)
	}

	_, e = GetFlags([]string{"-x", "0", "-y", "1", "in.txt"})
	if !errors.As(e, &ue) {
		t.Errorf("missing outfile: expected UsageError, got %v", e)
	}
}

func TestGetFlagsBadOutpath(t *testing.T) {
	_, e := GetFlags([]string{"-x", "0", "-y", "1", "in.txt", "out.jpg"})
	var ue UsageError
	if !errors.As(e, &ue) {
		t.Errorf("non-.png output: expected UsageError, got %v", e)
	}
}

func TestGetFlagsBadSizes(t *testing.T) {
	_, e := GetFlags([]string{"-x", "0", "-y", "1", "--xsize", "0", "in.txt", "out.png"})
	var ue UsageError
	if !errors.As(e, &ue) {
		t.Errorf("zero xsize: expected UsageError, got %v", e)
	}
}

func TestGetFlagsParseError(t *testing.T) {
	var ue UsageError

	_, e := GetFlags([]string{"-x", "notanumber", "-y", "1", "in.txt", "out.png"})
	if !errors.As(e, &ue) {
		t.Errorf("bad -x value: expected UsageError, got %v", e)
	}

	_, e = GetFlags([]string{"-bogus", "in.txt", "out.png"})
	if !errors.As(e, &ue) {
		t.Errorf("unknown flag: expected UsageError, got %v", e)
	}
}

func TestPrintUsage(t *testing.T) {
	var b strings.Builder
	PrintUsage(&b)
	if !strings.Contains(b.String(), "Usage: genericplotter") {
		t.Errorf("usage output missing header: %v", b.String())
	}
}

func TestGetFlagsVersion(t *testing.T) {
	f, e := GetFlags([]string{"-V"})
	if e != nil {
		t.Fatal(e)
	}
	if !f.Version {
		t.Errorf("-V did not set Version")
	}

	f, e = GetFlags([]string{"--version"})
	if e != nil {
		t.Fatal(e)
	}
	if !f.Version {
		t.Errorf("--version did not set Version")
	}
}
