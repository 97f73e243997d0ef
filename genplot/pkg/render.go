package genplot

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

type PlotConfig struct {
	Xdesc string
	Ydesc string
	Title string
}

const (
	plotDPI = 72
	markerRadius = 2
	tickLen = 4
	labelSize = 12
	titleSize = 16
)

var (
	bgColor = color.White
	axisColor = color.Black
	markerColor = color.RGBA{B: 255, A: 255}
)

var gFonts = font.NewCache(liberation.Collection())

func face(size vg.Length) font.Face {
	return gFonts.Lookup(font.Font{Typeface: "Liberation", Variant: "Sans"}, size)
}

// estWidth is a rough advance-width estimate for label placement;
// Liberation Sans runs at about half the em size per glyph.
func estWidth(s string, size vg.Length) vg.Length {
	return vg.Length(float64(utf8.RuneCountInString(s)) * 0.5 * float64(size))
}

func rect(x, y, w, h vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: x, Y: y})
	p.Line(vg.Point{X: x + w, Y: y})
	p.Line(vg.Point{X: x + w, Y: y + h})
	p.Line(vg.Point{X: x, Y: y + h})
	p.Close()
	return p
}

func circle(x, y, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: x + r, Y: y})
	p.Arc(vg.Point{X: x, Y: y}, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// Render rasterizes one scatterplot and PNG-encodes it to w. The canvas
// runs at 72 DPI so one canvas unit is one pixel and the image comes out
// exactly (xax.Size, yax.Size). Drawing order: background, axis lines and
// ticks, labels, then markers in dataset order.
func Render(w io.Writer, data Dataset, xax, yax Axis, cfg PlotConfig) error {
	c := vgimg.NewWith(
		vgimg.UseDPI(plotDPI),
		vgimg.UseWH(vg.Length(xax.Size), vg.Length(yax.Size)),
	)
	cw := vg.Length(xax.Size)
	ch := vg.Length(yax.Size)

	c.SetColor(bgColor)
	c.Fill(rect(0, 0, cw, ch))

	drawAxes(c, xax, yax)
	drawLabels(c, cw, ch, cfg)

	c.SetColor(markerColor)
	for _, p := range data {
		c.Fill(circle(vg.Length(xax.Pixel(p.X)), vg.Length(yax.Pixel(p.Y)), markerRadius))
	}

	png := vgimg.PngCanvas{Canvas: c}
	if _, e := png.WriteTo(w); e != nil {
		return RenderError{fmt.Errorf("encoding plot: %w", e)}
	}
	return nil
}

func drawAxes(c *vgimg.Canvas, xax, yax Axis) {
	cw := vg.Length(xax.Size)
	ch := vg.Length(yax.Size)

	c.SetColor(axisColor)
	c.SetLineWidth(1)

	var ax vg.Path
	ax.Move(vg.Point{X: 0, Y: ch})
	ax.Line(vg.Point{X: 0, Y: 0})
	ax.Line(vg.Point{X: cw, Y: 0})
	c.Stroke(ax)

	// quarter-range ticks placed with the same transform as the markers
	for i := 0; i <= 4; i++ {
		t := float64(i) / 4

		xv := xax.Min + t*(xax.Max-xax.Min)
		var tick vg.Path
		tick.Move(vg.Point{X: vg.Length(xax.Pixel(xv)), Y: 0})
		tick.Line(vg.Point{X: vg.Length(xax.Pixel(xv)), Y: tickLen})
		c.Stroke(tick)

		yv := yax.Min + t*(yax.Max-yax.Min)
		tick = vg.Path{}
		tick.Move(vg.Point{X: 0, Y: vg.Length(yax.Pixel(yv))})
		tick.Line(vg.Point{X: tickLen, Y: vg.Length(yax.Pixel(yv))})
		c.Stroke(tick)
	}

	fc := face(labelSize)
	minLabel := fmt.Sprintf("%v", xax.Min)
	maxLabel := fmt.Sprintf("%v", xax.Max)
	c.FillString(fc, vg.Point{X: 2, Y: tickLen + 2}, minLabel)
	c.FillString(fc, vg.Point{X: cw - estWidth(maxLabel, labelSize) - 2, Y: tickLen + 2}, maxLabel)

	minLabel = fmt.Sprintf("%v", yax.Min)
	maxLabel = fmt.Sprintf("%v", yax.Max)
	c.FillString(fc, vg.Point{X: tickLen + 2, Y: 2}, minLabel)
	c.FillString(fc, vg.Point{X: tickLen + 2, Y: ch - labelSize}, maxLabel)
}

func drawLabels(c *vgimg.Canvas, cw, ch vg.Length, cfg PlotConfig) {
	c.SetColor(axisColor)

	if cfg.Title != "" {
		fc := face(titleSize)
		c.FillString(fc, vg.Point{X: (cw - estWidth(cfg.Title, titleSize)) / 2, Y: ch - titleSize - 4}, cfg.Title)
	}

	fc := face(labelSize)
	if cfg.Xdesc != "" {
		c.FillString(fc, vg.Point{X: (cw - estWidth(cfg.Xdesc, labelSize)) / 2, Y: tickLen + 2 + labelSize + 4}, cfg.Xdesc)
	}
	if cfg.Ydesc != "" {
		// rotate the y description to run up the left edge
		c.Push()
		c.Rotate(math.Pi / 2)
		c.FillString(fc, vg.Point{X: (ch - estWidth(cfg.Ydesc, labelSize)) / 2, Y: -(tickLen + 2 + labelSize + 4 + labelSize)}, cfg.Ydesc)
		c.Pop()
	}
}

// RenderFile renders fully in memory before creating path, so a failed
// render never leaves a file behind; a failed write removes what it wrote.
func RenderFile(path string, data Dataset, xax, yax Axis, cfg PlotConfig) error {
	var b bytes.Buffer
	if e := Render(&b, data, xax, yax, cfg); e != nil {
		return e
	}
	if e := os.WriteFile(path, b.Bytes(), 0666); e != nil {
		os.Remove(path)
		return RenderError{fmt.Errorf("writing %v: %w", path, e)}
	}
	return nil
}
