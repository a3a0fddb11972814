package smith

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// starGlyph 五角星
type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	inner := sty.Radius * 0.4
	poly := make([]vg.Point, 0, 10)
	for i := 0; i < 10; i++ {
		r := sty.Radius
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/5
		poly = append(poly, vg.Point{X: pt.X + r*vg.Length(math.Cos(a)), Y: pt.Y + r*vg.Length(math.Sin(a))})
	}
	c.FillPolygon(sty.Color, poly)
}

// arrows 以 -|> 样式绘制有向线段
type arrows struct {
	Arrows []Arrow
	Head   vg.Length
	Width  vg.Length
}

func (a *arrows) colorOf(arrow Arrow) color.Color {
	if arrow.Trail {
		return PointColor
	}
	return ArrowColor
}

// Plot 实现 plot.Plotter
func (a *arrows) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, arrow := range a.Arrows {
		from := vg.Point{X: trX(real(arrow.From)), Y: trY(imag(arrow.From))}
		to := vg.Point{X: trX(real(arrow.To)), Y: trY(imag(arrow.To))}
		clr := a.colorOf(arrow)
		dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		ux, uy := dx/length, dy/length
		head := math.Min(float64(a.Head), length)
		// 线段止于箭头底部
		base := vg.Point{X: to.X - vg.Length(ux*head), Y: to.Y - vg.Length(uy*head)}
		c.StrokeLine2(draw.LineStyle{Color: clr, Width: a.Width}, from.X, from.Y, base.X, base.Y)
		half := head * 0.4
		c.FillPolygon(clr, []vg.Point{
			to,
			{X: base.X - vg.Length(uy*half), Y: base.Y + vg.Length(ux*half)},
			{X: base.X + vg.Length(uy*half), Y: base.Y - vg.Length(ux*half)},
		})
	}
}

// DataRange 实现 plot.DataRanger
func (a *arrows) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, arrow := range a.Arrows {
		for _, p := range []complex128{arrow.From, arrow.To} {
			xmin, xmax = math.Min(xmin, real(p)), math.Max(xmax, real(p))
			ymin, ymax = math.Min(ymin, imag(p)), math.Max(ymax, imag(p))
		}
	}
	return xmin, xmax, ymin, ymax
}
