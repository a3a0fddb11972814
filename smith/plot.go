package smith

import (
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// 配色
var (
	GridColor   = color.Gray{Y: 128}
	BorderColor = color.Black
	TextColor   = color.RGBA{R: 128, A: 255}
	PointColor  = color.RGBA{B: 255, A: 255}
	ArrowColor  = color.RGBA{R: 255, A: 255}
)

// 图面尺寸
const (
	DefaultWidth  = 6.5 * vg.Inch
	DefaultHeight = 5.5 * vg.Inch
)

// View 坐标显示范围, 留出标注位置
const View = 1.25

func xys(pts []complex128) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i].X, out[i].Y = real(p), imag(p)
	}
	return out
}

func circle(c Circle) plotter.XYs {
	out := make(plotter.XYs, Samples)
	step := 2 * math.Pi / float64(Samples-1)
	for i := range out {
		t := float64(i) * step
		out[i].X = real(c.Center) + c.Radius*math.Cos(t)
		out[i].Y = imag(c.Center) + c.Radius*math.Sin(t)
	}
	return out
}

func addLine(p *plot.Plot, pts plotter.XYs, clr color.Color, width vg.Length) error {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle.Color = clr
	l.LineStyle.Width = width
	p.Add(l)
	return nil
}

// Plot 生成 gonum/plot 图形
func (c *Chart) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = -View, View
	p.Y.Min, p.Y.Max = -View, View
	p.BackgroundColor = color.White

	// 网格
	for _, ci := range c.Circles {
		var clr color.Color = GridColor
		width := vg.Points(0.5)
		if ci.Kind == UnitCircle {
			clr, width = BorderColor, vg.Points(1)
		}
		if err := addLine(p, circle(ci), clr, width); err != nil {
			return nil, err
		}
	}
	if err := addLine(p, xys(c.Axis[:]), GridColor, vg.Points(0.5)); err != nil {
		return nil, err
	}
	for _, arc := range c.Arcs {
		for _, seg := range arc.Segments {
			if err := addLine(p, xys(seg), GridColor, vg.Points(0.5)); err != nil {
				return nil, err
			}
		}
	}
	if err := c.addLabels(p); err != nil {
		return nil, err
	}

	// 轨迹
	for _, line := range c.Lines {
		if err := addLine(p, xys(line), PointColor, vg.Points(2)); err != nil {
			return nil, err
		}
	}
	if len(c.Arrows) > 0 {
		p.Add(&arrows{Arrows: c.Arrows, Head: vg.Points(8), Width: vg.Points(2)})
	}
	if err := c.addMarkers(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Chart) addLabels(p *plot.Plot) error {
	data := plotter.XYLabels{XYs: make(plotter.XYs, len(c.Labels)), Labels: make([]string, len(c.Labels))}
	for i, l := range c.Labels {
		data.XYs[i].X, data.XYs[i].Y = real(l.Pos), imag(l.Pos)
		data.Labels[i] = l.Text
	}
	labels, err := plotter.NewLabels(data)
	if err != nil {
		return err
	}
	for i, l := range c.Labels {
		sty := &labels.TextStyle[i]
		sty.Color = TextColor
		sty.Font.Size = vg.Points(12)
		sty.XAlign, sty.YAlign = text.XCenter, text.YCenter
		if l.Left {
			sty.XAlign, sty.YAlign = text.XLeft, text.YBottom
		}
		if l.Rotate {
			sty.Rotation = math.Pi / 2
		}
	}
	p.Add(labels)
	return nil
}

func (c *Chart) addMarkers(p *plot.Plot) error {
	var stars, dots []complex128
	for _, m := range c.Markers {
		if m.Star {
			stars = append(stars, m.Pos)
		} else {
			dots = append(dots, m.Pos)
		}
	}
	if len(stars) > 0 {
		s, err := plotter.NewScatter(xys(stars))
		if err != nil {
			return err
		}
		s.GlyphStyle = draw.GlyphStyle{Color: PointColor, Radius: vg.Points(6), Shape: starGlyph{}}
		p.Add(s)
	}
	if len(dots) > 0 {
		s, err := plotter.NewScatter(xys(dots))
		if err != nil {
			return err
		}
		s.GlyphStyle = draw.GlyphStyle{Color: PointColor, Radius: vg.Points(4), Shape: draw.CircleGlyph{}}
		p.Add(s)
	}
	return nil
}

// equalAspect 放大较窄一侧的坐标范围, 使两轴每单位长度相同
func equalAspect(p *plot.Plot, c draw.Canvas) {
	cx, cy := (p.X.Min+p.X.Max)/2, (p.Y.Min+p.Y.Max)/2
	hx, hy := (p.X.Max-p.X.Min)/2, (p.Y.Max-p.Y.Min)/2
	// 标注的留白随坐标范围变化, 迭代到稳定
	for i := 0; i < 8; i++ {
		da := p.DataCanvas(c)
		w, h := float64(da.Max.X-da.Min.X), float64(da.Max.Y-da.Min.Y)
		if w <= 0 || h <= 0 {
			return
		}
		s := math.Max(2*hx/w, 2*hy/h)
		p.X.Min, p.X.Max = cx-s*w/2, cx+s*w/2
		p.Y.Min, p.Y.Max = cy-s*h/2, cy+s*h/2
	}
}

// Draw 按等比例绘制到画布上
func (c *Chart) Draw(dc draw.Canvas) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	equalAspect(p, dc)
	p.Draw(dc)
	return nil
}

// WriterTo 按格式 (png, svg, pdf, ...) 输出
func (c *Chart) WriterTo(w, h vg.Length, format string) (io.WriterTo, error) {
	cv, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, err
	}
	if err := c.Draw(draw.New(cv)); err != nil {
		return nil, err
	}
	return cv, nil
}

// Save 保存为图片, 格式由扩展名决定
func (c *Chart) Save(w, h vg.Length, path string) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	wt, err := c.WriterTo(w, h, format)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = wt.WriteTo(file)
	return err
}
