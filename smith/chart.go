// Package smith 绘制史密斯圆图并叠加反射系数轨迹。
//
// Render 只计算图元(圆、弧、标注、点、线、箭头), 得到的 Chart 由调用方
// 通过 Plot/Save/WriterTo 输出为图片。
package smith

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// 网格参数
var (
	Resistances = []float64{0, 0.2, 0.5, 1, 2, 5, 10} // 等电阻圆
	Reactances  = []float64{0.2, 0.5, 1, 2, 10}       // 等电抗弧
)

// Samples 每个圆的采样点数
const Samples = 10001

// LabelRadius 电抗标注所在圆的半径
const LabelRadius = 1.1

// CircleKind 圆的类别
type CircleKind uint8

const (
	ResistanceCircle CircleKind = iota
	UnitCircle
)

// Circle 网格圆
type Circle struct {
	Center complex128
	Radius float64
	Kind   CircleKind
}

// Arc 等电抗弧位于单位圆内的部分, 每段为连续的采样点
type Arc struct {
	X        float64 // 归一化电抗, 负值为下半平面
	Center   complex128
	Radius   float64
	Segments [][]complex128
}

// Label 文字标注
type Label struct {
	Pos    complex128
	Text   string
	Rotate bool // 旋转 90 度
	Left   bool // 左下对齐, 否则居中
}

// Marker 采样点标记
type Marker struct {
	Pos  complex128
	Star bool // 星形, 否则为圆点
}

// Arrow 有向线段
type Arrow struct {
	From, To complex128
	Trail    bool // 属于折线末端
}

// Chart 一次渲染的全部图元
type Chart struct {
	Mode    Mode
	Circles []Circle
	Arcs    []Arc
	Axis    [2]complex128
	Labels  []Label
	Markers []Marker
	Lines   [][]complex128
	Arrows  []Arrow
}

// Grid 只含静态网格的圆图
func Grid() *Chart {
	c := &Chart{Mode: PointsAndArrows, Axis: [2]complex128{-1, 1}}
	for _, r := range Resistances {
		c.Circles = append(c.Circles, Circle{Center: complex(r/(r+1), 0), Radius: 1 / (r + 1), Kind: ResistanceCircle})
	}
	c.Circles = append(c.Circles, Circle{Center: 0, Radius: 1, Kind: UnitCircle})
	for _, x := range Reactances {
		upper := reactanceArc(x)
		lower := Arc{X: -x, Center: cmplx.Conj(upper.Center), Radius: upper.Radius}
		for _, seg := range upper.Segments {
			mirror := make([]complex128, len(seg))
			for i, p := range seg {
				mirror[i] = cmplx.Conj(p)
			}
			lower.Segments = append(lower.Segments, mirror)
		}
		c.Arcs = append(c.Arcs, upper, lower)
	}
	c.Labels = gridLabels()
	return c
}

// reactanceArc 圆心 (1, 1/x), 半径 1/x, 只保留 |z| <= 1 的采样点
func reactanceArc(x float64) Arc {
	arc := Arc{X: x, Center: complex(1, 1/x), Radius: 1 / x}
	theta := floats.Span(make([]float64, Samples), 0, 2*math.Pi)
	var seg []complex128
	for _, t := range theta {
		p := arc.Center + complex(arc.Radius*math.Cos(t), arc.Radius*math.Sin(t))
		if real(p)*real(p)+imag(p)*imag(p) <= 1 {
			seg = append(seg, p)
			continue
		}
		if len(seg) > 0 {
			arc.Segments = append(arc.Segments, seg)
			seg = nil
		}
	}
	if len(seg) > 0 {
		arc.Segments = append(arc.Segments, seg)
	}
	return arc
}

func gridLabels() []Label {
	var labels []Label
	for _, x := range Reactances {
		a := 2 * math.Atan(1/x)
		pos := complex(LabelRadius*math.Cos(a), LabelRadius*math.Sin(a))
		labels = append(labels,
			Label{Pos: pos, Text: fmt.Sprintf("+%.1f", x)},
			Label{Pos: cmplx.Conj(pos), Text: fmt.Sprintf("-%.1f", x)})
	}
	for _, r := range Resistances[1:] {
		// 圆的最左端
		labels = append(labels, Label{Pos: complex(r/(1+r)-1/(1+r), 0), Text: fmt.Sprintf("%.1f", r), Rotate: true, Left: true})
	}
	return append(labels,
		Label{Pos: -LabelRadius, Text: "0.0"},
		Label{Pos: LabelRadius, Text: "∞"})
}

// Render 在网格上叠加采样点, 不做裁剪和校验
func Render(samples []complex128, mode Mode) *Chart {
	c := Grid()
	c.Mode = mode.Normalize()
	pts := append([]complex128(nil), samples...)
	switch {
	case len(pts) == 0:
	case len(pts) == 1:
		c.Markers = append(c.Markers, Marker{Pos: pts[0], Star: true})
	case c.Mode == PointsOnly:
		for _, p := range pts {
			c.Markers = append(c.Markers, Marker{Pos: p, Star: true})
		}
	case c.Mode == LineWithArrow:
		last := len(pts) - 1
		if len(pts) > 2 {
			c.Lines = append(c.Lines, pts[:last])
		}
		c.Arrows = append(c.Arrows, Arrow{From: pts[last-1], To: pts[last], Trail: true})
	default:
		for _, p := range pts {
			c.Markers = append(c.Markers, Marker{Pos: p})
		}
		for i := 0; i+1 < len(pts); i++ {
			c.Arrows = append(c.Arrows, Arrow{From: pts[i], To: pts[i+1]})
		}
	}
	return c
}

// Impedance 反射系数映射为归一化阻抗 z = (1+Γ)/(1-Γ)
func Impedance(gamma complex128) complex128 {
	return (1 + gamma) / (1 - gamma)
}

// Reflection 归一化阻抗映射为反射系数 Γ = (z-1)/(z+1)
func Reflection(z complex128) complex128 {
	return (z - 1) / (z + 1)
}
