// Package report 生成网络扫描数据的网页报告和 JSON 快照。
package report

import (
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"sparam/smith"
	"sparam/touchstone"
)

// Charts 扫描曲线绘制
type Charts struct {
	Record
	Title string
	Port  [2]int // 圆图显示的参数, 从 1 开始
}

// NewCharts 由网络创建报告, 圆图默认显示 S11
func NewCharts(net *touchstone.Network, title string) *Charts {
	c := &Charts{Title: title, Port: [2]int{1, 1}}
	c.Init(net)
	return c
}

func legend() charts.GlobalOpts {
	return charts.WithLegendOpts(opts.Legend{
		Type:   "scroll",
		Orient: "vertical",
		Right:  "10",
		Top:    "20",
		Bottom: "20",
	})
}

func sweepLine(title, subtitle string, x []string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		legend(),
		charts.WithXAxisOpts(opts.XAxis{
			SplitNumber: 20,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	line.SetXAxis(x)
	return line
}

func lineData(v []float64) []opts.LineData {
	items := make([]opts.LineData, len(v))
	for i, y := range v {
		items[i].Value = y
	}
	return items
}

// smithLine 圆图轨迹, x/y 均为数值轴
func (c *Charts) smithLine() (*charts.Line, error) {
	name := fmt.Sprintf("S%d%d", c.Port[0], c.Port[1])
	p, ok := c.Get(name)
	if !ok {
		return nil, fmt.Errorf("report: %s not in %d-port record", name, c.Ports)
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "史密斯圆图",
			Subtitle: name + " 反射系数轨迹",
		}),
		legend(),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Min:  -1,
			Max:  1,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Min:  -1,
			Max:  1,
		}),
	)
	// 单位圆和等电阻圆
	grid := smith.Grid()
	for _, ci := range grid.Circles {
		items := make([]opts.LineData, 0, 73)
		for k := 0; k <= 72; k++ {
			t := float64(k) * math.Pi / 36
			items = append(items, opts.LineData{Value: []float64{
				real(ci.Center) + ci.Radius*math.Cos(t),
				imag(ci.Center) + ci.Radius*math.Sin(t),
			}})
		}
		label := fmt.Sprintf("r=%.1f", (1-ci.Radius)/ci.Radius)
		if ci.Kind == smith.UnitCircle {
			label = "|Γ|=1"
		}
		line.AddSeries(label, items,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}))
	}
	items := make([]opts.LineData, len(p.Re))
	for k := range p.Re {
		items[k].Value = []float64{p.Re[k], p.Im[k]}
	}
	line.AddSeries(name, items)
	return line, nil
}

// Page 构建报告页面
func (c *Charts) Page() (*components.Page, error) {
	x := make([]string, len(c.Freq))
	for i, f := range c.Freq {
		x[i] = fmt.Sprintf("%.6g", f)
	}
	subtitle := fmt.Sprintf("%s, %d 端口, 参考阻抗 %g Ω, 频率单位 Hz", c.Title, c.Ports, c.Reference)
	lineDB := sweepLine("幅度曲线", subtitle, x)
	lineDeg := sweepLine("相位曲线", subtitle, x)
	for _, p := range c.Params {
		lineDB.AddSeries(p.Name, lineData(p.DB))
		lineDeg.AddSeries(p.Name, lineData(p.Deg))
	}
	chart, err := c.smithLine()
	if err != nil {
		return nil, err
	}
	page := components.NewPage()
	page.PageTitle = c.Title
	page.AddCharts(
		lineDB,
		lineDeg,
		chart,
	)
	return page, nil
}

// Render 输出 HTML 页面
func (c *Charts) Render(w io.Writer) error {
	page, err := c.Page()
	if err != nil {
		return err
	}
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }
