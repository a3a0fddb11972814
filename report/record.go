package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"sparam/touchstone"
)

// MinDB 零幅度对应的分贝值, JSON 不能表示 -Inf
const MinDB = -300.0

// Param 单个散射参数随频率的变化
type Param struct {
	Name string    // 例如 S21
	Re   []float64 // 实部
	Im   []float64 // 虚部
	DB   []float64 // 幅度(dB)
	Deg  []float64 // 相位(度)
}

// Record 网络数据快照
type Record struct {
	Ports     int
	Unit      string
	Format    string
	Reference float64
	Freq      []float64 // 赫兹
	Params    []Param   // 按 S11, S12, ..., Snn 排列
}

// Init 由网络初始化
func (rec *Record) Init(net *touchstone.Network) {
	rec.Ports = net.Ports
	rec.Unit = net.Unit.String()
	rec.Format = net.Format.String()
	rec.Reference = net.Reference
	rec.Freq = append([]float64{}, net.Freq...)
	rec.Params = rec.Params[:0]
	for i := 0; i < net.Ports; i++ {
		for j := 0; j < net.Ports; j++ {
			rec.Params = append(rec.Params, newParam(fmt.Sprintf("S%d%d", i+1, j+1), net.Param(i, j)))
		}
	}
}

func newParam(name string, s []complex128) Param {
	p := Param{
		Name: name,
		Re:   make([]float64, len(s)),
		Im:   make([]float64, len(s)),
		DB:   make([]float64, len(s)),
		Deg:  make([]float64, len(s)),
	}
	for k, v := range s {
		p.Re[k], p.Im[k] = real(v), imag(v)
		p.DB[k] = math.Log10(cmplx.Abs(v))
		p.Deg[k] = cmplx.Phase(v)
	}
	floats.Scale(20, p.DB)
	for k, v := range p.DB {
		p.DB[k] = math.Max(v, MinDB)
	}
	floats.Scale(180/math.Pi, p.Deg)
	return p
}

// Get 按名称查找参数
func (rec *Record) Get(name string) (Param, bool) {
	for _, p := range rec.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Render 以 JSON 格式输出
func (rec *Record) Render(w io.Writer) error { return json.NewEncoder(w).Encode(rec) }

func (rec *Record) Error(err error) { log.Println(err) }
