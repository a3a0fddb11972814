package touchstone

import (
	"math"
	"math/cmplx"
	"strings"
)

// Format 参数表示方式
type Format uint8

const (
	MA Format = iota // 幅度-角度(度)
	DB               // 分贝-角度(度)
	RI               // 实部-虚部
)

var formatName = [...]string{MA: "MA", DB: "DB", RI: "RI"}

var formatTable = map[string]Format{"MA": MA, "DB": DB, "RI": RI}

// ParseFormat 解析表示方式, 不区分大小写
func ParseFormat(s string) (Format, bool) {
	f, ok := formatTable[strings.ToUpper(s)]
	return f, ok
}

func (f Format) String() string {
	if int(f) >= len(formatName) {
		return "Format(?)"
	}
	return formatName[f]
}

// Complex 将一对数值解码为复数
func (f Format) Complex(a, b float64) complex128 {
	switch f {
	case DB:
		return cmplx.Rect(math.Pow(10, a/20), b*math.Pi/180)
	case RI:
		return complex(a, b)
	default:
		return cmplx.Rect(a, b*math.Pi/180)
	}
}

// Pair 复数编码为一对数值, Complex 的逆运算
func (f Format) Pair(c complex128) (a, b float64) {
	switch f {
	case DB:
		return 20 * math.Log10(cmplx.Abs(c)), cmplx.Phase(c) * 180 / math.Pi
	case RI:
		return real(c), imag(c)
	default:
		return cmplx.Abs(c), cmplx.Phase(c) * 180 / math.Pi
	}
}
