package touchstone

import "strings"

// Unit 频率单位
type Unit uint8

const (
	Hz Unit = iota
	KHz
	MHz
	GHz
	THz
)

var unitName = [...]string{Hz: "Hz", KHz: "kHz", MHz: "MHz", GHz: "GHz", THz: "THz"}

var unitScale = [...]float64{Hz: 1, KHz: 1e3, MHz: 1e6, GHz: 1e9, THz: 1e12}

// unitTable 头部单位查找表, 键为大写
var unitTable = map[string]Unit{
	"HZ":  Hz,
	"KHZ": KHz,
	"MHZ": MHz,
	"GHZ": GHz,
	"THZ": THz,
}

// ParseUnit 解析单位, 不区分大小写
func ParseUnit(s string) (Unit, bool) {
	u, ok := unitTable[strings.ToUpper(s)]
	return u, ok
}

// Multiplier 换算到赫兹的倍数
func (u Unit) Multiplier() float64 {
	if int(u) >= len(unitScale) {
		return 1
	}
	return unitScale[u]
}

func (u Unit) String() string {
	if int(u) >= len(unitName) {
		return "Unit(?)"
	}
	return unitName[u]
}
