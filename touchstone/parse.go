package touchstone

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Ports 由文件名倒数第二个字符得到端口数
func Ports(name string) (int, error) {
	if len(name) < 2 {
		return 0, formatErr(name, 0, ErrPortCount, "file name too short")
	}
	c := name[len(name)-2]
	if c < '1' || c > '9' {
		return 0, formatErr(name, 0, ErrPortCount, strconv.Quote(string(c)))
	}
	return int(c - '0'), nil
}

// Parse 读取 Touchstone 文件
func Parse(path string) (*Network, error) {
	ports, err := Ports(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parse(path, ports, file)
}

// ParseReader 从 r 读取 Touchstone 数据, 端口数仍由 name 决定
func ParseReader(name string, r io.Reader) (*Network, error) {
	ports, err := Ports(name)
	if err != nil {
		return nil, err
	}
	return parse(name, ports, r)
}

func parse(name string, ports int, r io.Reader) (*Network, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	net := &Network{Ports: ports, Reference: DefaultReference}
	line := 0
	// 查找格式头
	header := false
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(text, "#") {
			if err := net.header(name, line, text[1:]); err != nil {
				return nil, err
			}
			header = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !header {
		return nil, formatErr(name, 0, ErrMissingHeader, "")
	}
	// 收集数值
	var data []float64
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '!' || text[0] == '#' {
			continue
		}
		if i := strings.IndexByte(text, '!'); i >= 0 {
			text = text[:i]
		}
		for _, field := range strings.Fields(text) {
			if !decimal(field) {
				return nil, formatErr(name, line, ErrNumber, strconv.Quote(field))
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &FormatError{Path: name, Line: line, Kind: ErrNumber, Msg: strconv.Quote(field), Err: err}
			}
			data = append(data, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, formatErr(name, 0, ErrNoData, "")
	}
	// 按记录切分, 末尾不完整的记录丢弃
	cells := ports * ports
	chunk := 1 + 2*cells
	records := len(data) / chunk
	net.Freq = make([]float64, 0, records)
	net.S = make([]*mat.CDense, 0, records)
	scale := net.Unit.Multiplier()
	for k := 0; k < records; k++ {
		rec := data[k*chunk : (k+1)*chunk]
		s := mat.NewCDense(ports, ports, nil)
		for e := 0; e < cells; e++ {
			// 文件按行优先序列化, 存储时转置
			s.Set(e%ports, e/ports, net.Format.Complex(rec[1+2*e], rec[2+2*e]))
		}
		net.Freq = append(net.Freq, rec[0]*scale)
		net.S = append(net.S, s)
	}
	return net, nil
}

// header 解析格式头: <unit> S <format> [R <ohms>]
func (net *Network) header(name string, line int, text string) error {
	fields := strings.Fields(text)
	if len(fields) < 3 || !strings.EqualFold(fields[1], "S") {
		return formatErr(name, line, ErrHeader, strconv.Quote(text))
	}
	unit, ok := ParseUnit(fields[0])
	if !ok {
		return formatErr(name, line, ErrUnit, strconv.Quote(fields[0]))
	}
	format, ok := ParseFormat(fields[2])
	if !ok {
		return formatErr(name, line, ErrFormat, strconv.Quote(fields[2]))
	}
	net.Unit, net.Format = unit, format
	// 参考阻抗可选, 无法识别时保持缺省值
	if len(fields) > 4 && strings.EqualFold(fields[3], "R") {
		if ref, err := strconv.ParseFloat(fields[4], 64); err == nil && decimal(fields[4]) && ref > 0 {
			net.Reference = ref
		}
	}
	return nil
}

// decimal 只接受十进制写法, 排除 nan, inf 和十六进制
func decimal(s string) bool {
	digits := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits = true
		case c == '+', c == '-', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return digits
}
