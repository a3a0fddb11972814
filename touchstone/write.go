package touchstone

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Write 按网络声明的单位和表示方式输出 Touchstone 数据, 每个频点一行
func Write(w io.Writer, n *Network) error {
	if len(n.Freq) != len(n.S) {
		return fmt.Errorf("touchstone: %d frequencies for %d matrices", len(n.Freq), len(n.S))
	}
	writer := bufio.NewWriter(w)
	fmt.Fprintf(writer, "! %d-port network, %d points\n", n.Ports, n.Len())
	fmt.Fprintf(writer, "# %s S %s R %s\n", n.Unit, n.Format, strconv.FormatFloat(n.Reference, 'g', -1, 64))
	scale := n.Unit.Multiplier()
	cells := n.Ports * n.Ports
	for k, s := range n.S {
		if r, c := s.Dims(); r != n.Ports || c != n.Ports {
			return fmt.Errorf("touchstone: point %d: matrix is %dx%d, want %dx%d", k, r, c, n.Ports, n.Ports)
		}
		writer.WriteString(strconv.FormatFloat(n.Freq[k]/scale, 'g', -1, 64))
		for e := 0; e < cells; e++ {
			a, b := n.Format.Pair(s.At(e%n.Ports, e/n.Ports))
			writer.WriteRune(' ')
			writer.WriteString(strconv.FormatFloat(a, 'g', -1, 64))
			writer.WriteRune(' ')
			writer.WriteString(strconv.FormatFloat(b, 'g', -1, 64))
		}
		writer.WriteRune('\n')
	}
	return writer.Flush()
}

// WriteFile 写入文件, 文件名的端口数必须与网络一致
func WriteFile(path string, n *Network) (err error) {
	ports, err := Ports(path)
	if err != nil {
		return err
	}
	if ports != n.Ports {
		return fmt.Errorf("touchstone: %s names %d ports, network has %d", path, ports, n.Ports)
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
	return Write(file, n)
}
