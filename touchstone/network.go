// Package touchstone 读写 Touchstone (.sNp) 格式的散射参数文件。
//
// 文件名倒数第二个字符为端口数, 第一行以 '#' 开头的内容为格式头:
//
//	# <unit> S <MA|DB|RI> [R <ohms>]
//
// 其后每条记录为 1 + 2*n*n 个数值, 可跨行书写, '!' 开头为注释。
package touchstone

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// DefaultReference 缺省参考阻抗(欧姆)
const DefaultReference = 50.0

// Network 多端口网络的频率扫描数据
type Network struct {
	Ports     int           // 端口数
	Unit      Unit          // 文件声明的频率单位
	Format    Format        // 文件声明的参数表示方式
	Reference float64       // 参考阻抗
	Freq      []float64     // 频率(赫兹)
	S         []*mat.CDense // 散射矩阵, S[k].At(i, j) 为端口 j 激励时端口 i 的响应
}

// Len 频点数量
func (n *Network) Len() int { return len(n.Freq) }

// At 第 k 个频点的频率与散射矩阵
func (n *Network) At(k int) (float64, *mat.CDense) { return n.Freq[k], n.S[k] }

// Param 取出 S(i, j) 随频率变化的序列, 下标从 0 开始。
// 下标超出端口数时 panic, 需要检查的调用方应先比较 Ports。
func (n *Network) Param(i, j int) []complex128 {
	if i < 0 || j < 0 || i >= n.Ports || j >= n.Ports {
		panic(fmt.Sprintf("touchstone: port index (%d, %d) out of range for %d-port network", i, j, n.Ports))
	}
	out := make([]complex128, len(n.S))
	for k, s := range n.S {
		out[k] = s.At(i, j)
	}
	return out
}

// Append 追加一个频点, 矩阵尺寸必须与端口数一致
func (n *Network) Append(freq float64, s *mat.CDense) error {
	r, c := s.Dims()
	if r != n.Ports || c != n.Ports {
		return fmt.Errorf("touchstone: matrix is %dx%d, want %dx%d", r, c, n.Ports, n.Ports)
	}
	n.Freq = append(n.Freq, freq)
	n.S = append(n.S, s)
	return nil
}
