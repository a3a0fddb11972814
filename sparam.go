// Package sparam 读取 Touchstone 散射参数文件并在史密斯圆图上显示端口反射轨迹。
package sparam

import (
	"fmt"
	"log"

	"sparam/smith"
	"sparam/touchstone"
)

// Logger 日志输出, 为 nil 时不输出
var Logger = log.Default()

func logf(format string, v ...any) {
	if Logger != nil {
		Logger.Printf(format, v...)
	}
}

// Load 加载 Touchstone 文件
func Load(path string) (*touchstone.Network, error) {
	net, err := touchstone.Parse(path)
	if err != nil {
		return nil, err
	}
	if net.Len() > 0 {
		logf("加载 %s: %d 端口, %d 频点, %.6g-%.6g Hz, %s/%s", path, net.Ports, net.Len(),
			net.Freq[0], net.Freq[net.Len()-1], net.Unit, net.Format)
	}
	return net, nil
}

// Trajectory 取出 S(i, j) 的频率轨迹, 端口号从 1 开始
func Trajectory(net *touchstone.Network, i, j int) ([]complex128, error) {
	if i < 1 || j < 1 || i > net.Ports || j > net.Ports {
		return nil, fmt.Errorf("端口 S(%d,%d) 超出范围: 网络为 %d 端口", i, j, net.Ports)
	}
	if net.Len() == 0 {
		return nil, fmt.Errorf("网络没有频点数据")
	}
	return net.Param(i-1, j-1), nil
}

// SmithChart 在圆图上绘制 S(i, j) 轨迹
func SmithChart(net *touchstone.Network, i, j int, mode smith.Mode) (*smith.Chart, error) {
	s, err := Trajectory(net, i, j)
	if err != nil {
		return nil, err
	}
	if !mode.Known() {
		logf("未知显示方式 %q, 使用 %s", mode, smith.PointsAndArrows)
	}
	return smith.Render(s, mode), nil
}
