package smith

// Mode 采样点叠加方式
type Mode string

const (
	PointsAndArrows Mode = "points_and_arrows" // 标记每个点, 相邻点之间画箭头
	LineWithArrow   Mode = "line_with_arrow"   // 折线, 仅最后一段带箭头
	PointsOnly      Mode = "points_only"       // 只画点
)

// Normalize 未知方式按 PointsAndArrows 处理
func (m Mode) Normalize() Mode {
	switch m {
	case LineWithArrow, PointsOnly:
		return m
	}
	return PointsAndArrows
}

// Known 是否为已定义的方式
func (m Mode) Known() bool {
	switch m {
	case PointsAndArrows, LineWithArrow, PointsOnly:
		return true
	}
	return false
}
