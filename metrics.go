package qber

import "math"

// Metrics 由三个分区计数导出的链路质量指标
// BER: 落入信号时隙 D1 的计数占窗口内全部有效计数的比例
// Visibility: 背景时隙与信号时隙的计数比，衡量干涉对比度
type Metrics struct {
	BER        float64
	Visibility float64
}

// ComputeMetrics 按固定约定计算 BER 与可见度:
//
//	BER        = D1 / (C1 + D1 + C2)
//	Visibility = (C1 + C2) / D1
//
// 无保护带和有保护带两条计算路径都使用同一约定
// 分母为零时结果为 ±Inf 或 NaN，按原样向外传递而不做钳制:
// 这是保护带过宽或数据稀疏时的真实退化状态，调用方需要看到它
func ComputeMetrics(p PartitionSums) Metrics {
	return Metrics{
		BER:        float64(p.D1) / float64(p.Total()),
		Visibility: float64(p.C1+p.C2) / float64(p.D1),
	}
}

// Degenerate 判断指标中是否出现了非有限值 (Inf 或 NaN)
// 需要更严格接口的调用方可以用它检测退化结果
func (m Metrics) Degenerate() bool {
	return !isFinite(m.BER) || !isFinite(m.Visibility)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
