package qber

import "fmt"

// SweepResult 保护带扫描的结果
// 最低 BER 和最高可见度各自独立跟踪，二者的最优宽度通常并不相同
type SweepResult struct {
	BestBERGuard int     // BER 最低时的保护带宽度 (ps)
	BestBER      float64 // 对应的 BER
	BestVisGuard int     // 可见度最高时的保护带宽度 (ps)
	BestVis      float64 // 对应的可见度
}

// SweepGuardBand 在 [min, max] 区间 (含端点) 内按 step 递增扫描保护带宽度，
// 每个宽度在同一直方图和窗口上重新分区并计算指标
// 只有严格更优才替换当前最优，平局保留先出现的宽度
// 纯函数: 不修改直方图，重复调用结果完全一致
func SweepGuardBand(h *Histogram, start, width, min, max, step int) (SweepResult, error) {
	if step <= 0 {
		return SweepResult{}, fmt.Errorf("invalid sweep step %d", step)
	}
	if min > max {
		return SweepResult{}, fmt.Errorf("invalid sweep range [%d, %d]", min, max)
	}

	// 以第一个候选宽度初始化，后续只接受严格改善
	first := ComputeMetrics(Partition(h, start, width, min))
	result := SweepResult{
		BestBERGuard: min,
		BestBER:      first.BER,
		BestVisGuard: min,
		BestVis:      first.Visibility,
	}

	for g := min + step; g <= max; g += step {
		m := ComputeMetrics(Partition(h, start, width, g))

		if m.BER < result.BestBER {
			result.BestBER = m.BER
			result.BestBERGuard = g
		}
		if m.Visibility > result.BestVis {
			result.BestVis = m.Visibility
			result.BestVisGuard = g
		}
	}

	return result, nil
}
