package qber

import "fmt"

// LocateWindow 在直方图上滑动宽度为 width 的窗口，返回计数总和最大的起点及其总和
// 滚动和更新: 右边界每前进一格，减去离开窗口的 bin，加上进入的 bin，
// 单次线性扫描，O(S) 时间，除直方图外 O(1) 额外空间
// 平局时保留最早出现的最大值 (只有严格更大才替换)
// 注意: 窗口不跨越直方图末尾回绕。相位本身是周期性的，
// 如果最密集区域恰好横跨边界会被漏掉，这里沿用线性搜索的简化
func LocateWindow(h *Histogram, width int) (int, int, error) {
	if width <= 0 || width > h.WindowSize {
		return 0, 0, fmt.Errorf("invalid window width %d for histogram size %d", width, h.WindowSize)
	}

	// 1. 初始候选窗口 [0, width)
	sum := 0
	for i := 0; i < width; i++ {
		sum += h.Bins[i]
	}
	bestStart := 0
	bestSum := sum

	// 2. 右边界逐格前进
	for i := width; i < h.WindowSize; i++ {
		sum += h.Bins[i] - h.Bins[i-width]
		if sum > bestSum {
			bestSum = sum
			bestStart = i - width + 1
		}
	}

	return bestStart, bestSum, nil
}
