package qber

// Histogram 在一个周期窗口内按皮秒统计光子到达次数
// 索引为窗口内的相位偏移 (ps)，值为落入该相位的时间戳个数
// 每次运行只构建一次，之后各分析阶段只读
type Histogram struct {
	WindowSize int
	Bins       []int
}

// NewHistogram 创建所有 bin 为零的直方图
func NewHistogram(windowSize int) *Histogram {
	return &Histogram{
		WindowSize: windowSize,
		Bins:       make([]int, windowSize),
	}
}

// Fold 将时间戳折叠为周期窗口内的相位索引
// 先向零截断 (丢弃 1ps 以下的小数精度)，再取模归入 [0, WindowSize)
// 负时间戳同样落到它的周期相位上
func (h *Histogram) Fold(t float64) int {
	idx := int(t) % h.WindowSize
	if idx < 0 {
		idx += h.WindowSize
	}
	return idx
}

// Add 将单个时间戳计入对应的 bin
func (h *Histogram) Add(t float64) {
	h.Bins[h.Fold(t)]++
}

// Total 返回所有 bin 的计数总和
// 不变量: 等于成功解析的数据行数
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Bins {
		total += c
	}
	return total
}

// BuildHistogram 将一组时间戳折叠进一个新的直方图
func BuildHistogram(timestamps []float64, windowSize int) *Histogram {
	h := NewHistogram(windowSize)
	for _, t := range timestamps {
		h.Add(t)
	}
	return h
}
