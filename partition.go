package qber

// PartitionSums 窗口三等分后各分区的计数和
// D1 是中间的信号时隙，C1 / C2 是两侧的背景时隙
type PartitionSums struct {
	C1 int
	D1 int
	C2 int
}

// Total 返回三个分区的计数总和
func (p PartitionSums) Total() int {
	return p.C1 + p.D1 + p.C2
}

// Partition 将窗口 [start, start+width) 均分为三个连续分区并分别求和
// 分区宽度为 width/3 (整除)，除不尽的余数 bin 归入第三个分区
//
// guardBand > 0 时排除时隙边缘的 bin: 取 bin 在其 1ns 时隙内的
// 偏移 (绝对索引对时隙宽度取模)，落在头部或尾部 guardBand/2 皮秒内
// 的 bin 不计入任何分区，避免把仪器时间抖动当作信号
//
// 边界特例 (在通用规则之前判断，数据集边缘不做双重防护):
//   - 直方图绝对索引 0 的 bin 只排除时隙尾部的保护带 (它左侧没有邻居)
//   - 窗口最后一个 bin 只排除时隙头部的保护带
func Partition(h *Histogram, start, width, guardBand int) PartitionSums {
	slotWidth := width / 3
	halfGuard := guardBand / 2
	last := start + width - 1

	var sums PartitionSums
	for i := start; i <= last; i++ {
		if halfGuard > 0 && slotWidth > 0 {
			pos := i % slotWidth
			if i == 0 {
				if pos >= slotWidth-halfGuard {
					continue
				}
			} else if i == last {
				if pos < halfGuard {
					continue
				}
			} else if pos < halfGuard || pos >= slotWidth-halfGuard {
				continue
			}
		}

		// 分区归属: 前 1/3 -> C1，中 1/3 -> D1，其余 (含余数) -> C2
		offset := i - start
		switch {
		case offset < slotWidth:
			sums.C1 += h.Bins[i]
		case offset < 2*slotWidth:
			sums.D1 += h.Bins[i]
		default:
			sums.C2 += h.Bins[i]
		}
	}

	return sums
}
