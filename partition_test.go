package qber

import (
	"testing"
)

// 辅助函数: 构造所有 bin 都为 1 的直方图
func uniformHistogram(size int) *Histogram {
	h := NewHistogram(size)
	for i := range h.Bins {
		h.Bins[i] = 1
	}
	return h
}

func TestPartition_NoGuardEqualsWindowTotal(t *testing.T) {
	// 无保护带时 C1+D1+C2 等于窗口内所有 bin 之和
	h := NewHistogram(32000)
	for i := 0; i < 32000; i += 7 {
		h.Bins[i] = i % 13
	}

	start, width := 5000, 3000
	want := 0
	for i := start; i < start+width; i++ {
		want += h.Bins[i]
	}

	p := Partition(h, start, width, 0)
	if p.Total() != want {
		t.Errorf("Total = %d, want %d", p.Total(), want)
	}
}

func TestPartition_RemainderGoesToThirdPart(t *testing.T) {
	// 宽度 10 / 3 = 3: C1=[0,3), D1=[3,6), C2=[6,10) (余数 bin 归第三分区)
	h := NewHistogram(20)
	for i := 0; i < 10; i++ {
		h.Bins[i] = i + 1
	}

	p := Partition(h, 0, 10, 0)
	if p.C1 != 1+2+3 {
		t.Errorf("C1 = %d, want 6", p.C1)
	}
	if p.D1 != 4+5+6 {
		t.Errorf("D1 = %d, want 15", p.D1)
	}
	if p.C2 != 7+8+9+10 {
		t.Errorf("C2 = %d, want 34", p.C2)
	}
}

func TestPartition_GuardExcludesSlotEdges(t *testing.T) {
	// 全 1 直方图, 窗口 [3000, 6000), 保护带 100 -> 每侧排除 50ps
	// 每个 1ns 时隙剩 900 个 bin; 窗口最后一个 bin (相对时隙偏移 999)
	// 只受头部保护带约束，因此仍被计入 C2
	h := uniformHistogram(32000)

	p := Partition(h, 3000, 3000, 100)
	if p.C1 != 900 {
		t.Errorf("C1 = %d, want 900", p.C1)
	}
	if p.D1 != 900 {
		t.Errorf("D1 = %d, want 900", p.D1)
	}
	if p.C2 != 901 {
		t.Errorf("C2 = %d, want 901 (last window bin is only guarded on its leading edge)", p.C2)
	}
}

func TestPartition_AbsoluteZeroOverride(t *testing.T) {
	// 窗口从绝对索引 0 开始: bin 0 只排除时隙尾部的保护带，
	// 它位于时隙头部，因此被计入 C1
	h := uniformHistogram(32000)

	p := Partition(h, 0, 3000, 100)
	if p.C1 != 901 {
		t.Errorf("C1 = %d, want 901 (bin 0 has no leading neighbour to protect against)", p.C1)
	}
	if p.D1 != 900 {
		t.Errorf("D1 = %d, want 900", p.D1)
	}
	if p.C2 != 901 {
		t.Errorf("C2 = %d, want 901", p.C2)
	}
}

func TestPartition_ZeroGuardMatchesUnguarded(t *testing.T) {
	// g = 0 的结果与完全不加保护带逐 bin 一致
	h := NewHistogram(32000)
	for i := range h.Bins {
		h.Bins[i] = (i * 31) % 5
	}

	a := Partition(h, 4000, 3000, 0)
	b := Partition(h, 4000, 3000, 0)
	if a != b {
		t.Errorf("g=0 partitions differ: %+v vs %+v", a, b)
	}

	want := 0
	for i := 4000; i < 7000; i++ {
		want += h.Bins[i]
	}
	if a.Total() != want {
		t.Errorf("Total = %d, want %d", a.Total(), want)
	}
}

func TestPartition_MonotonicInGuardWidth(t *testing.T) {
	// 保护带加宽时计入的 bin 只减不增: 分区总和对 g 单调不增
	h := NewHistogram(32000)
	for i := range h.Bins {
		h.Bins[i] = (i*i + 3) % 7
	}

	start, width := 2500, 3000
	prev := Partition(h, start, width, 0).Total()
	for g := 2; g <= 400; g += 2 {
		cur := Partition(h, start, width, g).Total()
		if cur > prev {
			t.Fatalf("total increased from %d to %d at g=%d", prev, cur, g)
		}
		prev = cur
	}
}
