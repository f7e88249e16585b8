package qber

import (
	"testing"
)

func TestFold_Idempotent(t *testing.T) {
	h := NewHistogram(32000)

	// 折叠结果再折叠一次应保持不变: fold(fold(t)) == fold(t)
	inputs := []float64{0, 1, 1500, 31999, 32000, 33500, 64001, 123456789}
	for _, ts := range inputs {
		once := h.Fold(ts)
		twice := h.Fold(float64(once))
		if once != twice {
			t.Errorf("Fold not idempotent for %v: first %d, second %d", ts, once, twice)
		}
	}
}

func TestFold_TruncatesBeforeModulo(t *testing.T) {
	h := NewHistogram(32000)

	// 1ps 以下的小数精度在取模之前被截断
	if got := h.Fold(1500.9); got != 1500 {
		t.Errorf("Fold(1500.9) = %d, want 1500", got)
	}
	if got := h.Fold(31999.999); got != 31999 {
		t.Errorf("Fold(31999.999) = %d, want 31999", got)
	}
}

func TestFold_NegativeTimestamp(t *testing.T) {
	h := NewHistogram(32000)

	// 负时间戳归一化到周期相位上，索引仍落在 [0, WindowSize)
	if got := h.Fold(-1); got != 31999 {
		t.Errorf("Fold(-1) = %d, want 31999", got)
	}
	if got := h.Fold(-32000); got != 0 {
		t.Errorf("Fold(-32000) = %d, want 0", got)
	}
	// -0.5 向零截断为 0
	if got := h.Fold(-0.5); got != 0 {
		t.Errorf("Fold(-0.5) = %d, want 0", got)
	}
}

func TestHistogram_TotalEqualsCount(t *testing.T) {
	// 不变量: 所有 bin 之和等于计入的时间戳个数
	timestamps := make([]float64, 0, 500)
	for i := 0; i < 500; i++ {
		timestamps = append(timestamps, float64(i*37)+0.25)
	}

	h := BuildHistogram(timestamps, 32000)
	if h.Total() != 500 {
		t.Errorf("Total = %d, want 500", h.Total())
	}
}

func TestHistogram_PeriodicFoldScenario(t *testing.T) {
	// 1500 和 33500 相差整一个 32ns 周期，折叠到同一个 bin
	h := BuildHistogram([]float64{1500, 33500}, 32000)

	if h.Bins[1500] != 2 {
		t.Errorf("Bins[1500] = %d, want 2", h.Bins[1500])
	}
	if h.Total() != 2 {
		t.Errorf("Total = %d, want 2 (all other bins must stay zero)", h.Total())
	}
}
