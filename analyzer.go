package qber

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// PeriodAnalyzer 对折叠直方图做频谱分析，估计脉冲结构的主周期
// 用于诊断数据是否真的具有预期的 1ns 时隙结构 (纯诊断，不影响指标)
type PeriodAnalyzer struct {
	WindowSize int
	MinPeriod  float64 // 周期搜索下限 (ps)
	MaxPeriod  float64 // 周期搜索上限 (ps)
	Window     []float64
}

// NewPeriodAnalyzer 创建实例并预计算汉宁窗
func NewPeriodAnalyzer(windowSize int, minPeriod, maxPeriod float64) *PeriodAnalyzer {
	// 汉宁窗公式: 0.5 * (1 - cos(2*PI*n / (N-1)))
	window := make([]float64, windowSize)
	for i := 0; i < windowSize; i++ {
		window[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(windowSize-1)))
	}

	return &PeriodAnalyzer{
		WindowSize: windowSize,
		MinPeriod:  minPeriod,
		MaxPeriod:  maxPeriod,
		Window:     window,
	}
}

// FindDominantPeriod 返回直方图中最强周期成分的周期 (ps) 和相对噪声基底的信噪比
// 没有可用峰值时返回 (0, 0)
func (pa *PeriodAnalyzer) FindDominantPeriod(h *Histogram) (float64, float64) {
	n := pa.WindowSize

	// 1. 去掉直流分量 (均值)，否则 0 频附近的泄漏会淹没真实峰值
	mean := float64(h.Total()) / float64(n)

	// 2. 加窗
	input := make([]complex128, n)
	for i := 0; i < n; i++ {
		input[i] = complex((float64(h.Bins[i])-mean)*pa.Window[i], 0)
	}

	// 3. FFT + 功率谱 (幅度的平方)
	spectrum := fft.FFT(input)
	power := make([]float64, n/2+1)
	for i := range power {
		mag := cmplx.Abs(spectrum[i])
		power[i] = mag * mag
	}

	// 4. 估算噪声基底 (Noise Floor)
	// 使用中位数 (Median) 来抵抗信号峰值的干扰
	sorted := make([]float64, len(power))
	copy(sorted, power)
	sort.Float64s(sorted)
	noiseFloor := sorted[len(sorted)/2]

	// 防止在完全平坦的直方图上 noiseFloor 为 0，导致除零错误
	if noiseFloor < 1e-9 {
		noiseFloor = 1e-9
	}

	// 5. 限定搜索范围
	// 周期 p 对应的谱线序号 k = N / p
	startIndex := int(float64(n) / pa.MaxPeriod)
	endIndex := int(float64(n)/pa.MinPeriod) + 1

	if startIndex < 1 {
		startIndex = 1
	}
	if endIndex > len(power) {
		endIndex = len(power)
	}

	maxMag := 0.0
	maxIndex := 0
	for i := startIndex; i < endIndex; i++ {
		if power[i] > maxMag {
			maxMag = power[i]
			maxIndex = i
		}
	}

	if maxIndex == 0 {
		return 0, 0
	}

	// 6. 抛物线插值，提高周期估计精度
	k := float64(maxIndex)
	if maxIndex > 0 && maxIndex < len(power)-1 {
		alpha := power[maxIndex-1]
		beta := power[maxIndex]
		gamma := power[maxIndex+1]
		denom := alpha - 2*beta + gamma
		if denom != 0 {
			k += 0.5 * (alpha - gamma) / denom
		}
	}

	period := float64(n) / k
	snr := maxMag / noiseFloor
	return period, snr
}
