package qber

import (
	"fmt"
)

// AnalysisSystem 管理一次完整 BER / 可见度分析的生命周期
type AnalysisSystem struct {
	// 配置
	cfg *Config

	// 可选输出
	dumper    HistogramDebugger
	chartFile string
	sweepOn   bool

	// 结果 (Run 成功返回后有效)
	WindowStart int         // 选中窗口的起始相位 (ps)
	WindowSum   int         // 窗口内计数总和
	Raw         Metrics     // 无保护带
	Guarded     Metrics     // 默认保护带
	Sweep       SweepResult // 扫描开启时有效
}

// NewAnalysisSystem 创建系统实例
func NewAnalysisSystem(cfg *Config) *AnalysisSystem {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &AnalysisSystem{
		cfg:    cfg,
		dumper: &NoOpDumper{},
	}
}

// EnableDump 开启直方图 CSV 转储
func (s *AnalysisSystem) EnableDump(filename string) error {
	d, err := NewCsvHistogramDumper(filename)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %v", err)
	}
	s.dumper = d
	return nil
}

// EnableChart 开启直方图 PNG 渲染
func (s *AnalysisSystem) EnableChart(filename string) {
	s.chartFile = filename
}

// EnableSweep 开启保护带扫描
func (s *AnalysisSystem) EnableSweep() {
	s.sweepOn = true
}

// Run 对单个时间戳文件执行完整分析流程
// 机器可读的结果行写到标准输出，诊断信息带 [TAG] 前缀
func (s *AnalysisSystem) Run(filename string) error {
	defer s.dumper.Close()

	// 1. 读取时间戳
	reader, err := NewTimestampReader(filename)
	if err != nil {
		return err
	}
	timestamps := reader.ReadAll()
	reader.Close()

	// 2. 构建折叠直方图
	hist := BuildHistogram(timestamps, s.cfg.Histogram.WindowSize)
	fmt.Printf("[INGEST] %d timestamps folded into %d ps window\n", len(timestamps), hist.WindowSize)
	s.dumper.Dump(hist)

	// 3. 周期诊断
	if s.cfg.Monitor.Enabled {
		pa := NewPeriodAnalyzer(hist.WindowSize, s.cfg.Monitor.MinPeriod, s.cfg.Monitor.MaxPeriod)
		period, snr := pa.FindDominantPeriod(hist)
		if snr >= s.cfg.Monitor.RequiredSNR {
			fmt.Printf("[MONITOR] Dominant period: %.1f ps (SNR: %.1f)\n", period, snr)
		} else {
			fmt.Printf("[MONITOR] No clear pulse structure (best period: %.1f ps, SNR: %.1f)\n", period, snr)
		}
	}

	// 4. 定位最密集的分析窗口
	width := s.cfg.Histogram.SubWindow
	start, sum, err := LocateWindow(hist, width)
	if err != nil {
		return err
	}
	s.WindowStart = start
	s.WindowSum = sum
	fmt.Printf("[LOCATE] Window start: %d ps, counts: %d\n", start, sum)

	// 5. 分区并计算指标: 先无保护带，再用默认保护带
	s.Raw = ComputeMetrics(Partition(hist, start, width, 0))
	s.Guarded = ComputeMetrics(Partition(hist, start, width, s.cfg.GuardBand.Default))

	// 结果行: <group-label>,<BER1>,<V1>,<BER2>,<V2>
	fmt.Printf("%s,%.6f,%.6f,%.6f,%.6f\n",
		s.cfg.Report.GroupLabel,
		s.Raw.BER, s.Raw.Visibility,
		s.Guarded.BER, s.Guarded.Visibility)

	// 6. 可选: 保护带扫描
	if s.sweepOn {
		result, err := SweepGuardBand(hist, start, width,
			s.cfg.GuardBand.SweepMin, s.cfg.GuardBand.SweepMax, s.cfg.GuardBand.SweepStep)
		if err != nil {
			return err
		}
		s.Sweep = result
		fmt.Printf("Optimal guard band for min BER: %d ps (BER: %.6f)\n", result.BestBERGuard, result.BestBER)
		fmt.Printf("Optimal guard band for max visibility: %d ps (V: %.6f)\n", result.BestVisGuard, result.BestVis)
	}

	// 7. 可选: 渲染直方图
	if s.chartFile != "" {
		if err := RenderHistogramChart(hist, start, width, s.chartFile); err != nil {
			return err
		}
		fmt.Printf("[CHART] Histogram rendered to %s\n", s.chartFile)
	}

	return nil
}
