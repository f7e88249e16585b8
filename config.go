package qber

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 结构体用于集中管理分析流程的所有可调参数
type Config struct {
	// --- 直方图 (Histogram) ---
	// 负责把原始时间戳折叠进一个周期窗口，并选出最密集的分析子窗口
	Histogram struct {
		WindowSize int // 折叠周期 (ps)。32000 对应器件激光脉冲周期 32ns，使相位与 bin 0 对齐
		SubWindow  int // 分析子窗口宽度 (ps)。3000 对应 3 个 1ns 时隙 (C1 / D1 / C2)
	}

	// --- 保护带 (GuardBand) ---
	// 1ns 时隙边缘附近的计数视为仪器时间抖动，排除在统计之外
	GuardBand struct {
		Default   int // 默认保护带宽度 (ps)，两侧各排除一半
		SweepMin  int // 扫描下限 (ps)
		SweepMax  int // 扫描上限 (ps)，含端点
		SweepStep int // 扫描步长 (ps)
	}

	// --- 周期诊断 (Monitor) ---
	// 对折叠直方图做频谱分析，确认数据确实具有预期的脉冲时隙结构
	Monitor struct {
		Enabled     bool    // 是否在分析前输出周期诊断 (纯诊断，不影响指标)
		MinPeriod   float64 // 周期搜索下限 (ps)，用于屏蔽高频噪声
		MaxPeriod   float64 // 周期搜索上限 (ps)，用于避开直流分量附近的泄漏
		RequiredSNR float64 // 认为存在明确脉冲结构所需的最小信噪比 (线性值)
	}

	// --- 输出 (Report) ---
	Report struct {
		GroupLabel string // 结果行开头的测量组标签
	}
}

// DefaultConfig 返回与测量装置匹配的默认配置
func DefaultConfig() *Config {
	cfg := &Config{}

	// --- 直方图 ---
	cfg.Histogram.WindowSize = 32000 // 32ns
	cfg.Histogram.SubWindow = 3000   // 3ns

	// --- 保护带 ---
	cfg.GuardBand.Default = 100
	cfg.GuardBand.SweepMin = 100
	cfg.GuardBand.SweepMax = 300
	cfg.GuardBand.SweepStep = 1

	// --- 周期诊断 ---
	cfg.Monitor.Enabled = true
	cfg.Monitor.MinPeriod = 500.0
	cfg.Monitor.MaxPeriod = 16000.0
	cfg.Monitor.RequiredSNR = 20.0

	// --- 输出 ---
	cfg.Report.GroupLabel = "grp1"

	return cfg
}

// LoadConfig 在默认配置之上叠加 YAML 文件中给出的字段
// 未出现在文件里的字段保持默认值
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	return cfg, nil
}
