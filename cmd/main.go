package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"qber"
)

func main() {
	// 1. 解析命令行参数
	configFile := flag.String("config", "", "Optional YAML config file overriding defaults")
	sweep := flag.Bool("sweep", false, "Sweep guard-band width and report the optima")
	dumpFile := flag.String("dump", "", "Dump non-zero histogram bins to a CSV file")
	chartFile := flag.String("chart", "", "Render the histogram to a PNG file")
	flag.Parse()

	// 必须恰好一个位置参数: 输入 CSV 路径 (在任何文件 IO 之前检查)
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <timestamps.csv>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// 2. 加载配置
	cfg := qber.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = qber.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("Config load failed: %v", err)
		}
	}

	// 3. 组装系统
	system := qber.NewAnalysisSystem(cfg)
	if *sweep {
		system.EnableSweep()
	}
	if *dumpFile != "" {
		if err := system.EnableDump(*dumpFile); err != nil {
			log.Fatalf("Dump setup failed: %v", err)
		}
	}
	if *chartFile != "" {
		system.EnableChart(*chartFile)
	}

	// 4. 运行分析
	if err := system.Run(flag.Arg(0)); err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
}
