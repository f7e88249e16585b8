package qber

import (
	"bufio"
	"fmt"
	"os"
)

// HistogramDebugger 定义直方图调试输出接口
// 分析流程只依赖这个接口，不依赖具体的文件操作
type HistogramDebugger interface {
	Dump(h *Histogram)
	Close()
}

// CsvHistogramDumper 是 HistogramDebugger 的具体实现
// 它封装了文件句柄，将所有非零 bin 以 "Bin,Count" 形式写入 CSV
type CsvHistogramDumper struct {
	file   *os.File
	writer *bufio.Writer
}

// NewCsvHistogramDumper 创建一个新的 CSV 转储器
func NewCsvHistogramDumper(filename string) (*CsvHistogramDumper, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	w := bufio.NewWriter(f)
	// 写入表头
	if _, err := w.WriteString("Bin,Count\n"); err != nil {
		f.Close()
		return nil, err
	}

	return &CsvHistogramDumper{
		file:   f,
		writer: w,
	}, nil
}

// Dump 写出直方图内容
// 只输出非零 bin，稀疏数据下文件更易读
func (d *CsvHistogramDumper) Dump(h *Histogram) {
	for i, c := range h.Bins {
		if c > 0 {
			fmt.Fprintf(d.writer, "%d,%d\n", i, c)
		}
	}
}

// Close 关闭文件并刷新缓冲区
func (d *CsvHistogramDumper) Close() {
	if d.writer != nil {
		d.writer.Flush()
	}
	if d.file != nil {
		d.file.Close()
	}
}

// NoOpDumper 是一个空实现，不开启调试输出时使用
// 这样可以避免在核心代码中写大量的 nil check
type NoOpDumper struct{}

func (d *NoOpDumper) Dump(h *Histogram) {}
func (d *NoOpDumper) Close()            {}
