package qber

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// TimestampReader 简单的时间戳 CSV 读取器
// 文件格式: 第一行为表头 (内容任意，无条件丢弃)，
// 之后每行至少两个逗号分隔的数值字段，
// 第一个字段为皮秒时间戳，第二个字段读取后丢弃
type TimestampReader struct {
	file    *os.File
	scanner *bufio.Scanner
}

// NewTimestampReader 打开文件并定位到第一个数据行
func NewTimestampReader(filename string) (*TimestampReader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %v", filename, err)
	}

	scanner := bufio.NewScanner(f)

	// 跳过表头。空文件时后续 ReadAll 自然返回空
	scanner.Scan()

	return &TimestampReader{
		file:    f,
		scanner: scanner,
	}, nil
}

// ReadAll 读取所有合法数据行的时间戳
// 遇到第一个无法解析为两个数值字段的行 (包括文件结束) 即停止，
// 不视为错误: 按数据结束处理
func (r *TimestampReader) ReadAll() []float64 {
	var timestamps []float64
	for r.scanner.Scan() {
		t, ok := parseRow(r.scanner.Text())
		if !ok {
			break
		}
		timestamps = append(timestamps, t)
	}
	return timestamps
}

// parseRow 解析 "timestamp,value" 形式的一行
// 前两个字段都必须是合法浮点数，只保留第一个
func parseRow(line string) (float64, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return 0, false
	}

	t, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return 0, false
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64); err != nil {
		return 0, false
	}

	return t, true
}

// Close 关闭底层文件
func (r *TimestampReader) Close() error {
	return r.file.Close()
}
