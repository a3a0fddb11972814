// Package config 命令行工具的配置文件。
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"sparam/smith"
)

// Config 圆图绘制配置
type Config struct {
	Input  string  // Touchstone 文件
	Port   [2]int  // 绘制的参数 S(i, j), 从 1 开始
	Mode   string  // 显示方式
	Output string  // 圆图图片, 扩展名决定格式
	Report string  // HTML 报告, 为空不生成
	Record string  // JSON 快照, 为空不生成
	Width  float64 // 英寸
	Height float64 // 英寸
}

// Default 默认配置
func Default() Config {
	return Config{
		Port:   [2]int{1, 1},
		Mode:   string(smith.LineWithArrow),
		Output: "smith.png",
		Width:  6.5,
		Height: 5.5,
	}
}

// Load 读取 TOML 配置, 未给出的项保持默认值
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Validate 检查配置
func (c Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("config: no input file"))
	}
	if c.Port[0] < 1 || c.Port[1] < 1 {
		errs = append(errs, fmt.Errorf("config: invalid port S(%d,%d)", c.Port[0], c.Port[1]))
	}
	if c.Output == "" && c.Report == "" && c.Record == "" {
		errs = append(errs, errors.New("config: nothing to output"))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid size %gx%g", c.Width, c.Height))
	}
	return errors.Join(errs...)
}

// DisplayMode 显示方式
func (c Config) DisplayMode() smith.Mode { return smith.Mode(c.Mode) }
