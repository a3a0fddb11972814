package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gonum.org/v1/plot/vg"

	"sparam"
	"sparam/config"
	"sparam/report"
	"sparam/touchstone"
)

func main() {
	cfg := config.Default()
	var (
		file   = flag.String("config", "", "TOML 配置文件")
		input  = flag.String("in", "", "Touchstone 文件 (.sNp)")
		i      = flag.Int("i", 0, "响应端口")
		j      = flag.Int("j", 0, "激励端口")
		mode   = flag.String("mode", "", "显示方式: points_and_arrows, line_with_arrow, points_only")
		output = flag.String("o", "", "圆图输出文件 (.png, .svg, .pdf)")
		html   = flag.String("report", "", "HTML 报告输出文件")
		record = flag.String("record", "", "JSON 快照输出文件")
	)
	flag.Parse()
	if *file != "" {
		var err error
		if cfg, err = config.Load(*file); err != nil {
			log.Fatal(err)
		}
	}
	// 命令行参数覆盖配置文件
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in":
			cfg.Input = *input
		case "i":
			cfg.Port[0] = *i
		case "j":
			cfg.Port[1] = *j
		case "mode":
			cfg.Mode = *mode
		case "o":
			cfg.Output = *output
		case "report":
			cfg.Report = *html
		case "record":
			cfg.Record = *record
		}
	})
	if cfg.Input == "" && flag.NArg() > 0 {
		cfg.Input = flag.Arg(0)
	}
	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	net, err := sparam.Load(cfg.Input)
	if err != nil {
		return err
	}
	if cfg.Output != "" {
		chart, err := sparam.SmithChart(net, cfg.Port[0], cfg.Port[1], cfg.DisplayMode())
		if err != nil {
			return err
		}
		w, h := vg.Length(cfg.Width)*vg.Inch, vg.Length(cfg.Height)*vg.Inch
		if err := chart.Save(w, h, cfg.Output); err != nil {
			return err
		}
		log.Printf("圆图已保存: %s (%s)", cfg.Output, chart.Mode)
	}
	if cfg.Report != "" {
		c := report.NewCharts(net, cfg.Input)
		c.Port = cfg.Port
		if err := create(cfg.Report, c.Render); err != nil {
			return err
		}
		log.Printf("报告已保存: %s", cfg.Report)
	}
	if cfg.Record != "" {
		if err := create(cfg.Record, newRecord(net).Render); err != nil {
			return err
		}
		log.Printf("快照已保存: %s", cfg.Record)
	}
	return nil
}

func newRecord(net *touchstone.Network) *report.Record {
	rec := &report.Record{}
	rec.Init(net)
	return rec
}

func create(path string, render func(w io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if err := render(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
