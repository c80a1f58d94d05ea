package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/novvoo/go-labreport/pkg/labreport"
)

func main() {
	var (
		inPath  = flag.String("in", "", "report record YAML file")
		outPath = flag.String("out", "", "output PDF file (default: <work order>.pdf)")
		strict  = flag.Bool("strict", false, "fail on characters not representable in WinAnsi")
		verify  = flag.Bool("verify", false, "validate the generated PDF with pdfcpu")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: labreport -in record.yaml [-out report.pdf]")
		os.Exit(2)
	}
	if *verbose {
		labreport.SetLogLevel(labreport.LogLevelDebug)
	}

	rec, err := loadRecord(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "labreport: %v\n", err)
		os.Exit(1)
	}

	// 采集端职责：补全缺失的标识符和页标识
	now := time.Now()
	if rec.WorkOrderID == "" {
		rec.WorkOrderID = labreport.NewWorkOrderID(now)
	}
	if rec.LabSampleID == "" {
		rec.LabSampleID = labreport.NewLabSampleID(now)
	}
	if rec.PageLabel == "" {
		rec.PageLabel = "1 of 1"
	}

	opts := []labreport.Option{labreport.WithVerification(*verify)}
	if *strict {
		opts = append(opts, labreport.WithEncodingPolicy(labreport.EncodingStrict))
	}

	out, err := labreport.Render(rec, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "labreport: render failed: %v\n", err)
		os.Exit(1)
	}

	name := *outPath
	if name == "" {
		name = rec.WorkOrderID + ".pdf"
	}
	if err := os.WriteFile(name, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "labreport: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(*inPath, "->", name)
}

// loadRecord 从 YAML 文件加载报告记录
func loadRecord(path string) (*labreport.ReportRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec labreport.ReportRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse record %s: %w", path, err)
	}
	return &rec, nil
}
