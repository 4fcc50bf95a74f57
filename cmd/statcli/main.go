package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"statlab/adapters/ingest"
	"statlab/app"
	"statlab/domain/core"
	"statlab/domain/inference"
	"statlab/internal/distributions"
)

func main() {
	var (
		file    = flag.String("file", "", "CSV or Excel file to analyze")
		column  = flag.String("column", "", "column to analyze (default: sweep all)")
		success = flag.String("success", "", "success value for a proportion interval")
		level   = flag.Float64("level", inference.DefaultConfidenceLevel, "confidence level in (0,1)")
		asJSON  = flag.Bool("json", false, "emit JSON instead of text")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: statcli -file data.csv [-column name] [-success value] [-level 0.95]")
		os.Exit(2)
	}

	table, err := ingest.NewDataReader(*file).Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	service := app.NewAnalysisService(table, distributions.New(), 4)
	ctx := context.Background()

	if *column == "" {
		result, err := service.SweepColumns(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if *asJSON {
			emitJSON(result)
			return
		}
		for _, summary := range result.Summaries {
			fmt.Printf("== %s ==\n", summary.Column)
			if summary.Error != "" {
				fmt.Printf("analysis failed: %s\n\n", summary.Error)
				continue
			}
			fmt.Println(summary.Report)
			fmt.Println()
		}
		return
	}

	key := core.ColumnKey(*column)

	if *success != "" {
		interval, err := service.ProportionInterval(ctx, key, *success, *level)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if *asJSON {
			emitJSON(interval)
			return
		}
		fmt.Printf("Proportion CI (%.0f%%) for %s=%s: (%.4f, %.4f)\n",
			*level*100, key, *success, interval.Lower, interval.Upper)
		return
	}

	summary, err := service.DescribeColumn(ctx, key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *asJSON {
		emitJSON(summary)
		return
	}
	if summary.Error != "" {
		fmt.Fprintf(os.Stderr, "analysis failed: %s\n", summary.Error)
		os.Exit(1)
	}
	fmt.Println(summary.Report)
}

func emitJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
