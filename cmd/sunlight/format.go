package main

import (
	"fmt"
	"strings"

	"github.com/ChicagoDave/sunlight/pkg/analytics"
	"github.com/ChicagoDave/sunlight/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res validation.Result) {
	fmt.Printf("  [%s] %s\n", res.Level, res.Message)
	if res.Path != "" {
		fmt.Printf("    -> %s = %v\n", res.Path, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}

func printSummary(s *analytics.Summary) {
	title := fmt.Sprintf("Sunlight: %s (%d apartments, %.3fh day)", s.Neighborhood, s.Apartments, s.DayLengthHours)
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", len(title)))
	fmt.Println()

	fmt.Printf("%-14s %6s %10s %10s %7s %8s %8s\n",
		"Building", "Floor", "Start", "Stop", "Hours", "Left°", "Right°")
	fmt.Printf("%-14s %6s %10s %10s %7s %8s %8s\n",
		"--------------", "------", "----------", "----------", "-------", "--------", "--------")
	for _, b := range s.Buildings {
		for _, f := range b.Floors {
			if f.Err != "" {
				fmt.Printf("%-14s %6d %s\n", b.Name, f.Floor, f.Err)
				continue
			}
			fmt.Printf("%-14s %6d %10s %10s %7.2f %8.1f %8.1f\n",
				b.Name, f.Floor, f.Start, f.Stop, f.Hours, f.LeftCoverDeg, f.RightCoverDeg)
		}
	}

	fmt.Println()
	fmt.Println("Per building")
	fmt.Println("------------")
	for _, b := range s.Buildings {
		full := "none"
		if b.FirstFullFloor >= 0 {
			full = fmt.Sprintf("floor %d", b.FirstFullFloor)
		}
		fmt.Printf("  %-14s min %5.2fh  mean %5.2fh  max %5.2fh  full day from %s\n",
			b.Name, b.MinHours, b.MeanHours, b.MaxHours, full)
	}
	if s.Failed > 0 {
		fmt.Printf("  %d apartments could not be resolved\n", s.Failed)
	}
}
