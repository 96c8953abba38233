package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"cloudeng.io/logging/ctxlog"

	"github.com/ChicagoDave/sunlight/internal/config"
	"github.com/ChicagoDave/sunlight/pkg/analytics"
	"github.com/ChicagoDave/sunlight/pkg/neighborhood"
	"github.com/ChicagoDave/sunlight/pkg/registry"
	"github.com/ChicagoDave/sunlight/pkg/spec"
	"github.com/ChicagoDave/sunlight/pkg/validation"
)

// setup resolves the configuration and attaches a logger to ctx.
func setup(ctx context.Context, env *environment) (context.Context, *config.Config, error) {
	cfg, err := config.Load(env.viper, *env.configFile)
	if err != nil {
		return ctx, nil, fmt.Errorf("loading config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	return ctxlog.Context(ctx, logger), cfg, nil
}

// loadAndValidate loads the descriptions and runs schema validation.
func loadAndValidate(projectPath string) ([]spec.Neighborhood, *validation.Report, error) {
	descs, err := spec.LoadPath(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading city data: %w", err)
	}
	return descs, validation.ValidateSchema(descs), nil
}

// loadCity builds a city from a valid project, printing the report if the
// project is invalid.
func loadCity(ctx context.Context, env *environment, projectPath string) (context.Context, *config.Config, *registry.City, error) {
	ctx, cfg, err := setup(ctx, env)
	if err != nil {
		return ctx, nil, nil, err
	}
	descs, report, err := loadAndValidate(projectPath)
	if err != nil {
		return ctx, nil, nil, err
	}
	if !report.Valid {
		printValidationReport(report)
		return ctx, nil, nil, fmt.Errorf("city data has validation errors")
	}
	city := registry.New(cfg.Sky())
	if err := city.Add(ctx, descs...); err != nil {
		return ctx, nil, nil, err
	}
	return ctx, cfg, city, nil
}

func runValidate(ctx context.Context, env *environment, projectPath string) error {
	if _, _, err := setup(ctx, env); err != nil {
		return err
	}
	_, report, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	printValidationReport(report)
	if !report.Valid {
		return fmt.Errorf("city data is invalid")
	}
	return nil
}

func runWindow(ctx context.Context, env *environment, projectPath, neighborhoodName, buildingName, floorArg string) error {
	floor, err := strconv.Atoi(floorArg)
	if err != nil {
		return fmt.Errorf("floor %q: must be an integer", floorArg)
	}
	ctx, _, city, err := loadCity(ctx, env, projectPath)
	if err != nil {
		return err
	}
	w, err := city.Query(ctx, neighborhoodName, buildingName, floor)
	if err != nil {
		return err
	}
	fmt.Println(w)
	return nil
}

// selectNeighborhoods returns the named neighborhoods, or all of them.
func selectNeighborhoods(city *registry.City, names []string) ([]*neighborhood.Neighborhood, error) {
	if len(names) == 0 {
		return city.Neighborhoods(), nil
	}
	out := make([]*neighborhood.Neighborhood, 0, len(names))
	for _, name := range names {
		n, err := city.Neighborhood(name)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func runReport(ctx context.Context, env *environment, projectPath string, names []string, asJSON bool) error {
	ctx, cfg, city, err := loadCity(ctx, env, projectPath)
	if err != nil {
		return err
	}
	ns, err := selectNeighborhoods(city, names)
	if err != nil {
		return err
	}

	summaries := make([]*analytics.Summary, 0, len(ns))
	combined := validation.NewReport()
	for _, n := range ns {
		s, report, err := analytics.Resolve(ctx, n, analytics.Options{Workers: cfg.Workers, MinHours: cfg.MinHours})
		if err != nil {
			return fmt.Errorf("%s: %w", n.Name, err)
		}
		summaries = append(summaries, s)
		combined.Merge(report)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"summaries":  summaries,
			"validation": combined,
		})
	}
	for _, s := range summaries {
		printSummary(s)
		fmt.Println()
	}
	if len(combined.Errors) > 0 || len(combined.Warnings) > 0 {
		printValidationReport(combined)
	}
	return nil
}

func runDump(ctx context.Context, env *environment, projectPath string, resolve bool) error {
	ctx, cfg, city, err := loadCity(ctx, env, projectPath)
	if err != nil {
		return err
	}
	if resolve {
		for _, n := range city.Neighborhoods() {
			if _, _, err := analytics.Resolve(ctx, n, analytics.Options{Workers: cfg.Workers}); err != nil {
				return fmt.Errorf("%s: %w", n.Name, err)
			}
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(spec.CityData{Neighborhoods: city.Dump()})
}
