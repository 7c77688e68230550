// Command analyze runs a single context-space analysis from the command line
// and prints the summary, or the full analysis as JSON with -json. It never
// touches Kafka or an external provider; every tensor is synthesized.
//
// Usage:
//
//	go run ./cmd/analyze -region jakarta -scale city -year-offset 10
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hexsight/contextspace/internal/adapter/hexgrid"
	"github.com/hexsight/contextspace/internal/engine"
	"github.com/hexsight/contextspace/internal/observability"
)

func main() {
	region := flag.String("region", "", "region name to analyze (required)")
	scale := flag.String("scale", "city", "analysis scale: neighborhood, city, or region")
	scenario := flag.String("scenario", "", "climate scenario label (default "+engine.DefaultScenario+")")
	yearOffset := flag.Int("year-offset", 0, "years ahead of the current year (default 5)")
	asJSON := flag.Bool("json", false, "print the full analysis as JSON instead of the summary")
	flag.Parse()

	if *region == "" {
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	eng := engine.New(
		engine.Config{},
		hexgrid.New(),
		nil,
		nil,
		logger,
		observability.NewMetrics(),
	)

	result, err := eng.AnalyzeContextSpace(context.Background(), engine.Request{
		RegionName: *region,
		YearOffset: *yearOffset,
		Scenario:   *scenario,
		Scale:      *scale,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Analysis); err != nil {
			fmt.Fprintf(os.Stderr, "analyze: encode: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Println(result.Summary)
}
