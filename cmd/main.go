// Command core-temp reads a per-core temperature log, interpolates every core
// linearly and writes one "<stem>-core-<k>.txt" file per core next to the
// input.
//
// Usage:
//
//	core-temp [flags] [file]
//
// Examples:
//
//	core-temp logs/run1.txt
//	core-temp -mode reshape -channels 4 -dt 30 logs/flat.txt
//	core-temp -csv -xlsx -out results/ logs/run1.txt
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"core-temp/controller"
	"core-temp/utils"
	"core-temp/views"
)

const defaultInput = "data/temps.txt"

func main() {
	// ── CLI flags ────────────────────────────────────────────────────
	configPath := flag.String("config", "", "optional path to core-temp.yaml")
	mode := flag.String("mode", "", "input layout: rows (one record per line) or reshape (flat stream)")
	channels := flag.Int("channels", 0, "number of cores per record")
	dt := flag.Float64("dt", 0, "time step between samples")
	dist := flag.String("distribution", "", "reshape split: round_robin, block or broadcast")
	outDir := flag.String("out", "", "output directory (default: next to the input file)")
	csvOut := flag.Bool("csv", false, "also write <stem>-interp.csv")
	xlsxOut := flag.Bool("xlsx", false, "also write <stem>-interp.xlsx")
	workers := flag.Int("workers", 0, "concurrent channel workers")
	logFile := flag.String("log", "", "optional log file path (stderr is always included)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: core-temp [flags] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Interpolates per-core temperature logs (default file %s).\n\n", defaultInput)
		flag.PrintDefaults()
	}
	flag.Parse()

	// ── Config: defaults < yaml < env < flags ────────────────────────
	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "core-temp: %v\n", err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Pipeline.Mode = *mode
		case "channels":
			cfg.Pipeline.Channels = *channels
		case "dt":
			cfg.Pipeline.TimeStep = *dt
		case "distribution":
			cfg.Pipeline.Distribution = *dist
		case "out":
			cfg.Output.Dir = *outDir
		case "csv":
			cfg.Output.CSV = *csvOut
		case "xlsx":
			cfg.Output.XLSX = *xlsxOut
		case "workers":
			cfg.Output.Workers = *workers
		case "log":
			cfg.Logging.File = *logFile
		case "v":
			if *verbose {
				cfg.Logging.Level = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "core-temp: %v\n", err)
		os.Exit(1)
	}

	// ── Logger ───────────────────────────────────────────────────────
	logger := utils.InitLogger(utils.ParseLogLevel(cfg.Logging.Level), cfg.Logging.File)
	defer logger.Close()

	// ── Input ────────────────────────────────────────────────────────
	input := defaultInput
	if flag.NArg() > 0 {
		input = flag.Arg(flag.NArg() - 1)
	}
	abs, err := filepath.Abs(input)
	if err != nil {
		utils.L().Fatal("resolve %s: %v", input, err)
	}
	fmt.Printf("Processing %s\n", abs)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Pipeline ─────────────────────────────────────────────────────
	p, err := controller.NewPipeline(cfg)
	if err != nil {
		utils.L().Fatal("init pipeline: %v", err)
	}
	res, err := p.Run(ctx, abs)
	if err != nil {
		utils.L().Fatal("%v", err)
	}
	p.Ingest.LogStats()

	fmt.Printf("Shape of original: %s\n", res.Original.Shape())
	fmt.Printf("Shape of interpolated: %s\n", res.Interpolated.Shape())
	if cfg.Pipeline.Mode == utils.ModeRows {
		fmt.Print(views.TemperatureSummary(res.Original))
	} else {
		fmt.Print(views.Describe(res.Original))
	}
	for _, f := range res.Files {
		fmt.Println("  wrote", f)
	}
}
