package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"solar-analyzer/internal/analyzer"
	"solar-analyzer/internal/config"
	"solar-analyzer/internal/data"
	"solar-analyzer/internal/model"
	"solar-analyzer/internal/solar"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "solve":
		cmdSolve(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --data data/kw.csv --config config.yaml --out results/daily.csv")
	fmt.Println("  cli solve --capacity 3.0 --sun-hours 4.0")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze prints the per-day balance table and writes a daily CSV")
	fmt.Println("  - solve prints the fitted curve width for a capacity/sun-hours pair")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	dataPath := fs.String("data", "data/kw.csv", "Path to quarter-hour consumption CSV")
	cfgPath := fs.String("config", "", "Path to YAML config (optional, defaults apply)")
	outPath := fs.String("out", "results/daily.csv", "Output daily CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N rows (0=all)")
	_ = fs.Parse(args)

	rows, err := data.LoadCSV(*dataPath)
	if err != nil {
		fatal(err)
	}
	if *n > 0 && *n < len(rows) {
		rows = rows[:*n]
	}

	params := model.DefaultParams()
	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			fatal(err)
		}
		params = cfg.Analysis.ToParams()
	}

	res, err := analyzer.New().Run(rows, params)
	if err != nil {
		fatal(err)
	}

	if res.DroppedRows > 0 {
		fmt.Printf("dropped %d rows with unparseable timestamps\n", res.DroppedRows)
	}
	fmt.Printf("solved sigma=%.3f h, daily solar target %.1f kWh (peak %.0f kW)\n",
		res.Curve.Sigma, res.Curve.TargetKWh, res.Curve.CapacityKW*solar.PeakFactor)

	printDailyTable(res)
	printSummary(res)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal(err)
	}
	if err := analyzer.WriteDailyCSV(*outPath, res); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote %d day rows to %s\n", len(res.Days), *outPath)
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	capacity := fs.Float64("capacity", 3.0, "Array capacity in MWp")
	sunHours := fs.Float64("sun-hours", 4.0, "Average sun hours per day")
	_ = fs.Parse(args)

	params := model.DefaultParams()
	params.SolarCapacityMW = *capacity
	params.SunHours = *sunHours
	if err := params.Validate(); err != nil {
		fatal(err)
	}

	curve, err := solar.Synthesize(params)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("capacity   %.0f kW (peak %.0f kW)\n", curve.CapacityKW, curve.CapacityKW*solar.PeakFactor)
	fmt.Printf("target     %.1f kWh/day (ceiling %.1f kWh)\n", curve.TargetKWh, solar.MaxDailyEnergy(curve.CapacityKW))
	fmt.Printf("sigma      %.3f h\n", curve.Sigma)
	fmt.Printf("achieved   %.1f kWh/day\n", solar.DailyEnergy(curve.CapacityKW, curve.Sigma))
}

func printDailyTable(res *analyzer.Result) {
	fmt.Printf("%-12s %12s %12s %10s %10s %14s %14s\n",
		"date", "load(kWh)", "solar(kWh)", "excess", "deficit", "battery(kWh)", "evening(kWh)")
	for _, d := range res.Days {
		fmt.Printf("%-12s %12.0f %12.0f %10.0f %10.0f %14.0f %14.0f\n",
			d.Date.Format("2006-01-02"),
			d.ConsumptionKWh,
			d.SolarKWh,
			d.TotalExcessKWh,
			d.TotalDeficitKWh,
			d.OptimalBatteryKWh,
			d.Dispatch.DischargeKWh,
		)
	}
}

func printSummary(res *analyzer.Result) {
	o := res.Summary.Overall
	w := res.Summary.LastWeek
	fmt.Printf("\n%d days: load %.0f kWh, solar %.0f kWh, excess %.0f, deficit %.0f, discharge %.0f\n",
		o.Days, o.ConsumptionKWh, o.SolarKWh, o.ExcessKWh, o.DeficitKWh, o.DischargeKWh)
	fmt.Printf("last %d days: load avg %.0f kWh/day, solar avg %.0f kWh/day, battery avg %.0f kWh\n",
		w.Days, w.AvgConsumptionKWh, w.AvgSolarKWh, w.AvgOptimalBatteryKWh)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
