package main

import (
	"flag"
	"fmt"

	"solar-analyzer/internal/analyzer"
	"solar-analyzer/internal/model"
)

// Demo:
// - Synthesize two days of constant 2000 kW load at quarter-hour steps
// - Run the full pipeline with the default configuration
// - Print the per-day records to show how the pieces fit together
func main() {
	loadKW := flag.Float64("load", 2000, "Constant load in kW")
	days := flag.Int("days", 2, "Number of synthetic days")
	flag.Parse()

	rows := make([]model.RawRow, 0, *days*96)
	for d := 0; d < *days; d++ {
		for q := 0; q < 96; q++ {
			h, m := q/4, (q%4)*15
			rows = append(rows, model.RawRow{
				Timestamp: fmt.Sprintf("%02d/01/2024 %02d.%02d", d+1, h, m),
				RateA:     fmt.Sprintf("%.1f", *loadKW),
			})
		}
	}

	res, err := analyzer.New().Run(rows, model.DefaultParams())
	if err != nil {
		panic(err)
	}

	fmt.Printf("sigma=%.3f h, target %.1f kWh/day\n\n", res.Curve.Sigma, res.Curve.TargetKWh)
	for _, d := range res.Days {
		fmt.Printf("%s  load %.0f kWh  solar %.0f kWh  excess %.0f  deficit %.0f  battery %.0f kWh  evening discharge %.0f kWh\n",
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
