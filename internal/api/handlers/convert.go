package handlers

import (
	"solar-analyzer/internal/analysis"
	"solar-analyzer/internal/analyzer"
	"solar-analyzer/internal/api/models"
	"solar-analyzer/internal/solar"
)

func buildResponse(result *analyzer.Result, opts models.AnalyzeOptions) models.AnalyzeResponse {
	resp := models.AnalyzeResponse{
		Status:      "completed",
		DroppedRows: result.DroppedRows,
		Curve: models.CurveInfo{
			CapacityKW: result.Curve.CapacityKW,
			TargetKWh:  result.Curve.TargetKWh,
			SigmaHours: result.Curve.Sigma,
			PeakKW:     result.Curve.CapacityKW * solar.PeakFactor,
		},
		Summary: models.Summary{
			Overall:  convertTotals(result.Summary.Overall),
			LastWeek: convertTotals(result.Summary.LastWeek),
		},
	}

	if opts.IncludeDays || opts.IncludeSeries {
		resp.Days = make([]models.DayRow, len(result.Days))
		offset := 0
		for i, d := range result.Days {
			row := convertDay(d)
			n := len(d.PowerDifference)
			if opts.IncludeSeries {
				row.ConsumptionKW = make([]float64, n)
				for j, s := range result.Samples[offset : offset+n] {
					row.ConsumptionKW[j] = s.Consumption
				}
				row.SolarKW = result.SolarKW[offset : offset+n]
				row.CumulativeBalance = d.CumulativeBalance
				row.Dispatch.DischargePowerKW = d.Dispatch.DischargePowerKW
				row.Dispatch.RemainingKWh = d.Dispatch.RemainingKWh
			}
			offset += n
			resp.Days[i] = row
		}
	}

	return resp
}

func convertDay(d analysis.DayRecord) models.DayRow {
	return models.DayRow{
		Date:                   d.Date.Format("2006-01-02"),
		ConsumptionKWh:         d.ConsumptionKWh,
		SolarKWh:               d.SolarKWh,
		ExcessKWh:              d.TotalExcessKWh,
		DeficitKWh:             d.TotalDeficitKWh,
		NetBalanceKWh:          d.NetBalanceKWh,
		MaxExcessKWh:           d.MaxExcessKWh,
		MaxDeficitKWh:          d.MaxDeficitKWh,
		BatterySizeNeededKWh:   d.BatterySizeNeededKWh,
		OptimalBatteryKWh:      d.OptimalBatteryKWh,
		SolarDirectUseKWh:      d.SolarDirectUseKWh,
		SolarToBatteryKWh:      d.SolarToBatteryKWh,
		EveningLoadKWh:         d.EveningLoadKWh,
		SolarAboveThresholdKWh: d.SolarAboveThresholdKWh,
		Dispatch: models.DispatchRow{
			AvailableKWh:          d.Dispatch.AvailableKWh,
			DischargeKWh:          d.Dispatch.DischargeKWh,
			LoadAboveThresholdKWh: d.Dispatch.LoadAboveThresholdKWh,
			EffectiveLoadKWh:      d.Dispatch.EffectiveLoadKWh,
		},
	}
}

func convertTotals(t analysis.Totals) models.Totals {
	return models.Totals{
		Days:                 t.Days,
		ConsumptionKWh:       t.ConsumptionKWh,
		SolarKWh:             t.SolarKWh,
		ExcessKWh:            t.ExcessKWh,
		DeficitKWh:           t.DeficitKWh,
		DischargeKWh:         t.DischargeKWh,
		AvgConsumptionKWh:    t.AvgConsumptionKWh,
		AvgSolarKWh:          t.AvgSolarKWh,
		AvgOptimalBatteryKWh: t.AvgOptimalBatteryKWh,
		AvgDischargeKWh:      t.AvgDischargeKWh,
	}
}
