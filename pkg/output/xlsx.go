package output

import (
	"github.com/iwvelando/resistor-divider/internal/solver"
	"github.com/xuri/excelize/v2"
)

// SaveToXLSX writes the request summary, the best pair, and the full
// candidate table to an XLSX workbook.
func SaveToXLSX(filename string, req solver.Request, res *solver.Result) error {
	f := excelize.NewFile()

	summary := "Summary"
	f.SetSheetName("Sheet1", summary)

	summaryRows := [][]interface{}{
		{"Vin [V]", req.Vin},
		{"Vout target [V]", req.VoutTarget},
		{"Pmax [W]", req.Pmax},
		{"Series", res.Series},
		{"Searched pairs", res.SearchedPairs},
		{"Feasible pairs", res.FeasiblePairs},
		{"Step tolerance [%]", res.StepTolerancePercent},
		{"Best R1 [Ohm]", res.Best.R1},
		{"Best R2 [Ohm]", res.Best.R2},
		{"Best Vout [V]", res.Best.Vout},
		{"Best error [%]", res.Best.PercentError},
		{"Best power [W]", res.Best.Power},
	}
	for i, row := range summaryRows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(summary, cell, v); err != nil {
				return err
			}
		}
	}

	candidates := "Candidates"
	if _, err := f.NewSheet(candidates); err != nil {
		return err
	}
	headers := []string{"No", "R1 [Ohm]", "R2 [Ohm]", "Vout [V]", "Error [V]", "Error [%]", "Power [W]", "P(R1) [W]", "P(R2) [W]"}
	for j, h := range headers {
		cell, err := excelize.CoordinatesToCellName(j+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(candidates, cell, h); err != nil {
			return err
		}
	}
	for i, c := range res.Candidates {
		row := []interface{}{i + 1, c.R1, c.R2, c.Vout, c.AbsError, c.PercentError, c.Power, c.PowerR1, c.PowerR2}
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(candidates, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(filename)
}
