// Package output provides utilities for formatting and displaying solver results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/resistor-divider/internal/solver"
	"github.com/iwvelando/resistor-divider/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable summary of the best pair followed by
// the candidate table.
func PrettyFormat(req solver.Request, res *solver.Result) {
	p := message.NewPrinter(language.English)
	best := res.Best

	fmt.Printf("--- Best %s divider for %s from %s ---\n",
		res.Series, format.Voltage(req.VoutTarget), format.Voltage(req.Vin))
	fmt.Printf("R1 = %s, R2 = %s\n", format.Resistance(best.R1), format.Resistance(best.R2))
	fmt.Printf("Vout = %s (error %s, %.3f%%)\n",
		format.Voltage(best.Vout), format.Voltage(best.AbsError), best.PercentError)
	fmt.Printf("Power: total %s (R1 %s, R2 %s), budget %s\n",
		format.Power(best.Power), format.Power(best.PowerR1), format.Power(best.PowerR2), format.Power(req.Pmax))
	_, _ = p.Printf("Searched %d pairs, %d within the power budget\n\n", res.SearchedPairs, res.FeasiblePairs)

	fmt.Printf("=== Candidates within one series step (%.2f%%) ===\n", res.StepTolerancePercent)
	printCandidateTable(res.Candidates)
}

// printCandidateTable renders a fixed-width table sized to its widest cells.
func printCandidateTable(list []solver.Candidate) {
	if len(list) == 0 {
		fmt.Println("(none)")
		return
	}

	headers := []string{"No", "R1", "R2", "Vout [V]", "Error [%]", "Power"}
	rows := make([][]string, len(list))
	for i, c := range list {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			format.Resistance(c.R1),
			format.Resistance(c.R2),
			fmt.Sprintf("%.4f", c.Vout),
			fmt.Sprintf("%.3f", c.PercentError),
			format.Power(c.Power),
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for j, cell := range row {
			if n := len([]rune(cell)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	printLine := func() {
		fmt.Print("+")
		for _, w := range widths {
			fmt.Print(strings.Repeat("-", w+2) + "+")
		}
		fmt.Println()
	}

	printLine()
	fmt.Print("|")
	for i, h := range headers {
		fmt.Printf(" %-*s |", widths[i], h)
	}
	fmt.Println()
	printLine()

	for _, row := range rows {
		fmt.Print("|")
		for j, cell := range row {
			fmt.Printf(" %*s |", widths[j], cell)
		}
		fmt.Println()
	}
	printLine()
}

// CsvFormat outputs the best pair and candidate list in comma-separated value
// format.
func CsvFormat(res *solver.Result) error {
	return writeCsv(os.Stdout, res)
}

func writeCsv(w io.Writer, res *solver.Result) error {
	cw := csv.NewWriter(w)

	header := []string{"rank", "r1_ohms", "r2_ohms", "vout_v", "error_v", "error_pct", "power_w", "power_r1_w", "power_r2_w"}
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.Write(csvRow("best", res.Best)); err != nil {
		return err
	}
	for i, c := range res.Candidates {
		if err := cw.Write(csvRow(strconv.Itoa(i+1), c)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(rank string, c solver.Candidate) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return []string{
		rank,
		f(c.R1),
		f(c.R2),
		f(c.Vout),
		f(c.AbsError),
		f(c.PercentError),
		f(c.Power),
		f(c.PowerR1),
		f(c.PowerR2),
	}
}
