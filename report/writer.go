package report

import (
	"strconv"

	"github.com/samber/lo"

	"super6/experiments/metrics"
	"super6/solver"
)

var header = []string{"lid", "mine", "theirs", "value_continue", "value_stop", "done_continue", "done_stop", "action"}

func record(r Row) []string {
	return []string{
		strconv.Itoa(r.State.Lid),
		strconv.Itoa(r.State.Mine),
		strconv.Itoa(r.State.Theirs),
		strconv.FormatFloat(r.ValueContinue, 'f', 6, 64),
		strconv.FormatFloat(r.ValueStop, 'f', 6, 64),
		strconv.FormatFloat(r.DoneContinue, 'f', 6, 64),
		strconv.FormatFloat(r.DoneStop, 'f', 6, 64),
		r.Recommended.String(),
	}
}

// WriteReport writes the report rows to report.csv.
func WriteReport(w *metrics.Writer, rows []Row) error {
	return w.WriteCSV("report.csv", header, lo.Map(rows, func(r Row, _ int) []string {
		return record(r)
	}))
}

// WriteStrategy writes the answer for every undecided state to strategy.csv.
func WriteStrategy(w *metrics.Writer, solution *solver.Solution) error {
	var rows [][]string
	for _, row := range solution.Tables().Space().DecisionStates() {
		for _, s := range row {
			rows = append(rows, record(Row{solution.Query(s)}))
		}
	}
	return w.WriteCSV("strategy.csv", header, rows)
}
