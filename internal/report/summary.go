package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"ticksched/internal/sched"
)

// WriteSummaryJSON writes the summary as indented JSON.
func WriteSummaryJSON(w io.Writer, sum sched.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(sum)
}

// WriteSummaryTable renders per-process metrics with averages in the footer.
func WriteSummaryTable(w io.Writer, sum sched.Summary) error {
	if _, err := fmt.Fprintf(w, "%s: %d processes, %d ticks, %d context switches, %.1f%% utilization\n",
		sum.Algorithm, sum.Injected, sum.Ticks, sum.ContextSwitches, sum.Utilization*100); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Priority", "Burst", "Arrival", "Start", "Finish", "Wait", "Turnaround", "Response"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	rows := make([][]string, 0, len(sum.Processes))
	for _, p := range sum.Processes {
		rows = append(rows, []string{
			fmt.Sprint(p.PID),
			strconv.Itoa(p.Priority),
			strconv.FormatInt(p.Burst, 10),
			strconv.FormatInt(p.Arrival, 10),
			strconv.FormatInt(p.Start, 10),
			strconv.FormatInt(p.Finish, 10),
			strconv.FormatInt(p.Waiting, 10),
			strconv.FormatInt(p.Turnaround, 10),
			strconv.FormatInt(p.Response, 10),
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "Average",
		fmt.Sprintf("%.2f", sum.Averages.Waiting),
		fmt.Sprintf("%.2f", sum.Averages.Turnaround),
		fmt.Sprintf("%.2f", sum.Averages.Response)})
	table.Render()
	return nil
}

// WriteComparison tabulates several runs of the same workload side by side.
func WriteComparison(w io.Writer, sums []sched.Summary) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Ticks", "Switches", "Utilization", "Throughput", "Avg Wait", "Avg Turnaround", "Avg Response"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, s := range sums {
		table.Append([]string{
			s.Algorithm,
			strconv.FormatInt(s.Ticks, 10),
			strconv.FormatInt(s.ContextSwitches, 10),
			fmt.Sprintf("%.1f%%", s.Utilization*100),
			fmt.Sprintf("%.3f/t", s.Throughput),
			fmt.Sprintf("%.2f", s.Averages.Waiting),
			fmt.Sprintf("%.2f", s.Averages.Turnaround),
			fmt.Sprintf("%.2f", s.Averages.Response),
		})
	}
	table.Render()
	return nil
}
