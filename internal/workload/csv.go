package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads rows of pid,arrival,burst[,priority]. A first row whose pid
// column is not a number is treated as a header. Blank lines are skipped.
func ParseCSV(r io.Reader) ([]Job, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && !isInt(row[0]) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("line %d: want 3 or 4 fields, got %d", i+1, len(row))
		}

		var j Job
		var perr error
		parse := func(s string) int64 {
			v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
			if err != nil && perr == nil {
				perr = fmt.Errorf("line %d: %w", i+1, err)
			}
			return v
		}
		j.PID = parse(row[0])
		j.Arrival = parse(row[1])
		j.Burst = parse(row[2])
		if len(row) == 4 {
			j.Priority = int(parse(row[3]))
		}
		if perr != nil {
			return nil, perr
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

func isInt(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}
