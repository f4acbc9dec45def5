package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidJob = errors.New("invalid job")

// LoadJobs reads rows of pid,arrival,burst[,priority]. Lines starting with #
// are comments and a leading non-numeric row is treated as a header.
func LoadJobs(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV: %v", ErrInvalidJob, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: row %d has %d fields, want 3 or 4", ErrInvalidJob, i+1, len(row))
		}
		values := make([]int, 4)
		for col, field := range row {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q is not a number", ErrInvalidJob, i+1, col+1, field)
			}
			values[col] = v
		}
		jobs = append(jobs, Job{
			ProcessId:   values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
			Priority:    values[3],
		})
	}
	return jobs, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}
