package batch

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Result statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result records the outcome for one input file.
type Result struct {
	JobID    string        `json:"job_id" yaml:"job_id"`
	File     string        `json:"file" yaml:"file"`
	Status   string        `json:"status" yaml:"status"`
	Output   string        `json:"output,omitempty" yaml:"output,omitempty"`
	Headings int           `json:"headings" yaml:"headings"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Elapsed  time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Report summarizes a batch run.
type Report struct {
	Total     int           `json:"total" yaml:"total"`
	Succeeded int           `json:"succeeded" yaml:"succeeded"`
	Failed    int           `json:"failed" yaml:"failed"`
	Elapsed   time.Duration `json:"elapsed" yaml:"elapsed"`
	Results   []Result      `json:"results" yaml:"results"`
}

// buildReport aggregates per-file results into a report. Results are
// ordered by file name so the report is deterministic regardless of
// worker scheduling.
func buildReport(results []Result, elapsed time.Duration) Report {
	sort.Slice(results, func(i, j int) bool {
		return results[i].File < results[j].File
	})

	report := Report{
		Total:   len(results),
		Elapsed: elapsed,
		Results: results,
	}
	for _, r := range results {
		if r.Status == StatusSuccess {
			report.Succeeded++
		} else {
			report.Failed++
		}
	}
	return report
}

// Render serializes the report in the requested format ("json" or
// "yaml").
func (r Report) Render(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(r, "", "  ")
	case "yaml":
		return yaml.Marshal(r)
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}
