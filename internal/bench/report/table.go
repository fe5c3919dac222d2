package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	s := r.Suite
	fmt.Fprintf(tw, "\n=== Expression Suite: %s %s ===\n\n", s.Name, s.Version)
	fmt.Fprintf(tw, "Passed: %d  Failed: %d  Runs: %d  Warmup: %d\n\n", s.Passed, s.Failed, r.Config.Runs, r.Config.WarmupRuns)

	writeRow(tw, "Case", "Expression", "Expected", "Got", "p50", "p90", "Max", "Status")
	writeRow(tw, "---", "---", "---", "---", "---", "---", "---", "---")
	for _, c := range s.Cases {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		writeRow(tw,
			c.ID,
			c.Expression,
			c.Expected,
			c.Got,
			fmtDuration(c.Latency.P50()),
			fmtDuration(c.Latency.P90()),
			fmtDuration(c.Latency.Max),
			status,
		)
	}

	l := s.Latency
	fmt.Fprintf(tw, "\nLatency (all cases)\n\n")
	writeRow(tw, "Min", "p50", "p90", "p99", "Max", "Mean", "Stddev", "Samples")
	writeRow(tw, "---", "---", "---", "---", "---", "---", "---", "---")
	writeRow(tw,
		fmtDuration(l.Min),
		fmtDuration(l.P50()),
		fmtDuration(l.P90()),
		fmtDuration(l.P99()),
		fmtDuration(l.Max),
		fmtDuration(l.Mean),
		fmtDuration(l.Stddev),
		fmt.Sprintf("%d", l.SampleCount),
	)

	return tw.Flush()
}

func writeRow(w io.Writer, cols ...string) {
	fmt.Fprintln(w, strings.Join(cols, "\t"))
}

func fmtDuration(d time.Duration) string {
	switch {
	case d == 0:
		return "-"
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
