// SPDX-License-Identifier: MIT

package harness

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
)

// AllEqual reports whether every parallel output matched the serial one.
func (r *Report) AllEqual() bool {
	return lo.EveryBy(r.Trials, func(t Trial) bool { return t.Equal })
}

// Err returns ErrMismatch (naming the failing thread counts) when a parallel
// output differs from the serial output, nil otherwise.
func (r *Report) Err() error {
	if r.AllEqual() {
		return nil
	}
	bad := lo.FilterMap(r.Trials, func(t Trial, _ int) (int, bool) { return t.Threads, !t.Equal })

	return fmt.Errorf("%s: threads %v: %w", r.Name, bad, ErrMismatch)
}

// Write prints the report as a table.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", r.Name)
	fmt.Fprintf(tw, "host\t%s\n", strings.Join(HostFeatures(), " "))
	fmt.Fprintf(tw, "serial\t%.6f s\n", r.Serial.Seconds())
	fmt.Fprintln(tw, "threads\ttime (s)\tspeedup\tefficiency\tequal")

	rows := lo.Map(r.Trials, func(t Trial, _ int) string {
		status := "OK"
		if !t.Equal {
			status = "ERROR"
		}
		return fmt.Sprintf("%d\t%.6f\t%.3f\t%.3f\t%s", t.Threads, t.Elapsed.Seconds(), t.Speedup, t.Efficiency, status)
	})
	for _, row := range rows {
		fmt.Fprintln(tw, row)
	}

	return tw.Flush()
}
