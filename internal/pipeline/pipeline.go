// Package pipeline turns a block of text into its ordered, non-empty,
// whitespace-trimmed lines.
//
// Split, Trim and Filter are pure and never modify their argument. Run
// composes them. Print is the only stage with a side effect.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gcstr/linefilter/internal/apperr"
	"github.com/gcstr/linefilter/internal/logger"
)

// Split breaks s on every "\n". An input with N newlines yields N+1 lines;
// the empty string yields a single empty line.
func Split(s string) []string {
	return strings.Split(s, "\n")
}

// Trim strips leading and trailing whitespace from each line. The result has
// the same length and order as lines.
func Trim(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimSpace(line)
	}
	return out
}

// Filter keeps the non-empty lines in their original order.
func Filter(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if len(line) > 0 {
			out = append(out, line)
		}
	}
	return out
}

// Run applies Split, Trim and Filter in sequence.
func Run(s string) []string {
	return Filter(Trim(Split(s)))
}

// RunContext is Run with a pipeline_run step logged to the context's logger.
func RunContext(ctx context.Context, s string) []string {
	split := Split(s)
	st := logger.StartStep(logger.FromContext(ctx), "pipeline_run", "text", "lines_in", len(split))
	out := Filter(Trim(split))
	st.OK(false, "lines_out", len(out), "dropped", len(split)-len(out))
	return out
}

// Print writes lines to w as a single quoted list followed by a newline,
// e.g. ["a" "b"]. An empty sequence prints [].
func Print(w io.Writer, lines []string) error {
	if _, err := fmt.Fprintf(w, "%q\n", lines); err != nil {
		return apperr.Wrap("pipeline.Print", apperr.External, err, "write output")
	}
	return nil
}
