package debug

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// maxBodyLen caps how much response text a single report prints.
const maxBodyLen = 512

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

type ConsoleReporter struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleReporter)

func NewConsoleReporter(opts ...ConsoleOption) *ConsoleReporter {
	r := &ConsoleReporter{
		writer: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleReporter) {
		r.noColor = nc
	}
}

func (r *ConsoleReporter) Report(rep Report) {
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(r.writer, "%s %s %s %s\n", red("request error"), bold(rep.Method), rep.URL, cyan(rep.ID))
	if rep.Status > 0 {
		fmt.Fprintf(r.writer, "  status: %d\n", rep.Status)
	}
	if rep.Body != "" {
		fmt.Fprintf(r.writer, "  body: %s\n", truncate(rep.Body, maxBodyLen))
	}
	fmt.Fprintf(r.writer, "  %s\n", rep.Message)
}
