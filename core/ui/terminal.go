// Package ui - Terminal output
// Colored status lines, aligned tables and the generation summary box.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer. Color is also disabled when out is not
// a terminal.
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor || !isTerminal(out),
		verbosity: 1,
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted text
func (w *Writer) Print(format string, args ...any) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line
func (w *Writer) Println(format string, args ...any) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
}

// Success prints a passing line
func (w *Writer) Success(format string, args ...any) {
	w.Println("%s%s", w.color(Green, "✓ "), fmt.Sprintf(format, args...))
}

// Warning prints an indented warning
func (w *Writer) Warning(format string, args ...any) {
	w.Println("    %s%s", w.color(Yellow, "warning: "), fmt.Sprintf(format, args...))
}

// Failure prints a failing line
func (w *Writer) Failure(format string, args ...any) {
	w.Println("%s%s", w.color(Red, "✗ "), fmt.Sprintf(format, args...))
}

// Error prints an indented error detail
func (w *Writer) Error(format string, args ...any) {
	w.Println("    %s%s", w.color(Red, "error:   "), fmt.Sprintf(format, args...))
}

// Info prints an informational line unless quiet
func (w *Writer) Info(format string, args ...any) {
	if w.verbosity < 1 {
		return
	}
	w.Println("%s", w.color(Blue, fmt.Sprintf(format, args...)))
}

// Debug prints only when verbose
func (w *Writer) Debug(format string, args ...any) {
	if w.verbosity < 2 {
		return
	}
	w.Println("%s", w.color(Dim, "  "+fmt.Sprintf(format, args...)))
}

// Table renders left-aligned columns
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{w: w, headers: headers, widths: widths}
}

// AddRow adds a row, padding or dropping cells to the header count
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of rows added
func (t *Table) Len() int {
	return len(t.rows)
}

// Render prints the table
func (t *Table) Render() {
	var format strings.Builder
	for i, width := range t.widths {
		if i > 0 {
			format.WriteString("  ")
		}
		if i == len(t.widths)-1 {
			format.WriteString("%s")
		} else {
			fmt.Fprintf(&format, "%%-%ds", width)
		}
	}
	format.WriteString("\n")

	t.w.Print("%s", t.w.color(Bold, fmt.Sprintf(format.String(), toArgs(t.headers)...)))
	for _, row := range t.rows {
		t.w.Print(format.String(), toArgs(row)...)
	}
}

func toArgs(cells []string) []any {
	args := make([]any, len(cells))
	for i, c := range cells {
		args[i] = c
	}
	return args
}

// SummaryLine is one file in a generation summary
type SummaryLine struct {
	Label string
	Rows  int
	Cost  string
}

// GenerationSummary renders the boxed summary printed after generation
type GenerationSummary struct {
	w *Writer

	Lines          []SummaryLine
	Files          int
	TotalRows      int
	AvgRowsPerFile int
	Providers      []string
	Seed           uint64
	Location       string
	Bytes          int64
	Duration       time.Duration
}

// NewGenerationSummary creates an empty summary
func (w *Writer) NewGenerationSummary() *GenerationSummary {
	return &GenerationSummary{w: w}
}

const summaryRule = "─────────────────────────────────────────────────────────────────────────"

// Render prints the summary
func (s *GenerationSummary) Render() {
	w := s.w
	w.Println("┌%s┐", summaryRule)
	w.Println("│%s│", w.color(Bold, fmt.Sprintf("%-73s", "                        FOCUS GENERATION SUMMARY")))
	w.Println("├%s┤", summaryRule)
	for _, l := range s.Lines {
		w.Println("│ %-44s %6d rows %15s │", truncate(l.Label, 44), l.Rows, l.Cost)
	}
	w.Println("├%s┤", summaryRule)
	w.Println("│ %-50s %20d │", "FILES", s.Files)
	w.Println("│ %-50s %20d │", "TOTAL ROWS", s.TotalRows)
	w.Println("│ %-50s %20d │", "AVERAGE ROWS PER FILE", s.AvgRowsPerFile)
	w.Println("│ %-50s %20s │", "PROVIDERS", truncate(strings.Join(s.Providers, ", "), 20))
	w.Println("└%s┘", summaryRule)

	w.Println("")
	w.Println("Seed: %d", s.Seed)
	w.Println("Written to %s (%d bytes) in %s", s.Location, s.Bytes, formatDuration(s.Duration))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}
