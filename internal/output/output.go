package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the outcome of a single rendered check line.
type Status string

// Check outcomes shared by every report renderer.
const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
	StatusInfo Status = "info"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Accent  lipgloss.Style
	Border  lipgloss.Color
}

// NewPrinter creates a new Printer.
// If jsonMode is true, WriteJSON is the only structured output.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := &Styles{}
	if isTTY {
		styles = &Styles{
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
			Bold:    lipgloss.NewStyle().Bold(true),
			Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
			Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),            // Cyan
			Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),            // Magenta
			Border:  lipgloss.Color("8"),
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode, errors still go to the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer output is styled.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Styles exposes the printer's styles to command renderers.
func (p *Printer) Styles() *Styles {
	return p.styles
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to stdout.
// For human mode, outputs a styled error message to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitIssues, Message: err.Error()}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning message to the error writer. No-op in JSON mode.
func (p *Printer) Warn(format string, args ...any) {
	if p.json {
		return
	}
	msg := fmt.Sprintf(format, args...)
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes data as indented JSON.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	result, _ := json.Marshal(data)
	return result
}

// Heading renders a bold title line surrounded by blank lines.
func (p *Printer) Heading(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	mustWrite(fmt.Fprintln(p.w))
}

// Section renders a section header with underline.
// Adds a blank line before the header.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	underline := strings.Repeat("─", len(title))
	mustWrite(fmt.Fprintln(p.w, p.styles.Dim.Render(underline)))
}

// Status renders one check line: "  ok  label message".
func (p *Printer) Status(status Status, label, message string) {
	icon := p.StatusIcon(status)
	if message == "" {
		mustWrite(fmt.Fprintf(p.w, "  %s  %s\n", icon, label))
		return
	}
	mustWrite(fmt.Fprintf(p.w, "  %s  %s %s\n", icon, label, p.styles.Dim.Render(message)))
}

// Hint renders an indented remediation hint under a check line.
func (p *Printer) Hint(hint string) {
	mustWrite(fmt.Fprintf(p.w, "      %s %s\n", p.styles.Dim.Render("->"), hint))
}

// StatusIcon returns the styled icon for a status.
func (p *Printer) StatusIcon(status Status) string {
	switch status {
	case StatusPass:
		return p.styles.Success.Render("ok")
	case StatusWarn:
		return p.styles.Warning.Render("!!")
	case StatusFail:
		return p.styles.Error.Render("XX")
	case StatusInfo:
		return p.styles.Key.Render("..")
	default:
		return "??"
	}
}

// Banner renders a final success or failure line.
func (p *Printer) Banner(ok bool, message string) {
	style := p.styles.Success.Bold(true)
	if !ok {
		style = p.styles.Error
	}
	mustWrite(fmt.Fprintln(p.w, style.Render(message)))
}

// Numbered renders items as a 1-based list.
func (p *Printer) Numbered(items []string) {
	for i, item := range items {
		mustWrite(fmt.Fprintf(p.w, "  %s %s\n", p.styles.Error.Render(fmt.Sprintf("%d.", i+1)), item))
	}
}

// Bullets renders dimmed bullet lines under an accent title.
func (p *Printer) Bullets(title string, items []string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Warning.Render(title)))
	for _, item := range items {
		mustWrite(fmt.Fprintf(p.w, "  %s %s\n", p.styles.Dim.Render("•"), p.styles.Dim.Render(item)))
	}
}

// KeyValue renders a key-value pair with styles applied.
// Format: "Key: Value"
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
