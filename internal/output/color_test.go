package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "", want: ColorAuto},
		{input: "auto", want: ColorAuto},
		{input: "always", want: ColorAlways},
		{input: "never", want: ColorNever},
		{input: "sometimes", wantErr: true},
		{input: "NEVER", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColorMode(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseColorMode(%q) should fail", tt.input)
				}
				if GetExitCode(err) != ExitIssues {
					t.Errorf("exit code = %d, want %d", GetExitCode(err), ExitIssues)
				}
				if !strings.Contains(err.Error(), tt.input) {
					t.Errorf("error should name the value: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColorMode(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColorMode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		name      string
		colorMode string
		isTTY     bool
		want      bool
	}{
		{name: "never disables on TTY", colorMode: ColorNever, isTTY: true, want: false},
		{name: "always enables on non-TTY", colorMode: ColorAlways, isTTY: false, want: true},
		{name: "auto follows TTY", colorMode: ColorAuto, isTTY: true, want: true},
		{name: "auto follows non-TTY", colorMode: ColorAuto, isTTY: false, want: false},
		{name: "empty string defaults to auto", colorMode: "", isTTY: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveColorMode(tt.colorMode, tt.isTTY)
			if got != tt.want {
				t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.colorMode, tt.isTTY, got, tt.want)
			}
		})
	}
}

func TestIsTTY_Buffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTTY(&buf) {
		t.Error("IsTTY(buffer) should return false")
	}
}

func TestResolveColorMode_NeverNoANSI(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ResolveColorMode(ColorNever, true))

	printer.Error(NewUserError("test error"))
	printer.Status(StatusFail, "docs/OVERVIEW.MD", "is missing")
	printer.Banner(false, "1 issue found:")

	if out := buf.String(); strings.Contains(out, "\033[") {
		t.Errorf("--color never should produce no ANSI codes, got: %q", out)
	}
	empty := lipgloss.NewStyle()
	if printer.styles.Error.GetForeground() != empty.GetForeground() {
		t.Error("Error style should have no foreground color when color=never")
	}
}
