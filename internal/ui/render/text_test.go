package render

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean string unchanged", "Hello World", "Hello World"},
		{"unicode unchanged", "日本語 café", "日本語 café"},
		{"tab kept", "a\tb", "a\tb"},
		{"newline removed", "a\nb", "ab"},
		{"escape removed", "a\x1b[31mb", "a[31mb"},
		{"invalid byte removed", "a\xffb", "ab"},
		{"nbsp to space", "a\u00a0b", "a b"},
		{"C1 control removed", "a\u0085b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{"short string unchanged", "hello", 10, "hello"},
		{"exact fit unchanged", "hello", 5, "hello"},
		{"long string truncated", "hello world", 8, "hello w…"},
		{"zero width", "hello", 0, ""},
		{"wide characters", "日本語テキスト", 7, "日本語…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")
	got := TruncateStyled(styled, 6)
	if w := lipgloss.Width(got); w != 6 {
		t.Errorf("width = %d, want 6", w)
	}
	if TruncateStyled("abc", 0) != "" {
		t.Error("zero width should return empty string")
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad = %q, want %q", got, "ab   ")
	}
	if got := TruncateAndPad("hello world", 6); got != "hello…" {
		t.Errorf("TruncateAndPad = %q, want %q", got, "hello…")
	}
	if got := TruncateAndPad("hi", 4); got != "hi  " {
		t.Errorf("TruncateAndPad = %q, want %q", got, "hi  ")
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 4, "abc…"},
		{"", 2, "  "},
	}
	for _, tt := range tests {
		if got := Center(tt.in, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row with too little space = %q", got)
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(3); got != "   " {
		t.Errorf("EmptyLine(3) = %q", got)
	}
	if got := EmptyLine(-1); got != "" {
		t.Errorf("EmptyLine(-1) = %q", got)
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{59 * time.Second, "0:59"},
		{61*time.Second + 900*time.Millisecond, "1:01"},
		{10 * time.Minute, "10:00"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		if got := Duration(tt.d); got != tt.want {
			t.Errorf("Duration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
