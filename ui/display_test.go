package ui

import (
	"errors"
	"strings"
	"testing"
)

type stringerVal struct{}

func (stringerVal) String() string { return "stringer" }

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "hello", want: "hello"},
		{name: "error", in: errors.New("boom"), want: "boom"},
		{name: "stringer", in: stringerVal{}, want: "stringer"},
		{name: "empty struct", in: struct{}{}, want: ""},
		{name: "json fallback", in: map[string]int{"n": 1}, want: `{"n":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Display(tt.in); got != tt.want {
				t.Fatalf("Display(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad(3); got != "   " {
		t.Fatalf("Pad(3) = %q", got)
	}
	if got := Pad(0); got != "" {
		t.Fatalf("Pad(0) = %q", got)
	}
	if got := Pad(-1); got != "" {
		t.Fatalf("Pad(-1) = %q", got)
	}
}

func TestFixedBlock(t *testing.T) {
	if got := FixedBlock("", "ab", 4); got != "ab  " {
		t.Fatalf("FixedBlock = %q", got)
	}
	if got := FixedBlock("pre", "ab", 4); got != "pre ab  " {
		t.Fatalf("FixedBlock = %q", got)
	}
	if got := FixedBlock("", "ab", 0); got != "" {
		t.Fatalf("FixedBlock = %q", got)
	}
	got := FixedBlock("", "abcdef", 4)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("overflow not truncated with ellipsis: %q", got)
	}
}
