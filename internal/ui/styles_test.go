package ui

import (
	"strings"
	"testing"
)

func TestFormatHeader(t *testing.T) {
	out := FormatHeader("TOUCHPADS", "display :0")
	if !strings.Contains(out, "TOUCHPADS") {
		t.Error("header must contain the title")
	}
	if !strings.Contains(out, "display :0") {
		t.Error("header must contain the subtitle")
	}

	out = FormatHeader("TOUCHPADS", "")
	if strings.Contains(out, "\n") {
		t.Error("header without subtitle must be a single line")
	}
}

func TestFormatEnabled(t *testing.T) {
	if !strings.Contains(FormatEnabled(true), "yes") {
		t.Error("expected yes marker")
	}
	if !strings.Contains(FormatEnabled(false), "no") {
		t.Error("expected no marker")
	}
}
