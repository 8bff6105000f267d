package worker

import (
	"strings"
	"testing"
	"time"
)

func TestProgressSummary(t *testing.T) {
	p := NewProgress(10, false)
	p.Update(10, 10, 0)

	summary := p.Summary()
	if !strings.Contains(summary, "10 frames") {
		t.Errorf("summary %q missing frame count", summary)
	}
}

func TestProgressSummaryWithFailures(t *testing.T) {
	p := NewProgress(5, false)
	p.Update(5, 5, 2)

	summary := p.Summary()
	if !strings.Contains(summary, "3/5") || !strings.Contains(summary, "2 failed") {
		t.Errorf("summary %q missing failure info", summary)
	}
}

func TestProgressDisabledDoesNotPrint(t *testing.T) {
	var buf strings.Builder
	p := NewProgress(3, false)
	p.output = &buf

	p.Update(1, 3, 0)
	p.Done()

	if buf.Len() != 0 {
		t.Errorf("disabled progress wrote output: %q", buf.String())
	}
}

func TestProgressPrintContents(t *testing.T) {
	var buf strings.Builder
	p := NewProgress(4, true)
	p.output = &buf

	p.Update(2, 4, 1)

	out := buf.String()
	if !strings.Contains(out, "2/4 frames") {
		t.Errorf("output %q missing completion fraction", out)
	}
	if !strings.Contains(out, "1 failed") {
		t.Errorf("output %q missing failure count", out)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Hour, "2h00m"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
