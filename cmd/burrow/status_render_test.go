package main

import (
	"errors"
	"strings"
	"testing"

	"burrow/internal/drive"
	"burrow/internal/nest"
	"burrow/internal/run"
)

func TestReasonLabel(t *testing.T) {
	tests := map[nest.Reason]string{
		nest.ReasonMaxDepth:      "Max Depth Reached",
		nest.ReasonCreationError: "Creation Error",
		nest.ReasonInterrupted:   "Interrupted",
		"":                       "Unknown",
	}
	for reason, want := range tests {
		if got := reasonLabel(reason); got != want {
			t.Errorf("reasonLabel(%q) = %q, want %q", reason, got, want)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	summary := run.Summary{
		RunID:    "0123456789abcdef",
		Detected: &drive.Event{Mount: drive.Mount{Path: "/media/u/STICK", Device: "/dev/sdb1", Label: "STICK"}},
		Result: nest.Result{
			Levels:   37,
			Reason:   nest.ReasonCreationError,
			Err:      errors.New("file name too long"),
			Moved:    74,
			Skipped:  1,
			FinalDir: "/media/u/STICK/1/2",
		},
	}

	out := strings.Join(renderSummary(summary, false), "\n")
	requireContains(t, out, "== Run 01234567 ==")
	requireContains(t, out, "/media/u/STICK (/dev/sdb1, STICK)")
	requireContains(t, out, "[OK] Creation Error after 37 levels")
	requireContains(t, out, "1 item left in place")
	if strings.Contains(out, "file name too long") {
		t.Fatalf("natural termination should not print an error line:\n%s", out)
	}
	if strings.Contains(out, ansiReset) {
		t.Fatal("uncolored output should not contain escape codes")
	}
}

func TestRenderSummaryInterrupted(t *testing.T) {
	summary := run.Summary{
		RunID:  "abc",
		Result: nest.Result{Levels: 1, Reason: nest.ReasonInterrupted, Failed: 2},
	}
	out := strings.Join(renderSummary(summary, true), "\n")
	requireContains(t, out, "[WARN] Interrupted after 1 level")
	requireContains(t, out, "2 items could not be moved")
	requireContains(t, out, ansiYellow)
}

func TestMountRows(t *testing.T) {
	rows := mountRows([]drive.Mount{
		{Path: "/media/u/STICK", Device: "/dev/sdb1", Label: "STICK"},
		{Path: "/", Device: "/dev/nvme0n1p2"},
	}, drive.Classifier{Roots: []string{"/media"}})

	if rows[0][3] != "no" || rows[0][4] != "yes" {
		t.Fatalf("unexpected row for stick: %v", rows[0])
	}
	if rows[1][2] != "-" || rows[1][4] != "no" {
		t.Fatalf("unexpected row for root: %v", rows[1])
	}
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Path", "Watched"}, [][]string{{"/media/x"}}, []columnAlignment{alignLeft, alignRight})
	requireContains(t, out, "Path")
	requireContains(t, out, "/media/x")
	if renderTable(nil, nil, nil) != "" {
		t.Fatal("expected empty render without headers")
	}
}
