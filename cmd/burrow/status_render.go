package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"burrow/internal/nest"
	"burrow/internal/run"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

const (
	statusLabelWidth = 16
	statusIndent     = "  "
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := fmt.Sprintf("[%s]", statusKindLabel(kind))
	if message != "" {
		statusText += " " + message
	}
	base := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", statusText)
	if colorize {
		if color := statusKindColor(kind); color != "" {
			return color + base + ansiReset
		}
	}
	return base
}

func statusKindLabel(kind statusKind) string {
	switch kind {
	case statusOK:
		return "OK"
	case statusWarn:
		return "WARN"
	case statusError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func statusKindColor(kind statusKind) string {
	switch kind {
	case statusOK:
		return ansiGreen
	case statusWarn:
		return ansiYellow
	case statusError:
		return ansiRed
	case statusInfo:
		return ansiBlue
	default:
		return ""
	}
}

func renderSectionHeader(title string, colorize bool) []string {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

// reasonLabel turns "max_depth_reached" into "Max Depth Reached".
func reasonLabel(reason nest.Reason) string {
	if reason == "" {
		return "Unknown"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(reason), "_", " "))
}

func renderSummary(summary run.Summary, colorize bool) []string {
	lines := renderSectionHeader("Run "+shortID(summary.RunID), colorize)

	if summary.Detected != nil {
		detail := summary.Detected.Path
		var extra []string
		if summary.Detected.Device != "" {
			extra = append(extra, summary.Detected.Device)
		}
		if summary.Detected.Label != "" {
			extra = append(extra, summary.Detected.Label)
		}
		if len(extra) > 0 {
			detail += " (" + strings.Join(extra, ", ") + ")"
		}
		lines = append(lines, renderStatusLine("Drive", statusInfo, detail, colorize))
	}
	if summary.LongPath != "" {
		lines = append(lines, renderStatusLine("Long paths", statusInfo, string(summary.LongPath), colorize))
	}

	result := summary.Result
	if result.Reason == "" {
		return lines
	}

	kind := statusOK
	if !result.Reason.Natural() {
		kind = statusWarn
	}
	outcome := fmt.Sprintf("%s after %s", reasonLabel(result.Reason), pluralize(result.Levels, "level"))
	lines = append(lines,
		renderStatusLine("Outcome", kind, outcome, colorize),
		renderStatusLine("Deepest folder", statusInfo, result.FinalDir, colorize),
		renderStatusLine("Moves", statusInfo, fmt.Sprintf("%d moved", result.Moved), colorize),
	)
	if result.Skipped > 0 {
		lines = append(lines, renderStatusLine("Collisions", statusWarn,
			fmt.Sprintf("%s left in place", pluralize(result.Skipped, "item")), colorize))
	}
	if result.Failed > 0 {
		lines = append(lines, renderStatusLine("Failures", statusWarn,
			fmt.Sprintf("%s could not be moved", pluralize(result.Failed, "item")), colorize))
	}
	if result.Err != nil && !result.Reason.Natural() {
		lines = append(lines, renderStatusLine("Error", statusError, result.Err.Error(), colorize))
	}
	return lines
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
