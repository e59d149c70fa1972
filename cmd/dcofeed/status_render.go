package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"dcofeed/internal/feed"
	"dcofeed/internal/generator"
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
	statusLabelWidth = 14
	statusIndent     = "  "
)

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
	rule := strings.Repeat("-", len([]rune(line)))
	if colorize {
		line = ansiBlue + line + ansiReset
		rule = ansiBlue + rule + ansiReset
	}
	return []string{line, rule}
}

// generateSummaryLines describes a written artifact.
func generateSummaryLines(res *generator.Result, colorize bool) []string {
	lines := renderSectionHeader("Feed generated", colorize)
	return append(lines,
		renderStatusLine("Campaign", statusInfo, res.Campaign, colorize),
		renderStatusLine("Artifact", statusOK, res.Path, colorize),
		renderStatusLine("Format", statusInfo, res.Format, colorize),
		renderStatusLine("Rows", statusOK, strconv.Itoa(res.Rows), colorize),
		renderStatusLine("Defaults", defaultsKind(res.Defaults), strconv.Itoa(res.Defaults), colorize),
		renderStatusLine("Fingerprint", statusInfo, res.Fingerprint, colorize),
	)
}

// feedSummaryLines describes an in-memory feed.
func feedSummaryLines(title string, f *feed.Feed, colorize bool) []string {
	defaults := len(f.Defaults())
	lines := renderSectionHeader(title, colorize)
	return append(lines,
		renderStatusLine("Rows", statusOK, strconv.Itoa(f.Len()), colorize),
		renderStatusLine("Formats", statusInfo, strconv.Itoa(len(f.Reference.Formats)), colorize),
		renderStatusLine("Characters", statusInfo, strconv.Itoa(len(f.Reference.Characters)), colorize),
		renderStatusLine("Texts", statusInfo, strconv.Itoa(len(f.Reference.Texts)), colorize),
		renderStatusLine("Defaults", defaultsKind(defaults), strconv.Itoa(defaults), colorize),
		renderStatusLine("Fingerprint", statusInfo, f.Fingerprint().String(), colorize),
	)
}

func defaultsKind(n int) statusKind {
	if n == 0 {
		return statusWarn
	}
	return statusOK
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
