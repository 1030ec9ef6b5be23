package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"recupsort/internal/report"
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
	statusLabelWidth = 20
	statusIndent     = "  "
)

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	statusText := statusKindLabel(kind)
	if message != "" {
		statusText = fmt.Sprintf("[%s] %s", statusText, message)
	} else {
		statusText = fmt.Sprintf("[%s]", statusText)
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

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// renderEvent formats one operation event as a tagged console line. Skip
// events render as an empty string; they only reach the debug log.
func renderEvent(ev report.Event, colorize bool) string {
	var tag, color, body string
	switch ev.Kind {
	case report.KindScanStart:
		tag, color = "SCAN", ansiBlue
		body = fmt.Sprintf("processing folder: %s", filepath.Base(ev.Path))
	case report.KindMove:
		tag, color = "MOVE", ansiGreen
		body = fmt.Sprintf("%s -> %s (%s)", ev.Route, ev.Target, humanize.Bytes(uint64(max(ev.Size, 0))))
	case report.KindDelete:
		tag, color = "DELETE", ansiYellow
		switch {
		case ev.Width > 0 && ev.Height > 0:
			body = fmt.Sprintf("thumbnail %dx%d -> %s", ev.Width, ev.Height, ev.Path)
		default:
			body = ev.Path
		}
		if ev.DryRun {
			body += " (dry run)"
		}
	case report.KindFailure:
		tag, color = "FAIL", ansiRed
		if ev.Err != nil {
			body = fmt.Sprintf("%s: %v", ev.Path, ev.Err)
		} else {
			body = ev.Path
		}
	default:
		return ""
	}
	line := fmt.Sprintf("[%s] %s", tag, body)
	if colorize {
		return color + line + ansiReset
	}
	return line
}

// eventPrinter writes rendered events to a terminal or buffer.
type eventPrinter struct {
	out      io.Writer
	colorize bool
}

func newEventPrinter(out io.Writer) *eventPrinter {
	return &eventPrinter{out: out, colorize: shouldColorize(out)}
}

func (p *eventPrinter) Emit(ev report.Event) {
	line := renderEvent(ev, p.colorize)
	if line == "" {
		return
	}
	if ev.Kind == report.KindScanStart {
		fmt.Fprintln(p.out)
	}
	fmt.Fprintln(p.out, line)
}
