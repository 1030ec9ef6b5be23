package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"recupsort/internal/cleaner"
	"recupsort/internal/organizer"
	"recupsort/internal/sweeper"
	"recupsort/internal/textutil"
)

func renderOrganizeSummary(stats organizer.Stats) string {
	var b strings.Builder
	b.WriteString("\n========== SUMMARY ==========\n")
	fmt.Fprintf(&b, "Organized files: %d (%s)\n", stats.Moved, humanize.Bytes(uint64(max(stats.MovedBytes, 0))))

	if exts := stats.Extensions(); len(exts) > 0 {
		b.WriteString("\nBy extension:\n")
		b.WriteString(renderCountTable("Extension", exts))
		b.WriteString("\n")
	}
	if models := stats.Models(); len(models) > 0 {
		b.WriteString("\nBy camera model:\n")
		b.WriteString(renderCountTable("Camera model", models))
		b.WriteString("\n")
	}
	if stats.NoMetadata > 0 {
		fmt.Fprintf(&b, "\nNo metadata: %s\n", pluralFiles(stats.NoMetadata))
	}
	if stats.Failed > 0 {
		fmt.Fprintf(&b, "Failed: %s\n", pluralFiles(stats.Failed))
	}
	if stats.Skipped > 0 {
		fmt.Fprintf(&b, "Left in place (not media): %s\n", pluralFiles(stats.Skipped))
	}
	b.WriteString("=============================\n")
	return b.String()
}

func renderCountTable(label string, counts []organizer.Count) string {
	rows := make([][]string, 0, len(counts))
	total := 0
	for _, c := range counts {
		rows = append(rows, []string{c.Key, strconv.Itoa(c.Value)})
		total += c.Value
	}
	return renderTable(tableLayout{
		Headers: []string{label, "Files"},
		Rows:    rows,
		Footer:  []string{"Total", strconv.Itoa(total)},
		Aligns:  []columnAlignment{alignLeft, alignRight},
	})
}

func renderSweepSummary(result sweeper.Result, threshold sweeper.Threshold, dryRun bool) string {
	verb := textutil.Ternary(dryRun, "would delete", "deleted")
	line := fmt.Sprintf("Thumbnail cleanup completed (below %s), %s %d images", threshold, verb, result.Deleted)
	var extra []string
	extra = append(extra, fmt.Sprintf("scanned %d", result.Scanned))
	if result.Undecodable > 0 {
		extra = append(extra, fmt.Sprintf("unreadable %d", result.Undecodable))
	}
	if result.Failed > 0 {
		extra = append(extra, fmt.Sprintf("failed %d", result.Failed))
	}
	return fmt.Sprintf("\n%s (%s)\n", line, strings.Join(extra, ", "))
}

func renderCleanSummary(result cleaner.Result) string {
	line := fmt.Sprintf("\nClean completed: deleted %s (%s) from %d scratch folders",
		pluralFiles(result.Deleted),
		humanize.Bytes(uint64(max(result.DeletedBytes, 0))),
		result.Roots,
	)
	if result.Failed > 0 {
		line += fmt.Sprintf(", %d failed", result.Failed)
	}
	return line + "\n"
}

func pluralFiles(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}
