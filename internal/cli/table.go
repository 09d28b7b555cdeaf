package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const tablePadding = 2

func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// escapeCell wraps styled text so tabwriter ignores its escape sequences
// when measuring column width.
func escapeCell(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return string(tabwriter.Escape) + s + string(tabwriter.Escape)
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
