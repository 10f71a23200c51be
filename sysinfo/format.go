// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
)

// FormatBytes converts a byte count to a human-readable string with the
// most appropriate binary unit, e.g. FormatBytes(1536) returns "1.5 KB".
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KB", "MB", "GB", "TB", "PB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// FormatGiB renders a byte count in gibibytes with two decimals,
// the unit memory totals are conventionally quoted in.
func FormatGiB(bytes uint64) string {
	return fmt.Sprintf("%.2f GiB", float64(bytes)/1073741824.0)
}

// FormatUptime renders seconds as "Nh Mm", dropping the hour part when
// the uptime is under an hour.
func FormatUptime(seconds uint64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// TruncateString truncates a string to maxLen, appending "..." when it
// had to cut.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// PadRight pads a string with spaces to reach a minimum width.
func PadRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
