// Package cliutil holds the ambient CLI stack spright's command-line front
// end uses on top of the packing core: colored status text, a progress
// spinner, image codec I/O, slice compositing and the JSON description
// renderer. None of it is imported by the spright, rectpack, trim, hull,
// compact, dedup or scheduler packages — the dependency only ever points
// from cmd/spright toward the core, never back.
package cliutil

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// MessageType selects the color DecorateText wraps a status line in.
type MessageType int

const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI front-end.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

// DecorateText wraps s in the ANSI color matching msgType.
func DecorateText(s string, msgType MessageType) string {
	switch msgType {
	case StatusMessage:
		s = StatusColor + s
	case SuccessMessage:
		s = SuccessColor + s
	case ErrorMessage:
		s = ErrorColor + s
	default:
		s = DefaultColor + s
	}
	return s + DefaultColor
}

// FormatTime formats a duration the way the packing job summary reports
// elapsed time, scaling the unit breakdown up from seconds to days.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), remainingSeconds)
	}
	if d.Hours() < 24.0 {
		remainingMinutes := math.Mod(d.Minutes(), 60)
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dh %dm %.2fs", int64(d.Hours()), int64(remainingMinutes), remainingSeconds)
	}
	remainingHours := math.Mod(d.Hours(), 24)
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dd %dh %dm %.2fs",
		int64(d.Hours()/24), int64(remainingHours), int64(remainingMinutes), remainingSeconds)
}

// FormatBytes renders a byte count with binary units (B, KiB, MiB, GiB,
// ...), two decimals above 1 KiB.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Pluralize appends "s" to word when n != 1, matching the warning/summary
// line phrasing ("1 sprite" vs "3 sprites").
func Pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, strings.TrimSuffix(word, "s"))
}
