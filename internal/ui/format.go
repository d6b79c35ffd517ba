package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

// FormatClock renders a catalog "HH:MM" time in the configured format.
// Malformed times are returned as-is rather than erroring a render pass.
func FormatClock(time24 string, format entity.TimeFormat) string {
	if format == entity.TimeFormat24h {
		return time24
	}
	parts := strings.SplitN(time24, ":", 2)
	if len(parts) != 2 {
		return time24
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return time24
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return time24
	}
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hours12, minutes, period)
}

// FormatCountdown renders remaining rest seconds as M:SS.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// parseFloatField coerces free-form numeric input; anything unparseable is
// zero, never an error that blocks the workflow.
func parseFloatField(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseIntField(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
