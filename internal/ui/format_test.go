package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/manojv472/Shift-protocol/pkg/entity"
)

func TestFormatClock(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Time     string
		Format   entity.TimeFormat
		Expected string
	}{
		{Desc: "24h passthrough", Time: "14:00", Format: entity.TimeFormat24h, Expected: "14:00"},
		{Desc: "afternoon to 12h", Time: "14:00", Format: entity.TimeFormat12h, Expected: "2:00 PM"},
		{Desc: "morning to 12h", Time: "05:15", Format: entity.TimeFormat12h, Expected: "5:15 AM"},
		{Desc: "midnight wraps to 12 AM", Time: "00:15", Format: entity.TimeFormat12h, Expected: "12:15 AM"},
		{Desc: "noon is 12 PM", Time: "12:30", Format: entity.TimeFormat12h, Expected: "12:30 PM"},
		{Desc: "malformed kept as-is", Time: "soon", Format: entity.TimeFormat12h, Expected: "soon"},
		{Desc: "non-numeric hour kept as-is", Time: "ab:15", Format: entity.TimeFormat12h, Expected: "ab:15"},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, FormatClock(tc.Time, tc.Format))
		})
	}
}

func TestFormatCountdown(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "2:00", FormatCountdown(120))
	assert.Equal(t, "1:29", FormatCountdown(89))
	assert.Equal(t, "0:05", FormatCountdown(5))
	assert.Equal(t, "0:00", FormatCountdown(0))
	assert.Equal(t, "0:00", FormatCountdown(-3))
}

func TestMeterPinsOutOfRangeMetrics(t *testing.T) {
	t.Parallel()
	styles := NewStyles(100)
	// Persisted logs bypass import validation, so the bar must survive any
	// int without panicking.
	for _, v := range []int{-3, 0, 5, 10, 15} {
		assert.NotPanics(t, func() { meter(styles, v) })
	}
	assert.Contains(t, meter(styles, 15), "15", "raw value still shown")
	assert.Contains(t, meter(styles, -3), "-3")
}

func TestParseNumericFields(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 62.5, parseFloatField(" 62.5 "))
	assert.Equal(t, 0.0, parseFloatField("heavy"))
	assert.Equal(t, 0.0, parseFloatField("-10"))
	assert.Equal(t, 8, parseIntField("8"))
	assert.Equal(t, 0, parseIntField("8.5"))
	assert.Equal(t, 0, parseIntField("-2"))
}
