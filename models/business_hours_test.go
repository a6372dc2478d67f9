package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	assert.Equal(t, 540, ToMinutes("09:00"))
	assert.Equal(t, 1020, ToMinutes("17:00"))
	assert.Equal(t, 570, ToMinutes(" 09 : 30 "))
	assert.Equal(t, -1, ToMinutes("0900"))
	assert.Equal(t, -1, ToMinutes("nine:thirty"))
}

func TestNormalizeBusinessHoursStringShape(t *testing.T) {
	out := NormalizeBusinessHours(map[string]interface{}{
		"1": "09:00-17:00",
		"5": "10:00-14:30",
	})
	require.NotNil(t, out)
	assert.Equal(t, DayWindow{StartMinutes: 540, EndMinutes: 1020}, out[1])
	assert.Equal(t, DayWindow{StartMinutes: 600, EndMinutes: 870}, out[5])
}

func TestNormalizeBusinessHoursObjectShapes(t *testing.T) {
	out := NormalizeBusinessHours(map[string]interface{}{
		"1": map[string]interface{}{"startMinutes": float64(540), "endMinutes": float64(1020)},
		"2": map[string]interface{}{"start": 480, "end": 960},
		"3": map[string]interface{}{"startTime": "08:30", "endTime": "16:30"},
	})
	require.NotNil(t, out)
	assert.Equal(t, DayWindow{StartMinutes: 540, EndMinutes: 1020}, out[1])
	assert.Equal(t, DayWindow{StartMinutes: 480, EndMinutes: 960}, out[2])
	assert.Equal(t, DayWindow{StartMinutes: 510, EndMinutes: 990}, out[3])
}

func TestNormalizeBusinessHoursDropsUnusable(t *testing.T) {
	out := NormalizeBusinessHours(map[string]interface{}{
		"monday": "09:00-17:00", // non-numeric key
		"2":      nil,
		"3":      "not-a-window",
		"4":      map[string]interface{}{"open": true},
	})
	assert.Nil(t, out)

	assert.Nil(t, NormalizeBusinessHours(nil))
	assert.Nil(t, NormalizeBusinessHours(map[string]interface{}{}))
}

func TestNormalizeBusinessHoursKeepsUsableAmongBroken(t *testing.T) {
	out := NormalizeBusinessHours(map[string]interface{}{
		"1": "09:00-17:00",
		"2": "broken",
	})
	require.NotNil(t, out)
	require.Len(t, out, 1)
	assert.Equal(t, DayWindow{StartMinutes: 540, EndMinutes: 1020}, out[1])
}
