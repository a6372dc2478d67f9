package models

import (
	"strconv"
	"strings"
)

// DayWindow is a single open window expressed as minutes since local midnight.
type DayWindow struct {
	StartMinutes int `bson:"startMinutes" json:"startMinutes"`
	EndMinutes   int `bson:"endMinutes" json:"endMinutes"`
}

// BusinessHours maps a weekday (0 = Sunday ... 6 = Saturday) to its open
// window. Weekdays absent from the map are closed.
type BusinessHours map[int]DayWindow

// ToMinutes parses an "HH:MM" string into minutes since midnight.
// Returns -1 when the string is malformed.
func ToMinutes(str string) int {
	parts := strings.Split(str, ":")
	if len(parts) != 2 {
		return -1
	}
	h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
	m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errH != nil || errM != nil {
		return -1
	}
	return h*60 + m
}

// NormalizeBusinessHours converts the loose per-weekday shapes stored by the
// settings UI into a strict BusinessHours map. Supported value shapes:
// "09:00-17:00" strings, {startMinutes,endMinutes}, {start,end} and
// {startTime,endTime}. Entries that cannot be interpreted are dropped.
// Returns nil when nothing usable remains.
func NormalizeBusinessHours(raw map[string]interface{}) BusinessHours {
	if len(raw) == 0 {
		return nil
	}
	out := BusinessHours{}
	for key, val := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil || val == nil {
			continue
		}

		switch v := val.(type) {
		case string:
			parts := strings.Split(v, "-")
			if len(parts) != 2 {
				continue
			}
			s := ToMinutes(parts[0])
			e := ToMinutes(parts[1])
			if s >= 0 && e >= 0 {
				out[idx] = DayWindow{StartMinutes: s, EndMinutes: e}
			}
		case map[string]interface{}:
			if s, e, ok := windowFromObject(v); ok {
				out[idx] = DayWindow{StartMinutes: s, EndMinutes: e}
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func windowFromObject(obj map[string]interface{}) (int, int, bool) {
	if s, okS := asInt(obj["startMinutes"]); okS {
		if e, okE := asInt(obj["endMinutes"]); okE {
			return s, e, true
		}
	}
	if s, okS := asInt(obj["start"]); okS {
		if e, okE := asInt(obj["end"]); okE {
			return s, e, true
		}
	}
	st, okSt := obj["startTime"].(string)
	et, okEt := obj["endTime"].(string)
	if okSt && okEt {
		s := ToMinutes(st)
		e := ToMinutes(et)
		if s >= 0 && e >= 0 {
			return s, e, true
		}
	}
	return 0, 0, false
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
