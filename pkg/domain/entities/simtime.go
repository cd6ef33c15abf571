package entities

// SimTime is a point in simulated time: a day counter from the start of
// the run plus an hour of day in [0, 24). Weekdays cycle modulo 7.
type SimTime struct {
	Day  int
	Hour int
}

// AddHours returns the time h hours later, wrapping the hour modulo 24
// with day carry. Negative h steps backwards.
func (t SimTime) AddHours(h int) SimTime {
	total := t.Day*24 + t.Hour + h
	day := total / 24
	hour := total % 24
	if hour < 0 {
		hour += 24
		day--
	}
	return SimTime{Day: day, Hour: hour}
}

// Weekday returns the weekday index of the day, in [0, 7)
func (t SimTime) Weekday() int {
	w := t.Day % 7
	if w < 0 {
		w += 7
	}
	return w
}

// Compare orders two times chronologically: -1 if t is earlier than o,
// 0 if equal, +1 if later.
func (t SimTime) Compare(o SimTime) int {
	a := t.Day*24 + t.Hour
	b := o.Day*24 + o.Hour
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether t is strictly earlier than o
func (t SimTime) Before(o SimTime) bool {
	return t.Compare(o) < 0
}

// After reports whether t is strictly later than o
func (t SimTime) After(o SimTime) bool {
	return t.Compare(o) > 0
}

// HoursUntil returns the signed number of hours from t to o
func (t SimTime) HoursUntil(o SimTime) int {
	return (o.Day*24 + o.Hour) - (t.Day*24 + t.Hour)
}
