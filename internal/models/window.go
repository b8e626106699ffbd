package models

import (
	"strconv"
	"time"
)

// WindowKind selects how a WindowSpec filters readings before aggregation.
type WindowKind int

const (
	WindowAll WindowKind = iota
	WindowToday
	WindowLastNDays
	WindowDate
)

// WindowSpec is a viewer-chosen time-range filter. It is stateless and
// recomputed on every change; it never mutates stored data.
type WindowSpec struct {
	Kind WindowKind
	Days int       // used when Kind == WindowLastNDays
	Date time.Time // used when Kind == WindowDate; only the calendar date matters
}

func (w WindowSpec) String() string {
	switch w.Kind {
	case WindowToday:
		return "today"
	case WindowLastNDays:
		return "last" + strconv.Itoa(w.Days) + "d"
	case WindowDate:
		return w.Date.Format("2006-01-02")
	default:
		return "all"
	}
}
