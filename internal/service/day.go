package service

import (
	"time"

	"github.com/jinzhu/now"
)

// StartOfDay is local midnight of t's day, in t's location. Completions at or
// after it count as done today.
func StartOfDay(t time.Time) time.Time {
	return now.With(t).BeginningOfDay()
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b.In(a.Location())))
}
