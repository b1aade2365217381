// Package clock lets the generator and stores read "now" without calling time.Now inline.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func System() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

// Fixed always reports the same instant. Used by tests and reproducible CLI runs.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Format renders t in the layout stored on plans (UTC, millisecond precision).
func Format(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
