package timewindow

import "errors"

// ErrInvalidClock is returned when a time string is not in "HH:MM" format.
var ErrInvalidClock = errors.New("invalid clock time")
