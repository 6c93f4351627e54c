// Package timewindow provides pure time-of-day predicates and roll-forward
// helpers shared by all notification strategies.
//
// It answers three questions without touching any state:
//
//   - Is the current instant inside a configured quiet-hours window,
//     including windows that wrap past midnight (e.g. 22:00-08:00)?
//   - Should weekend mode suppress a notification right now?
//   - When is the next occurrence of a configured "HH:MM" wall-clock time,
//     daily or on a specific weekday?
//
// All functions are deterministic given their arguments, which keeps the
// strategies that build on them trivially testable.
//
// # Usage
//
//	qh := timewindow.QuietHours{Enabled: true, Start: "22:00", End: "08:00"}
//	if qh.Contains(time.Now()) {
//	    // suppress the notification
//	}
//
//	at := timewindow.NextDaily(time.Now(), "20:30") // today 20:30, or tomorrow if passed
package timewindow
