// Package timefmt renders durations the way the exploratory run's progress
// lines expect them: milliseconds under one second, hr/min/sec above.
package timefmt

import (
	"fmt"
	"math"
	"time"
)

// Format renders d in a human unit scale. Under one second the value is
// rounded milliseconds ("500 ms"). Otherwise: if hours > 0 all of hr, min and
// sec are shown; else if minutes > 0, min and sec; else seconds only.
func Format(d time.Duration) string {
	seconds := d.Seconds()
	if seconds < 1 {
		return fmt.Sprintf("%d ms", int(math.Round(seconds*1000)))
	}
	hours := int(seconds) / 3600
	minutes := (int(seconds) % 3600) / 60
	secs := int(seconds) % 60
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min %d sec", hours, minutes, secs)
	}
	if minutes > 0 {
		return fmt.Sprintf("%d min %d sec", minutes, secs)
	}
	return fmt.Sprintf("%d sec", secs)
}
