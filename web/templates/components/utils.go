package components

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mergestat/timediff"
)

// FormatRelativeTime formats a time.Time as a relative time string like "3 days ago"
func FormatRelativeTime(t time.Time) string {
	return timediff.TimeDiff(t)
}

// FormatCount formats a count with thousands separators
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
