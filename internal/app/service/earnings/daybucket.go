package earnings

import "time"

// hoursPerDay keeps day math in whole days; buckets are UTC midnights so the
// division below is always exact.
const hoursPerDay = 24

// DayBucket truncates an instant to its UTC calendar day. All day counting in
// the accrual core goes through this so time-of-day skew between stored
// instants and "now" can never change a day count.
func DayBucket(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b. The
// result is negative when b's day bucket precedes a's.
func DaysBetween(a, b time.Time) int {
	return int(DayBucket(b).Sub(DayBucket(a)).Hours() / hoursPerDay)
}
