// Package listing holds the date-window and pagination logic shared by
// the contact and assessment admin list endpoints.
package listing

import "time"

// Filter tokens accepted by the admin list endpoints.
const (
	FilterToday      = "today"
	FilterYesterday  = "yesterday"
	FilterWeek       = "week"
	FilterMonth      = "month"
	FilterThreeMonth = "3months"
	FilterSixMonth   = "6months"
	FilterYear       = "year"
)

// DateRange is a creation-timestamp window. A nil bound means open-ended.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// RangeFor maps a filter token to a creation-date window anchored on now.
// "yesterday" is the only token with a closed upper bound; every other
// token is open-ended toward now. Unknown or empty tokens yield an
// unconstrained range.
func RangeFor(token string, now time.Time) DateRange {
	switch token {
	case FilterToday:
		start := midnight(now)
		return DateRange{Start: &start}
	case FilterYesterday:
		start := midnight(now).AddDate(0, 0, -1)
		// Anchored on today's midnight so DST-length days keep the
		// window inside yesterday.
		end := midnight(now).Add(-time.Millisecond)
		return DateRange{Start: &start, End: &end}
	case FilterWeek:
		start := now.AddDate(0, 0, -7)
		return DateRange{Start: &start}
	case FilterMonth:
		start := now.AddDate(0, -1, 0)
		return DateRange{Start: &start}
	case FilterThreeMonth:
		start := now.AddDate(0, -3, 0)
		return DateRange{Start: &start}
	case FilterSixMonth:
		start := now.AddDate(0, -6, 0)
		return DateRange{Start: &start}
	case FilterYear:
		start := now.AddDate(-1, 0, 0)
		return DateRange{Start: &start}
	default:
		return DateRange{}
	}
}

// Pages returns ceil(total/limit), the page count reported alongside
// paginated results.
func Pages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
