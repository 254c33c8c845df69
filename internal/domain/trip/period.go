// Package trip holds the date-range arithmetic shared by the
// recommendation domains.
package trip

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// Period is an inclusive travel date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// ParsePeriod validates and parses a YYYY-MM-DD date range.
func ParsePeriod(start, end string) (Period, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return Period{}, err
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return Period{}, err
	}
	if endDate.Before(startDate) {
		return Period{}, errors.New("end date must not be before start date")
	}
	return Period{Start: startDate, End: endDate}, nil
}

// Days returns the inclusive day count of the period.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// ForecastDays caps the day count at the upstream forecast window limit.
func (p Period) ForecastDays(limit int) int {
	days := p.Days()
	if days > limit {
		return limit
	}
	return days
}

// String renders the range the way responses and prompts describe it.
func (p Period) String() string {
	return p.Start.Format(dateLayout) + " a " + p.End.Format(dateLayout)
}
