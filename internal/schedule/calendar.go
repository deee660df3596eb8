package schedule

import "time"

const dateLayout = "2006-01-02"

// Opening night is fixed to October 20 of the season's first calendar year.
const (
	openingMonth = time.October
	openingDay   = 20
)

// SeasonStart returns the regular-season opening date for a season that tips
// off in the given calendar year.
func SeasonStart(year int) time.Time {
	return time.Date(year, openingMonth, openingDay, 0, 0, 0, 0, time.UTC)
}
