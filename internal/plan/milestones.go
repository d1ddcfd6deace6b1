package plan

import (
	"fmt"
	"time"
)

// DefaultMilestoneCadence is the milestone interval in months: two per year.
const DefaultMilestoneCadence = 6

// planHorizonMonths is the fixed three-year planning horizon.
const planHorizonMonths = 36

// Milestones produces the execution checkpoints over the 36-month horizon.
// The i-th milestone falls 30*i days after Jan 1 of the start year. The
// 30-day month is a deliberate approximation, not calendar month arithmetic;
// downstream consumers depend on the resulting dates, so it must not be
// "corrected" to exact months. The default cadence yields 6 milestones.
func Milestones(startYear, monthsPerMilestone int) []Milestone {
	if monthsPerMilestone <= 0 {
		monthsPerMilestone = DefaultMilestoneCadence
	}
	start := time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	var out []Milestone
	for i := 0; i < planHorizonMonths; i += monthsPerMilestone {
		date := start.AddDate(0, 0, 30*i)
		yearOffset := date.Year() - startYear + 1
		out = append(out, Milestone{
			Date:        date.Format("2006-01-02"),
			Description: fmt.Sprintf("Milestone %d – Year %d", i/monthsPerMilestone+1, yearOffset),
		})
	}
	return out
}
