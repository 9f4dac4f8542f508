// Package budget contains budget-related use cases.
package budget

import (
	"time"

	"github.com/pocketfin/backend/internal/domain/entity"
)

// PeriodStart returns the start of the budget window containing now: Monday
// of the current week for weekly budgets, the first of the month for monthly,
// January 1st for yearly. The result never precedes the budget's own start
// date, so a budget created mid-period only counts spending since it began.
func PeriodStart(period entity.BudgetPeriod, startDate, now time.Time) time.Time {
	now = now.UTC()

	var windowStart time.Time
	switch period {
	case entity.BudgetPeriodWeekly:
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday counts as the end of the week
		}
		windowStart = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
			AddDate(0, 0, -(weekday - 1))
	case entity.BudgetPeriodYearly:
		windowStart = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default: // monthly
		windowStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	if startDate.After(windowStart) {
		return startDate
	}
	return windowStart
}

// isValidBudgetPeriod validates the budget period.
func isValidBudgetPeriod(period entity.BudgetPeriod) bool {
	switch period {
	case entity.BudgetPeriodWeekly, entity.BudgetPeriodMonthly, entity.BudgetPeriodYearly:
		return true
	}
	return false
}
