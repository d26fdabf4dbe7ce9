package mortgage

import (
	"sort"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/samber/lo"
)

// PaySchedule is a payment frequency label.
type PaySchedule string

// Supported pay schedules.
const (
	Monthly             PaySchedule = "monthly"
	BiWeekly            PaySchedule = "bi-weekly"
	AcceleratedBiWeekly PaySchedule = "accelerated bi-weekly"
)

type scheduleRule struct {
	periodsPerYear int
	// fromMonthly converts the canonical monthly payment to this schedule.
	fromMonthly func(monthlyPayment float64) float64
}

var schedules = map[PaySchedule]scheduleRule{
	Monthly: {
		periodsPerYear: constants.MonthsPerYear,
		fromMonthly:    func(m float64) float64 { return m },
	},
	BiWeekly: {
		periodsPerYear: constants.BiWeeklyPeriodsPerYear,
		fromMonthly: func(m float64) float64 {
			return m * constants.MonthsPerYear / constants.BiWeeklyPeriodsPerYear
		},
	},
	AcceleratedBiWeekly: {
		periodsPerYear: constants.BiWeeklyPeriodsPerYear,
		fromMonthly:    func(m float64) float64 { return m / 2 },
	},
}

// ParsePaySchedule normalizes label and reports whether it names a
// supported schedule. Matching is case-insensitive.
func ParsePaySchedule(label string) (PaySchedule, bool) {
	schedule := PaySchedule(strings.ToLower(strings.TrimSpace(label)))
	_, ok := schedules[schedule]
	return schedule, ok
}

// Schedules returns the supported pay schedules in sorted order.
func Schedules() []PaySchedule {
	keys := lo.Keys(schedules)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// PeriodsPerYear returns the number of payments per year for s, or 0 if s
// is not supported.
func (s PaySchedule) PeriodsPerYear() int {
	return schedules[s].periodsPerYear
}

// FromMonthly converts a monthly payment into the payment for s.
func (s PaySchedule) FromMonthly(monthlyPayment float64) float64 {
	rule, ok := schedules[s]
	if !ok {
		return monthlyPayment
	}
	return rule.fromMonthly(monthlyPayment)
}

func (s PaySchedule) String() string {
	return string(s)
}
