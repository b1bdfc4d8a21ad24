package reports

import (
	"sort"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

// Stats is the aggregate of a non-empty group of expenses.
type Stats struct {
	Total   decimal.Decimal
	Count   int
	Average decimal.Decimal
}

// Aggregate sums a group. Groups produced by this package are never empty;
// an empty slice yields zero stats rather than dividing by zero.
func Aggregate(exps []expense.Expense) Stats {
	total := expense.Total(exps)
	return newStats(total, len(exps))
}

func newStats(total decimal.Decimal, count int) Stats {
	s := Stats{Total: total, Count: count, Average: decimal.Zero}
	if count > 0 {
		s.Average = total.Div(decimal.NewFromInt(int64(count)))
	}
	return s
}

// MonthGroups keeps records bucketed by calendar month in input order.
type MonthGroups map[expense.MonthKey][]expense.Expense

func GroupByMonth(exps []expense.Expense) MonthGroups {
	groups := make(MonthGroups)
	for _, e := range exps {
		k := e.Date.MonthKey()
		groups[k] = append(groups[k], e)
	}
	return groups
}

// Keys returns the month keys in chronological order.
func (g MonthGroups) Keys() []expense.MonthKey {
	keys := make([]expense.MonthKey, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Less(keys[j])
	})
	return keys
}

// YearMonthGroups is year -> month -> records. Absent months are absent keys.
type YearMonthGroups map[int]map[MonthOfYear][]expense.Expense

// MonthOfYear is a month number 1..12 used as the inner key of YearMonthGroups.
type MonthOfYear int

func GroupByYearMonth(exps []expense.Expense) YearMonthGroups {
	groups := make(YearMonthGroups)
	for _, e := range exps {
		year := e.Date.Year()
		months, ok := groups[year]
		if !ok {
			months = make(map[MonthOfYear][]expense.Expense)
			groups[year] = months
		}
		m := MonthOfYear(e.Date.Month())
		months[m] = append(months[m], e)
	}
	return groups
}

// Years returns the years present in ascending order.
func (g YearMonthGroups) Years() []int {
	years := make([]int, 0, len(g))
	for y := range g {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func (g YearMonthGroups) YearTotal(year int) decimal.Decimal {
	total := decimal.Zero
	for _, exps := range g[year] {
		total = total.Add(expense.Total(exps))
	}
	return total
}

// categoryTotals sums amounts per case-folded category. Entries keep the
// order of first appearance and the casing of the first record seen.
type categoryTotals struct {
	index   map[string]int
	entries []CategoryTotal
}

type CategoryTotal struct {
	Category   string
	Total      decimal.Decimal
	Count      int
	Percentage float64
}

func sumByCategory(exps []expense.Expense) *categoryTotals {
	ct := &categoryTotals{index: make(map[string]int)}
	for _, e := range exps {
		key := expense.CategoryKey(e.Category)
		i, ok := ct.index[key]
		if !ok {
			i = len(ct.entries)
			ct.index[key] = i
			ct.entries = append(ct.entries, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		ct.entries[i].Total = ct.entries[i].Total.Add(e.Amount)
		ct.entries[i].Count++
	}
	return ct
}

// DayTotal is the spend of one calendar day.
type DayTotal struct {
	Date  expense.Date
	Total decimal.Decimal
	Count int
}

// GroupByDay returns per-day totals in ascending date order.
func GroupByDay(exps []expense.Expense) []DayTotal {
	byDate := make(map[expense.Date]int)
	days := make([]DayTotal, 0)
	for _, e := range exps {
		i, ok := byDate[e.Date]
		if !ok {
			i = len(days)
			byDate[e.Date] = i
			days = append(days, DayTotal{Date: e.Date, Total: decimal.Zero})
		}
		days[i].Total = days[i].Total.Add(e.Amount)
		days[i].Count++
	}
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}
