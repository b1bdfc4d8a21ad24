package reports

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

var ErrCategoryIndexOutOfRange = errors.New("category index out of range")

// DateRange is an inclusive [Start, End] span of calendar days.
type DateRange struct {
	Start expense.Date
	End   expense.Date
}

// ParseDateRange validates both bounds independently so that a format error
// is never mistaken for an empty range.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := expense.ParseDate(strings.TrimSpace(start))
	if err != nil {
		return DateRange{}, errors.Wrap(err, "start date")
	}
	e, err := expense.ParseDate(strings.TrimSpace(end))
	if err != nil {
		return DateRange{}, errors.Wrap(err, "end date")
	}
	return DateRange{Start: s, End: e}, nil
}

func (r DateRange) Contains(d expense.Date) bool {
	return r.Start.Compare(d) <= 0 && d.Compare(r.End) <= 0
}

// FilterByDateRange keeps records with Start <= date <= End in input order.
func FilterByDateRange(exps []expense.Expense, r DateRange) []expense.Expense {
	res := make([]expense.Expense, 0)
	for _, e := range exps {
		if r.Contains(e.Date) {
			res = append(res, e)
		}
	}
	return res
}

// Categories lists the categories present, de-duplicated case-insensitively
// (the first spelling seen wins) and sorted ascending.
func Categories(exps []expense.Expense) []string {
	ct := sumByCategory(exps)
	res := make([]string, 0, len(ct.entries))
	for _, entry := range ct.entries {
		res = append(res, entry.Category)
	}
	sort.Strings(res)
	return res
}

// ResolveCategory turns a selector into a category name. An all-digit
// selector is a 1-based index into Categories(exps); anything else is taken
// literally.
func ResolveCategory(exps []expense.Expense, selector string) (string, error) {
	selector = strings.TrimSpace(selector)
	if !isIndex(selector) {
		return selector, nil
	}
	categories := Categories(exps)
	idx, err := strconv.Atoi(selector)
	if err != nil || idx < 1 || idx > len(categories) {
		return "", errors.Wrapf(ErrCategoryIndexOutOfRange, "%s not in [1, %d]", selector, len(categories))
	}
	return categories[idx-1], nil
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// FilterByCategory keeps records whose category matches the selector,
// ignoring case.
func FilterByCategory(exps []expense.Expense, selector string) ([]expense.Expense, string, error) {
	category, err := ResolveCategory(exps, selector)
	if err != nil {
		return nil, "", err
	}
	res := make([]expense.Expense, 0)
	for _, e := range exps {
		if expense.SameCategory(e.Category, category) {
			res = append(res, e)
		}
	}
	return res, category, nil
}

// Criteria selects records by an optional date range and an optional
// category selector.
type Criteria struct {
	Range    *DateRange
	Category string
}

type FilterResult struct {
	Expenses []expense.Expense
	// Category is the resolved category name, empty when not filtered by one.
	Category string
	Stats    Stats
	// Breakdown is sorted by category name and only set when more than one
	// record matched.
	Breakdown []CategoryTotal
}

// Filter applies the date range first. An empty date-filtered set ends the
// query without resolving the category selector. ok is false when nothing
// matched.
func Filter(exps []expense.Expense, c Criteria) (res FilterResult, ok bool, err error) {
	filtered := exps
	if c.Range != nil {
		filtered = FilterByDateRange(filtered, *c.Range)
		if len(filtered) == 0 {
			return FilterResult{Expenses: filtered}, false, nil
		}
	}
	if strings.TrimSpace(c.Category) != "" {
		filtered, res.Category, err = FilterByCategory(filtered, c.Category)
		if err != nil {
			return FilterResult{}, false, err
		}
	}

	res.Expenses = filtered
	res.Stats = Aggregate(filtered)
	if len(filtered) > 1 {
		res.Breakdown = withPercentages(sumByCategory(filtered).entries, res.Stats.Total)
		sort.SliceStable(res.Breakdown, func(i, j int) bool {
			return res.Breakdown[i].Category < res.Breakdown[j].Category
		})
	}
	return res, len(filtered) > 0, nil
}
