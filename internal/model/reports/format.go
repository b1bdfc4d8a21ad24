package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

const (
	noExpensesMessage     = "No expenses found."
	noMonthlyDataMessage  = "No monthly data available."
	noMatchesMessage      = "No expenses found matching the criteria."
	needTwoYearsMessage   = "Need at least 2 years of data for comparison."
	missingCell           = "-"
	separatorWidth        = 55
	monthHeaderDateLayout = "January 2006"
)

// Formatter renders engine results as plain text tables.
type Formatter struct {
	Currency string
}

func NewFormatter(currency string) Formatter {
	return Formatter{Currency: currency}
}

func (f Formatter) Money(d decimal.Decimal) string {
	return f.Currency + d.StringFixed(2)
}

func separator() string {
	return strings.Repeat("-", separatorWidth)
}

func (f Formatter) Expenses(exps []expense.Expense) string {
	if len(exps) == 0 {
		return noExpensesMessage
	}
	return f.expenseTable(exps) + fmt.Sprintf("Total Spent: %s", f.Money(expense.Total(exps)))
}

// expenseTable ends with the closing separator and a newline.
func (f Formatter) expenseTable(exps []expense.Expense) string {
	var b strings.Builder
	b.WriteString("ID | Date       | Amount | Category     | Note\n")
	b.WriteString(separator() + "\n")
	for _, e := range exps {
		fmt.Fprintf(&b, "%2d | %s | %s | %-12s | %s\n", e.ID, e.Date, f.Money(e.Amount), e.Category, e.Note)
	}
	b.WriteString(separator() + "\n")
	return b.String()
}

func (f Formatter) Overview(o Overview, ok bool) string {
	if !ok {
		return "No expenses to summarize."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Total Spent: %s\n\nSpending by Category:", f.Money(o.Total))
	for _, c := range o.Categories {
		fmt.Fprintf(&b, "\n - %s: %s (%.1f%%)", c.Category, f.Money(c.Total), c.Percentage)
	}
	return b.String()
}

func (f Formatter) Categories(categories []string) string {
	if len(categories) == 0 {
		return noExpensesMessage
	}
	lines := make([]string, 0, len(categories)+1)
	lines = append(lines, "Available categories:")
	for i, c := range categories {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, c))
	}
	return strings.Join(lines, "\n")
}

func (f Formatter) Filtered(res FilterResult, ok bool) string {
	if !ok {
		return noMatchesMessage
	}
	var b strings.Builder
	b.WriteString("Filtered Expenses:\n")
	b.WriteString(f.expenseTable(res.Expenses))
	fmt.Fprintf(&b, "Filtered Total: %s", f.Money(res.Stats.Total))
	if len(res.Breakdown) > 0 {
		b.WriteString("\n\nCategory Breakdown:")
		for _, c := range res.Breakdown {
			fmt.Fprintf(&b, "\n - %s: %s", c.Category, f.Money(c.Total))
		}
	}
	return b.String()
}

func monthName(k expense.MonthKey, layout string) string {
	return k.FirstDay().Time().Format(layout)
}

func (f Formatter) Months(o MonthsOverview, ok bool) string {
	if !ok {
		return noMonthlyDataMessage
	}
	var b strings.Builder
	b.WriteString("=== All Months Summary ===\n")
	b.WriteString("Month       | Total Spent | Expenses | Avg/Expense\n")
	b.WriteString(separator() + "\n")
	for _, m := range o.Months {
		fmt.Fprintf(&b, "%-11s | %11s | %8d | %11s\n",
			monthName(m.Month, "Jan 2006"), f.Money(m.Total), m.Count, f.Money(m.Average))
	}
	b.WriteString(separator() + "\n")
	fmt.Fprintf(&b, "%-11s | %11s | %8d | %11s\n",
		"TOTAL", f.Money(o.Total.Total), o.Total.Count, f.Money(o.Total.Average))
	fmt.Fprintf(&b, "\nHighest spending month: %s (%s)",
		monthName(o.TopMonth, monthHeaderDateLayout), f.Money(o.TopAmount))
	return b.String()
}

func (f Formatter) Month(d MonthDetail, ok bool) string {
	name := monthName(d.Month, monthHeaderDateLayout)
	if !ok {
		return fmt.Sprintf("No expenses found for %s.", name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s Detailed Summary (%s to %s) ===\n", name, d.FirstDay, d.LastDay)
	fmt.Fprintf(&b, "Total Spent: %s\n", f.Money(d.Total))
	fmt.Fprintf(&b, "Number of Expenses: %d\n", d.Count)
	fmt.Fprintf(&b, "Average per Expense: %s\n", f.Money(d.Average))

	b.WriteString("\nCategory Breakdown:")
	for _, c := range d.Categories {
		fmt.Fprintf(&b, "\n - %-15s: %10s (%5.1f%%)", c.Category, f.Money(c.Total), c.Percentage)
	}
	b.WriteString("\n\nDaily Spending:")
	for _, day := range d.Days {
		fmt.Fprintf(&b, "\n - %s (%s): %s", day.Date, day.Weekday.String()[:3], f.Money(day.Total))
	}
	fmt.Fprintf(&b, "\n\nHighest spending day: %s (%s) - %s", d.TopDay, d.TopWeekday, f.Money(d.TopAmount))
	return b.String()
}

func (f Formatter) Years(c YearComparison, ok bool) string {
	if !ok {
		return needTwoYearsMessage
	}
	var b strings.Builder
	b.WriteString("=== Year-over-Year Comparison ===\n")
	header := "Month    "
	for _, y := range c.Years {
		header += fmt.Sprintf("| %-10s", strconv.Itoa(y))
	}
	rule := strings.Repeat("-", len(header))
	b.WriteString(header + "\n" + rule + "\n")
	for _, row := range c.Rows {
		fmt.Fprintf(&b, "%-8s ", row.Month.String()[:3])
		for _, cell := range row.Cells {
			text := missingCell
			if cell.Valid {
				text = f.Currency + cell.Total.StringFixed(0)
			}
			fmt.Fprintf(&b, "| %-10s", text)
		}
		b.WriteString("\n")
	}
	b.WriteString(rule + "\n")
	b.WriteString("TOTAL    ")
	for _, total := range c.Totals {
		fmt.Fprintf(&b, "| %-10s", f.Currency+total.StringFixed(0))
	}
	if g := c.Growth; g != nil {
		fmt.Fprintf(&b, "\n\n%s YoY Growth (%d to %d): %+.1f%%", g.Trend, g.Previous, g.Current, g.Percent)
	}
	return b.String()
}

func (f Formatter) TopMonths(months []MonthStats) string {
	if len(months) == 0 {
		return noMonthlyDataMessage
	}
	lines := []string{"Highest spending months:"}
	for i, m := range months {
		lines = append(lines, fmt.Sprintf("%d. %s: %s (%d expenses)",
			i+1, monthName(m.Month, monthHeaderDateLayout), f.Money(m.Total), m.Count))
	}
	return strings.Join(lines, "\n")
}

func (f Formatter) TopDays(days []DayStats) string {
	if len(days) == 0 {
		return noExpensesMessage
	}
	lines := []string{"Highest spending days:"}
	for i, d := range days {
		lines = append(lines, fmt.Sprintf("%d. %s (%s): %s", i+1, d.Date, d.Weekday, f.Money(d.Total)))
	}
	return strings.Join(lines, "\n")
}
