package expense

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned when a record is created without one.
const DefaultCategory = "General"

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrEmptyCategory = errors.New("category must not be empty")
)

type Expense struct {
	ID       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Date     Date            `json:"date"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
}

func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.Wrapf(ErrInvalidAmount, "got %s", amount.String())
	}
	return nil
}

func (e Expense) Validate() error {
	if e.ID <= 0 {
		return errors.Errorf("expense id must be positive, got %d", e.ID)
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	if e.Date.IsZero() {
		return errors.Wrap(ErrInvalidDate, "date is not set")
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	return nil
}

// NormalizeCategory trims the input and falls back to DefaultCategory.
// Stored casing is preserved.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}

// CategoryKey is the case-folded form used for every category comparison.
func CategoryKey(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

func SameCategory(a, b string) bool {
	return CategoryKey(a) == CategoryKey(b)
}

// NextID returns 1 for an empty collection, max(id)+1 otherwise.
func NextID(exps []Expense) int64 {
	var max int64
	for _, e := range exps {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

func Total(exps []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range exps {
		total = total.Add(e.Amount)
	}
	return total
}
