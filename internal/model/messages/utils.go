package messages

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

const commandParts = 2

var errBadID = errors.New("id must be a positive integer")

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	if len(split) == commandParts {
		return strings.ToLower(split[0]), strings.TrimSpace(split[1])
	}
	return strings.ToLower(text), ""
}

// parseKeyValues reads "k1=v1 k2=some words". A value runs until the next
// token that carries a key, so notes may contain spaces.
func parseKeyValues(arg string) (map[string]string, error) {
	res := make(map[string]string)
	var key string
	for _, tok := range strings.Fields(arg) {
		if k, v, found := strings.Cut(tok, "="); found && k != "" {
			key = strings.ToLower(k)
			if _, dup := res[key]; dup {
				return nil, errors.Errorf("%s is given twice", key)
			}
			res[key] = v
			continue
		}
		if key == "" {
			return nil, errors.Errorf("unexpected %q, expected key=value", tok)
		}
		res[key] = strings.TrimSpace(res[key] + " " + tok)
	}
	return res, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(errBadID, "got %q", s)
	}
	return id, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, errors.Wrapf(expense.ErrInvalidAmount, "cannot parse %q", s)
	}
	return amount, expense.ValidateAmount(amount)
}

// looksLikeDate tells a date argument apart from a note word.
func looksLikeDate(s string) bool {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return false
	}
	return strings.Count(s, "-") == 2
}
