package reports

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnFiltered_ShouldPrintTotalOnce(t *testing.T) {
	res, ok, err := Filter(sample(t), Criteria{Category: "food"})
	require.NoError(t, err)
	require.True(t, ok)

	out := NewFormatter("$").Filtered(res, ok)

	assert.True(t, strings.HasPrefix(out, "Filtered Expenses:\nID | Date"))
	assert.Equal(t, 1, strings.Count(out, "Total:"))
	assert.NotContains(t, out, "Total Spent")
	assert.Contains(t, out, "-\nFiltered Total: $150.00")
	assert.Contains(t, out, "Category Breakdown:\n - Food: $150.00")
}

func Test_OnExpenses_ShouldEndWithTotal(t *testing.T) {
	out := NewFormatter("$").Expenses(sample(t))

	assert.True(t, strings.HasSuffix(out, "-\nTotal Spent: $350.00"))
	assert.Equal(t, noExpensesMessage, NewFormatter("$").Expenses(nil))
}
