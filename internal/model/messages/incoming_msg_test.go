package messages

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/model/ledger"
	ledgermock "max.ks1230/expense-ledger/internal/model/ledger/mock"
	"max.ks1230/expense-ledger/internal/model/messages/mock"
	"max.ks1230/expense-ledger/internal/model/reports"
	reportsmock "max.ks1230/expense-ledger/internal/model/reports/mock"
	"max.ks1230/expense-ledger/internal/model/storage"
)

const chatID = int64(123)

type expenseStore interface {
	Load(ctx context.Context) ([]expense.Expense, error)
	Save(ctx context.Context, exps []expense.Expense) error
}

type brokenStore struct{}

func (brokenStore) Load(context.Context) ([]expense.Expense, error) {
	return nil, errors.New("disk is on fire")
}

func (brokenStore) Save(context.Context, []expense.Expense) error {
	return errors.New("disk is on fire")
}

func seed() []expense.Expense {
	return []expense.Expense{
		{ID: 1, Amount: decimal.NewFromInt(100), Date: expense.NewDate(2024, 1, 5), Category: "Food", Note: "groceries"},
		{ID: 2, Amount: decimal.NewFromInt(50), Date: expense.NewDate(2024, 1, 20), Category: "Food"},
		{ID: 3, Amount: decimal.NewFromInt(200), Date: expense.NewDate(2024, 2, 1), Category: "Rent"},
	}
}

func newHandlerWith(m minimock.Tester, st expenseStore, requester reportRequester) *HandlerService {
	ledgerCfg := ledgermock.NewConfigMock(m)
	ledgerCfg.LocationMock.Return(time.UTC)
	reportsCfg := reportsmock.NewConfigMock(m)
	reportsCfg.CurrencySymbolMock.Return("₹")

	return NewHandler(ledger.NewService(ledgerCfg, st, nil), reports.NewGenerator(reportsCfg, st, nil), requester)
}

func handle(t *testing.T, h *HandlerService, text string) string {
	t.Helper()
	resp, err := h.HandleMessage(context.Background(), text, chatID)
	require.NoError(t, err)
	return resp
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Set(func(text string, id int64) error {
		assert.True(t, strings.HasPrefix(text, helloMessage))
		assert.Contains(t, text, "/add <amount>")
		assert.Equal(t, chatID, id)
		return nil
	})

	model := NewService(sender, newHandlerWith(m, storage.NewInMemStorage(), nil))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/start", ChatID: chatID})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(dontUnderstandMessage, chatID).Return(nil)

	model := NewService(sender, newHandlerWith(m, storage.NewInMemStorage(), nil))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/none", ChatID: chatID})

	assert.NoError(t, err)
}

func Test_OnPlainText_ShouldInviteToTalk(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	h := newHandlerWith(m, storage.NewInMemStorage(), nil)

	assert.Equal(t, loveToTalkMessage, handle(t, h, "how much did I spend?"))
}

func Test_OnBrokenStore_ShouldApologizeAndFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)

	sender.SendMessageMock.Expect(failureMessage+cannotSaveMessage, chatID).Return(nil)

	model := NewService(sender, newHandlerWith(m, brokenStore{}, nil))
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/add 10", ChatID: chatID})

	assert.Error(t, err)
}

func Test_OnAddCommand_ShouldStoreExpense(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := storage.NewInMemStorage()
	h := newHandlerWith(m, st, nil)

	resp := handle(t, h, "/add 12.50 Food 2024-01-05 weekly groceries")

	assert.Equal(t, "Added #1: ₹12.50 on 2024-01-05 in Food", resp)
	exps, _ := st.Load(context.Background())
	require.Len(t, exps, 1)
	assert.Equal(t, "weekly groceries", exps[0].Note)
	assert.True(t, exps[0].Amount.Equal(decimal.RequireFromString("12.5")))
}

func Test_OnAddWithDateAfterAmount_ShouldUseDefaultCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := storage.NewInMemStorage()
	h := newHandlerWith(m, st, nil)

	resp := handle(t, h, "/add 10 2024-01-05 lunch")

	assert.Equal(t, "Added #1: ₹10.00 on 2024-01-05 in General", resp)
	exps, _ := st.Load(context.Background())
	require.Len(t, exps, 1)
	assert.Equal(t, expense.NewDate(2024, 1, 5), exps[0].Date)
	assert.Equal(t, expense.DefaultCategory, exps[0].Category)
	assert.Equal(t, "lunch", exps[0].Note)

	assert.Equal(t, incorrectDateMessage, handle(t, h, "/add 10 2024-02-30 lunch"))
}

func Test_OnAddWithoutDate_ShouldTreatRestAsNote(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := storage.NewInMemStorage(seed()...)
	h := newHandlerWith(m, st, nil)

	resp := handle(t, h, "/add 7 coffee with friends")

	assert.True(t, strings.HasPrefix(resp, "Added #4: ₹7.00 on "))
	exps, _ := st.Load(context.Background())
	require.Len(t, exps, 4)
	assert.Equal(t, "coffee", exps[3].Category)
	assert.Equal(t, "with friends", exps[3].Note)
	assert.False(t, exps[3].Date.IsZero())
}

func Test_OnAddWithBadInput_ShouldExplain(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := storage.NewInMemStorage()
	h := newHandlerWith(m, st, nil)

	assert.Equal(t, incorrectAmountMessage, handle(t, h, "/add -3 Food"))
	assert.Equal(t, incorrectAmountMessage, handle(t, h, "/add 0"))
	assert.Equal(t, incorrectAmountMessage, handle(t, h, "/add lots"))
	assert.Equal(t, incorrectDateMessage, handle(t, h, "/add 5 Food 2024-02-30"))
	assert.Equal(t, incorrectUsageMessage+usage(addCommand), handle(t, h, "/add"))

	exps, _ := st.Load(context.Background())
	assert.Empty(t, exps)
}

func Test_OnUpdateCommand_ShouldChangeGivenFields(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	st := storage.NewInMemStorage(seed()...)
	h := newHandlerWith(m, st, nil)

	resp := handle(t, h, "/update 1 amount=20 note=weekly market run")

	assert.Equal(t, "Updated #1: ₹20.00 on 2024-01-05 in Food", resp)
	exps, _ := st.Load(context.Background())
	assert.Equal(t, "weekly market run", exps[0].Note)
	assert.True(t, exps[0].Amount.Equal(decimal.NewFromInt(20)))
}

func Test_OnUpdateWithBadInput_ShouldExplain(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	assert.Equal(t, "There is no expense with id 9.", handle(t, h, "/update 9 amount=1"))
	assert.Equal(t, incorrectIDMessage, handle(t, h, "/update x amount=1"))
	assert.Equal(t, nothingToUpdateMessage, handle(t, h, "/update 1"))
	assert.Equal(t, incorrectAmountMessage, handle(t, h, "/update 1 amount=0"))
	assert.Equal(t, incorrectDateMessage, handle(t, h, "/update 1 date=05.01.2024"))
	assert.Equal(t, incorrectUsageMessage+usage(updateCommand), handle(t, h, "/update 1 colour=red"))
}

func Test_OnDeleteCommand_ShouldRemoveOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	assert.Equal(t, "Deleted #1 (2024-01-05, Food).", handle(t, h, "/delete 1"))
	assert.Equal(t, "There is no expense with id 1.", handle(t, h, "/delete 1"))
	assert.Equal(t, incorrectIDMessage, handle(t, h, "/delete -1"))
}

func Test_OnFilterCommand_ShouldCombineRangeAndCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	resp := handle(t, h, "/filter from=2024-01-01 to=2024-01-31 category=1")

	assert.True(t, strings.HasPrefix(resp, "Filtered Expenses:"))
	assert.Contains(t, resp, "Filtered Total: ₹150.00")
	assert.NotContains(t, resp, "Total Spent")
	assert.Contains(t, resp, " - Food: ₹150.00")
	assert.NotContains(t, resp, "Rent")
}

func Test_OnFilterWithBadInput_ShouldExplain(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	assert.Equal(t, categoryRangeMessage, handle(t, h, "/filter category=9"))
	assert.Equal(t, incorrectUsageMessage+usage(filterCommand), handle(t, h, "/filter from=2024-01-01"))
	assert.Equal(t, incorrectDateMessage, handle(t, h, "/filter from=2024-01-01 to=2024-13-01"))
	assert.Equal(t, "No expenses found matching the criteria.", handle(t, h, "/filter from=2023-01-01 to=2023-12-31 category=9"))
}

func Test_OnMonthCommand_ShouldValidateMonth(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	assert.Equal(t, incorrectMonthMessage, handle(t, h, "/month 2024 13"))
	assert.Equal(t, incorrectUsageMessage+usage(monthCommand), handle(t, h, "/month 2024"))
	assert.Contains(t, handle(t, h, "/month 2024 1"), "January 2024 Detailed Summary (2024-01-01 to 2024-01-31)")
}

func Test_OnTopCommand_ShouldRankMonths(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	assert.Equal(t,
		"Highest spending months:\n1. February 2024: ₹200.00 (1 expenses)",
		handle(t, h, "/top months 1"))
	assert.Contains(t, handle(t, h, "/top days"), "1. 2024-02-01 (Thursday): ₹200.00")
	assert.Equal(t, incorrectUsageMessage+usage(topCommand), handle(t, h, "/top weeks"))
}

func Test_OnReportWithRequester_ShouldEnqueue(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	requester := mock.NewReportRequesterMock(m)
	id := uuid.New()

	requester.RequestReportMock.Set(func(_ context.Context, chat int64, kind string) (uuid.UUID, error) {
		assert.Equal(t, chatID, chat)
		assert.Equal(t, reports.KindMonths, kind)
		return id, nil
	})

	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), requester)

	assert.Contains(t, handle(t, h, "/report months"), id.String())
	assert.Equal(t, incorrectUsageMessage+usage(reportCommand), handle(t, h, "/report weekly"))
}

func Test_OnReportWithoutRequester_ShouldAnswerInline(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	assert.Equal(t, handle(t, h, "/summary"), handle(t, h, "/report summary"))
	assert.Contains(t, handle(t, h, "/summary"), "Total Spent: ₹350.00")
}

func Test_OnListCommand_ShouldShowTotal(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	h := newHandlerWith(m, storage.NewInMemStorage(seed()...), nil)

	resp := handle(t, h, "/list")

	assert.Contains(t, resp, "Total Spent: ₹350.00")
	assert.Equal(t, "Available categories:\n1. Food\n2. Rent", handle(t, h, "/categories"))
}
