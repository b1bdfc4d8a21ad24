package messages

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/entity/expense"
	"max.ks1230/expense-ledger/internal/logger"
	"max.ks1230/expense-ledger/internal/model/ledger"
	"max.ks1230/expense-ledger/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :( Try /help"
	helloMessage          = "Hello! I keep track of your expenses."
	loveToTalkMessage     = "I would love to talk about it more! Try /help"

	incorrectUsageMessage   = "That is an incorrect command usage:\n"
	incorrectAmountMessage  = "Amount must be a positive number."
	incorrectDateMessage    = "The date is incorrect. Should be YYYY-MM-DD."
	incorrectIDMessage      = "The id must be a positive whole number."
	incorrectMonthMessage   = "Month must be between 1 and 12."
	unknownIDMessage        = "There is no expense with id %d."
	categoryRangeMessage    = "There is no category with that number, see /categories."
	nothingToUpdateMessage  = "Nothing to update, give at least one of amount=, date=, category=, note=."
	cannotSaveMessage       = "Can't save your changes atm. Try later"
	cannotReportMessage     = "Can't build the report atm. Try later"
	reportRequestedTemplate = "Report requested (%s), it will arrive shortly."
)

const defaultTopN = 5

const (
	startCommand      = "/start"
	helpCommand       = "/help"
	addCommand        = "/add"
	listCommand       = "/list"
	updateCommand     = "/update"
	deleteCommand     = "/delete"
	summaryCommand    = "/summary"
	categoriesCommand = "/categories"
	filterCommand     = "/filter"
	monthsCommand     = "/months"
	monthCommand      = "/month"
	yearsCommand      = "/years"
	topCommand        = "/top"
	reportCommand     = "/report"
)

var usages = []string{
	startCommand + " - greeting",
	helpCommand + " - this help",
	addCommand + " <amount> [category] [YYYY-MM-DD] [note...] - record an expense",
	listCommand + " - all expenses by date",
	updateCommand + " <id> [amount=..] [date=..] [category=..] [note=..] - change an expense",
	deleteCommand + " <id> - remove an expense",
	summaryCommand + " - total and spending by category",
	categoriesCommand + " - numbered list of categories",
	filterCommand + " [from=YYYY-MM-DD to=YYYY-MM-DD | month] [category=<number|name>] - filtered expenses",
	monthsCommand + " - spending per month",
	monthCommand + " <year> <month> - one month in detail",
	yearsCommand + " - year over year comparison",
	topCommand + " days|months [n] - highest spending days or months",
	reportCommand + " <" + strings.Join(reports.ReportKinds(), "|") + "> - send a report in the background",
}

func usage(cmd string) string {
	for _, u := range usages {
		if strings.HasPrefix(u, cmd+" ") {
			return u
		}
	}
	return helpCommand
}

type expenseLedger interface {
	Add(ctx context.Context, in ledger.NewExpense) (expense.Expense, error)
	Update(ctx context.Context, id int64, ch ledger.Changes) (expense.Expense, error)
	Delete(ctx context.Context, id int64) (expense.Expense, error)
	Expenses(ctx context.Context) []expense.Expense
	Today() expense.Date
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, kind string) (string, error)
	Formatter() reports.Formatter
}

type reportRequester interface {
	RequestReport(ctx context.Context, chatID int64, kind string) (uuid.UUID, error)
}

type handler func(ctx context.Context, arg string, chatID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	ledger      expenseLedger
	generator   reportGenerator
	requester   reportRequester
}

// NewHandler builds the command handler. Without a requester /report is
// answered synchronously.
func NewHandler(ledger expenseLedger, generator reportGenerator, requester reportRequester) *HandlerService {
	res := &HandlerService{
		ledger:    ledger,
		generator: generator,
		requester: requester,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, chatID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, chatID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[addCommand] = s.handleAdd
	m[updateCommand] = s.handleUpdate
	m[deleteCommand] = s.handleDelete
	m[filterCommand] = s.handleFilter
	m[monthCommand] = s.handleMonth
	m[topCommand] = s.handleTop
	m[reportCommand] = s.handleReport

	m[listCommand] = s.cachedReport(reports.KindList)
	m[summaryCommand] = s.cachedReport(reports.KindSummary)
	m[categoriesCommand] = s.cachedReport(reports.KindCategories)
	m[monthsCommand] = s.cachedReport(reports.KindMonths)
	m[yearsCommand] = s.cachedReport(reports.KindYears)

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage + "\n\n" + strings.Join(usages, "\n"), nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ int64) (string, error) {
	return strings.Join(usages, "\n"), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) cachedReport(kind string) handler {
	return func(ctx context.Context, _ string, _ int64) (string, error) {
		report, err := s.generator.GenerateReport(ctx, kind)
		if err != nil {
			return cannotReportMessage, errors.Wrapf(err, "handle %s", kind)
		}
		return report, nil
	}
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 {
		return incorrectUsageMessage + usage(addCommand), nil
	}

	amount, err := parseAmount(args[0])
	if err != nil {
		return incorrectAmountMessage, nil
	}
	in := ledger.NewExpense{Amount: amount}
	rest := args[1:]
	if len(rest) > 0 && !looksLikeDate(rest[0]) {
		in.Category, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 && looksLikeDate(rest[0]) {
		if in.Date, err = expense.ParseDate(rest[0]); err != nil {
			return incorrectDateMessage, nil
		}
		rest = rest[1:]
	}
	in.Note = strings.Join(rest, " ")

	rec, err := s.ledger.Add(ctx, in)
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "handle add")
	}
	return fmt.Sprintf("Added #%d: %s on %s in %s",
		rec.ID, s.generator.Formatter().Money(rec.Amount), rec.Date, rec.Category), nil
}

func (s *HandlerService) handleUpdate(ctx context.Context, arg string, _ int64) (string, error) {
	idArg, rest, _ := strings.Cut(arg, " ")
	if idArg == "" {
		return incorrectUsageMessage + usage(updateCommand), nil
	}
	id, err := parseID(idArg)
	if err != nil {
		return incorrectIDMessage, nil
	}
	kv, err := parseKeyValues(rest)
	if err != nil {
		return incorrectUsageMessage + usage(updateCommand), nil
	}

	ch, msg := changesFrom(kv)
	if msg != "" {
		return msg, nil
	}
	if ch.IsEmpty() {
		return nothingToUpdateMessage, nil
	}

	rec, err := s.ledger.Update(ctx, id, ch)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return fmt.Sprintf(unknownIDMessage, id), nil
	case errors.Is(err, expense.ErrInvalidAmount):
		return incorrectAmountMessage, nil
	case err != nil:
		return cannotSaveMessage, errors.Wrap(err, "handle update")
	}
	return fmt.Sprintf("Updated #%d: %s on %s in %s",
		rec.ID, s.generator.Formatter().Money(rec.Amount), rec.Date, rec.Category), nil
}

// changesFrom returns a user-facing message when a value is malformed.
func changesFrom(kv map[string]string) (ledger.Changes, string) {
	var ch ledger.Changes
	for k, v := range kv {
		switch k {
		case "amount":
			amount, err := decimal.NewFromString(v)
			if err != nil {
				return ch, incorrectAmountMessage
			}
			ch.Amount = &amount
		case "date":
			date, err := expense.ParseDate(v)
			if err != nil {
				return ch, incorrectDateMessage
			}
			ch.Date = &date
		case "category":
			category := v
			ch.Category = &category
		case "note":
			note := v
			ch.Note = &note
		default:
			return ch, incorrectUsageMessage + usage(updateCommand)
		}
	}
	return ch, ""
}

func (s *HandlerService) handleDelete(ctx context.Context, arg string, _ int64) (string, error) {
	if arg == "" {
		return incorrectUsageMessage + usage(deleteCommand), nil
	}
	id, err := parseID(arg)
	if err != nil {
		return incorrectIDMessage, nil
	}

	rec, err := s.ledger.Delete(ctx, id)
	if errors.Is(err, ledger.ErrNotFound) {
		return fmt.Sprintf(unknownIDMessage, id), nil
	}
	if err != nil {
		return cannotSaveMessage, errors.Wrap(err, "handle delete")
	}
	return fmt.Sprintf("Deleted #%d (%s, %s).", rec.ID, rec.Date, rec.Category), nil
}

func (s *HandlerService) handleFilter(ctx context.Context, arg string, _ int64) (string, error) {
	var criteria reports.Criteria

	fields := strings.Fields(arg)
	if len(fields) > 0 && strings.EqualFold(fields[0], "month") {
		today := now.With(s.ledger.Today().Time())
		criteria.Range = &reports.DateRange{
			Start: expense.DateOf(today.BeginningOfMonth()),
			End:   expense.DateOf(today.EndOfMonth()),
		}
		arg = strings.Join(fields[1:], " ")
	}

	kv, err := parseKeyValues(arg)
	if err != nil {
		return incorrectUsageMessage + usage(filterCommand), nil
	}
	from, hasFrom := kv["from"]
	to, hasTo := kv["to"]
	if hasFrom != hasTo || (hasFrom && criteria.Range != nil) {
		return incorrectUsageMessage + usage(filterCommand), nil
	}
	if hasFrom {
		r, err := reports.ParseDateRange(from, to)
		if err != nil {
			return incorrectDateMessage, nil
		}
		criteria.Range = &r
	}
	criteria.Category = kv["category"]
	for k := range kv {
		if k != "from" && k != "to" && k != "category" {
			return incorrectUsageMessage + usage(filterCommand), nil
		}
	}

	res, ok, err := reports.Filter(s.ledger.Expenses(ctx), criteria)
	if errors.Is(err, reports.ErrCategoryIndexOutOfRange) {
		return categoryRangeMessage, nil
	}
	if err != nil {
		return cannotReportMessage, errors.Wrap(err, "handle filter")
	}
	return s.generator.Formatter().Filtered(res, ok), nil
}

func (s *HandlerService) handleMonth(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) != 2 {
		return incorrectUsageMessage + usage(monthCommand), nil
	}
	year, yErr := strconv.Atoi(args[0])
	month, mErr := strconv.Atoi(args[1])
	if yErr != nil || mErr != nil {
		return incorrectUsageMessage + usage(monthCommand), nil
	}

	detail, ok, err := reports.MonthSummary(s.ledger.Expenses(ctx), year, month)
	if errors.Is(err, reports.ErrInvalidMonth) {
		return incorrectMonthMessage, nil
	}
	if err != nil {
		return cannotReportMessage, errors.Wrap(err, "handle month")
	}
	return s.generator.Formatter().Month(detail, ok), nil
}

func (s *HandlerService) handleTop(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	if len(args) == 0 || len(args) > 2 {
		return incorrectUsageMessage + usage(topCommand), nil
	}
	n := defaultTopN
	if len(args) == 2 {
		var err error
		if n, err = strconv.Atoi(args[1]); err != nil || n <= 0 {
			return incorrectUsageMessage + usage(topCommand), nil
		}
	}

	f := s.generator.Formatter()
	switch strings.ToLower(args[0]) {
	case "days":
		return f.TopDays(reports.TopDays(s.ledger.Expenses(ctx), n)), nil
	case "months":
		return f.TopMonths(reports.TopMonths(s.ledger.Expenses(ctx), n)), nil
	}
	return incorrectUsageMessage + usage(topCommand), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, chatID int64) (string, error) {
	kind := strings.ToLower(strings.TrimSpace(arg))
	if !slices.Contains(reports.ReportKinds(), kind) {
		return incorrectUsageMessage + usage(reportCommand), nil
	}
	if s.requester == nil {
		return s.cachedReport(kind)(ctx, "", chatID)
	}

	id, err := s.requester.RequestReport(ctx, chatID, kind)
	if err != nil {
		logger.Error("report request failed, answering inline", zap.Error(err))
		return s.cachedReport(kind)(ctx, "", chatID)
	}
	return fmt.Sprintf(reportRequestedTemplate, id), nil
}
