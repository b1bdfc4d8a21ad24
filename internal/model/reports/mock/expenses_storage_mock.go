package mock

import (
	"context"
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

// ExpensesStorageMock implements expensesStorage
type ExpensesStorageMock struct {
	t minimock.Tester

	funcLoad          func(ctx context.Context) (exps []expense.Expense, err error)
	inspectFuncLoad   func(ctx context.Context)
	afterLoadCounter  uint64
	beforeLoadCounter uint64
	LoadMock          mExpensesStorageMockLoad
}

// NewExpensesStorageMock returns a mock for expensesStorage
func NewExpensesStorageMock(t minimock.Tester) *ExpensesStorageMock {
	m := &ExpensesStorageMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LoadMock = mExpensesStorageMockLoad{mock: m}

	return m
}

type mExpensesStorageMockLoad struct {
	mock    *ExpensesStorageMock
	params  *ExpensesStorageMockLoadParams
	results *ExpensesStorageMockLoadResults
}

// ExpensesStorageMockLoadParams contains parameters of the ExpensesStorage.Load
type ExpensesStorageMockLoadParams struct {
	ctx context.Context
}

// Expect sets up expected params for ExpensesStorage.Load
func (mmLoad *mExpensesStorageMockLoad) Expect(ctx context.Context) *mExpensesStorageMockLoad {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("ExpensesStorageMock.Load mock is already set by Set")
	}

	mmLoad.params = &ExpensesStorageMockLoadParams{ctx}
	return mmLoad
}

// ExpensesStorageMockLoadResults contains results of the ExpensesStorage.Load
type ExpensesStorageMockLoadResults struct {
	exps []expense.Expense
	err  error
}

// Inspect accepts an inspector function that has same arguments as the ExpensesStorage.Load
func (mmLoad *mExpensesStorageMockLoad) Inspect(f func(ctx context.Context)) *mExpensesStorageMockLoad {
	if mmLoad.mock.inspectFuncLoad != nil {
		mmLoad.mock.t.Fatalf("Inspect function is already set for ExpensesStorageMock.Load")
	}

	mmLoad.mock.inspectFuncLoad = f

	return mmLoad
}

// Return sets up results that will be returned by ExpensesStorage.Load
func (mmLoad *mExpensesStorageMockLoad) Return(exps []expense.Expense, err error) *ExpensesStorageMock {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("ExpensesStorageMock.Load mock is already set by Set")
	}

	mmLoad.results = &ExpensesStorageMockLoadResults{exps, err}

	return mmLoad.mock
}

// Set uses given function f to mock the ExpensesStorage.Load method
func (mmLoad *mExpensesStorageMockLoad) Set(f func(ctx context.Context) (exps []expense.Expense, err error)) *ExpensesStorageMock {
	if mmLoad.isConfigured() {
		mmLoad.mock.t.Fatalf("Default expectation is already set for the ExpensesStorage.Load method")
	}

	mmLoad.mock.funcLoad = f
	return mmLoad.mock
}

func (mmLoad *mExpensesStorageMockLoad) isConfigured() bool {
	return mmLoad.results != nil
}

// Load implements expensesStorage
func (mmLoad *ExpensesStorageMock) Load(ctx context.Context) (exps []expense.Expense, err error) {
	mm_atomic.AddUint64(&mmLoad.beforeLoadCounter, 1)
	defer mm_atomic.AddUint64(&mmLoad.afterLoadCounter, 1)

	if mmLoad.inspectFuncLoad != nil {
		mmLoad.inspectFuncLoad(ctx)
	}

	if mm_want := mmLoad.LoadMock.params; mm_want != nil {
		mm_got := ExpensesStorageMockLoadParams{ctx}
		if !minimock.Equal(*mm_want, mm_got) {
			mmLoad.t.Errorf("ExpensesStorageMock.Load got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmLoad.LoadMock.results != nil {
		res := mmLoad.LoadMock.results
		return res.exps, res.err
	}
	if mmLoad.funcLoad != nil {
		return mmLoad.funcLoad(ctx)
	}
	mmLoad.t.Fatalf("Unexpected call to ExpensesStorageMock.Load. %v", ctx)
	return
}

// LoadAfterCounter returns a count of finished ExpensesStorageMock.Load invocations
func (mmLoad *ExpensesStorageMock) LoadAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.afterLoadCounter)
}

// LoadBeforeCounter returns a count of ExpensesStorageMock.Load invocations
func (mmLoad *ExpensesStorageMock) LoadBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.beforeLoadCounter)
}

// MinimockLoadDone returns true if the configured method was invoked at least once
func (m *ExpensesStorageMock) MinimockLoadDone() bool {
	if !m.LoadMock.isConfigured() && m.funcLoad == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterLoadCounter) > 0
}

// MinimockLoadInspect logs each unmet expectation
func (m *ExpensesStorageMock) MinimockLoadInspect() {
	if !m.MinimockLoadDone() {
		m.t.Errorf("Expected call to ExpensesStorageMock.Load")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ExpensesStorageMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockLoadInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ExpensesStorageMock) MinimockWait(timeout time.Duration) {
	timeoutCh := time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (m *ExpensesStorageMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockLoadDone()
}
