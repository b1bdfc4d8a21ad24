package mock

import (
	"context"
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/expense-ledger/internal/entity/expense"
)

// StoreMock implements store
type StoreMock struct {
	t minimock.Tester

	funcLoad          func(ctx context.Context) (exps []expense.Expense, err error)
	inspectFuncLoad   func(ctx context.Context)
	afterLoadCounter  uint64
	beforeLoadCounter uint64
	LoadMock          mStoreMockLoad

	funcSave          func(ctx context.Context, exps []expense.Expense) (err error)
	inspectFuncSave   func(ctx context.Context, exps []expense.Expense)
	afterSaveCounter  uint64
	beforeSaveCounter uint64
	SaveMock          mStoreMockSave
}

// NewStoreMock returns a mock for store
func NewStoreMock(t minimock.Tester) *StoreMock {
	m := &StoreMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LoadMock = mStoreMockLoad{mock: m}
	m.SaveMock = mStoreMockSave{mock: m}

	return m
}

type mStoreMockLoad struct {
	mock    *StoreMock
	params  *StoreMockLoadParams
	results *StoreMockLoadResults
}

// StoreMockLoadParams contains parameters of the Store.Load
type StoreMockLoadParams struct {
	ctx context.Context
}

// Expect sets up expected params for Store.Load
func (mmLoad *mStoreMockLoad) Expect(ctx context.Context) *mStoreMockLoad {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Set")
	}

	mmLoad.params = &StoreMockLoadParams{ctx}
	return mmLoad
}

// StoreMockLoadResults contains results of the Store.Load
type StoreMockLoadResults struct {
	exps []expense.Expense
	err  error
}

// Inspect accepts an inspector function that has same arguments as the Store.Load
func (mmLoad *mStoreMockLoad) Inspect(f func(ctx context.Context)) *mStoreMockLoad {
	if mmLoad.mock.inspectFuncLoad != nil {
		mmLoad.mock.t.Fatalf("Inspect function is already set for StoreMock.Load")
	}

	mmLoad.mock.inspectFuncLoad = f

	return mmLoad
}

// Return sets up results that will be returned by Store.Load
func (mmLoad *mStoreMockLoad) Return(exps []expense.Expense, err error) *StoreMock {
	if mmLoad.mock.funcLoad != nil {
		mmLoad.mock.t.Fatalf("StoreMock.Load mock is already set by Set")
	}

	mmLoad.results = &StoreMockLoadResults{exps, err}

	return mmLoad.mock
}

// Set uses given function f to mock the Store.Load method
func (mmLoad *mStoreMockLoad) Set(f func(ctx context.Context) (exps []expense.Expense, err error)) *StoreMock {
	if mmLoad.isConfigured() {
		mmLoad.mock.t.Fatalf("Default expectation is already set for the Store.Load method")
	}

	mmLoad.mock.funcLoad = f
	return mmLoad.mock
}

func (mmLoad *mStoreMockLoad) isConfigured() bool {
	return mmLoad.results != nil
}

// Load implements store
func (mmLoad *StoreMock) Load(ctx context.Context) (exps []expense.Expense, err error) {
	mm_atomic.AddUint64(&mmLoad.beforeLoadCounter, 1)
	defer mm_atomic.AddUint64(&mmLoad.afterLoadCounter, 1)

	if mmLoad.inspectFuncLoad != nil {
		mmLoad.inspectFuncLoad(ctx)
	}

	if mm_want := mmLoad.LoadMock.params; mm_want != nil {
		mm_got := StoreMockLoadParams{ctx}
		if !minimock.Equal(*mm_want, mm_got) {
			mmLoad.t.Errorf("StoreMock.Load got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmLoad.LoadMock.results != nil {
		res := mmLoad.LoadMock.results
		return res.exps, res.err
	}
	if mmLoad.funcLoad != nil {
		return mmLoad.funcLoad(ctx)
	}
	mmLoad.t.Fatalf("Unexpected call to StoreMock.Load. %v", ctx)
	return
}

// LoadAfterCounter returns a count of finished StoreMock.Load invocations
func (mmLoad *StoreMock) LoadAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.afterLoadCounter)
}

// LoadBeforeCounter returns a count of StoreMock.Load invocations
func (mmLoad *StoreMock) LoadBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLoad.beforeLoadCounter)
}

// MinimockLoadDone returns true if the configured method was invoked at least once
func (m *StoreMock) MinimockLoadDone() bool {
	if !m.LoadMock.isConfigured() && m.funcLoad == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterLoadCounter) > 0
}

// MinimockLoadInspect logs each unmet expectation
func (m *StoreMock) MinimockLoadInspect() {
	if !m.MinimockLoadDone() {
		m.t.Errorf("Expected call to StoreMock.Load")
	}
}

type mStoreMockSave struct {
	mock    *StoreMock
	params  *StoreMockSaveParams
	results *StoreMockSaveResults
}

// StoreMockSaveParams contains parameters of the Store.Save
type StoreMockSaveParams struct {
	ctx  context.Context
	exps []expense.Expense
}

// Expect sets up expected params for Store.Save
func (mmSave *mStoreMockSave) Expect(ctx context.Context, exps []expense.Expense) *mStoreMockSave {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Set")
	}

	mmSave.params = &StoreMockSaveParams{ctx, exps}
	return mmSave
}

// StoreMockSaveResults contains results of the Store.Save
type StoreMockSaveResults struct {
	err error
}

// Inspect accepts an inspector function that has same arguments as the Store.Save
func (mmSave *mStoreMockSave) Inspect(f func(ctx context.Context, exps []expense.Expense)) *mStoreMockSave {
	if mmSave.mock.inspectFuncSave != nil {
		mmSave.mock.t.Fatalf("Inspect function is already set for StoreMock.Save")
	}

	mmSave.mock.inspectFuncSave = f

	return mmSave
}

// Return sets up results that will be returned by Store.Save
func (mmSave *mStoreMockSave) Return(err error) *StoreMock {
	if mmSave.mock.funcSave != nil {
		mmSave.mock.t.Fatalf("StoreMock.Save mock is already set by Set")
	}

	mmSave.results = &StoreMockSaveResults{err}

	return mmSave.mock
}

// Set uses given function f to mock the Store.Save method
func (mmSave *mStoreMockSave) Set(f func(ctx context.Context, exps []expense.Expense) (err error)) *StoreMock {
	if mmSave.isConfigured() {
		mmSave.mock.t.Fatalf("Default expectation is already set for the Store.Save method")
	}

	mmSave.mock.funcSave = f
	return mmSave.mock
}

func (mmSave *mStoreMockSave) isConfigured() bool {
	return mmSave.results != nil
}

// Save implements store
func (mmSave *StoreMock) Save(ctx context.Context, exps []expense.Expense) (err error) {
	mm_atomic.AddUint64(&mmSave.beforeSaveCounter, 1)
	defer mm_atomic.AddUint64(&mmSave.afterSaveCounter, 1)

	if mmSave.inspectFuncSave != nil {
		mmSave.inspectFuncSave(ctx, exps)
	}

	if mm_want := mmSave.SaveMock.params; mm_want != nil {
		mm_got := StoreMockSaveParams{ctx, exps}
		if !minimock.Equal(*mm_want, mm_got) {
			mmSave.t.Errorf("StoreMock.Save got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmSave.SaveMock.results != nil {
		res := mmSave.SaveMock.results
		return res.err
	}
	if mmSave.funcSave != nil {
		return mmSave.funcSave(ctx, exps)
	}
	mmSave.t.Fatalf("Unexpected call to StoreMock.Save. %v %v", ctx, exps)
	return
}

// SaveAfterCounter returns a count of finished StoreMock.Save invocations
func (mmSave *StoreMock) SaveAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSave.afterSaveCounter)
}

// SaveBeforeCounter returns a count of StoreMock.Save invocations
func (mmSave *StoreMock) SaveBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSave.beforeSaveCounter)
}

// MinimockSaveDone returns true if the configured method was invoked at least once
func (m *StoreMock) MinimockSaveDone() bool {
	if !m.SaveMock.isConfigured() && m.funcSave == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterSaveCounter) > 0
}

// MinimockSaveInspect logs each unmet expectation
func (m *StoreMock) MinimockSaveInspect() {
	if !m.MinimockSaveDone() {
		m.t.Errorf("Expected call to StoreMock.Save")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *StoreMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockLoadInspect()
		m.MinimockSaveInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *StoreMock) MinimockWait(timeout time.Duration) {
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

func (m *StoreMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockLoadDone() &&
		m.MinimockSaveDone()
}
