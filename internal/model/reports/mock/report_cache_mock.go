package mock

import (
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportCacheMock implements reportCache
type ReportCacheMock struct {
	t minimock.Tester

	funcGetReport          func(kind string) (report string, err error)
	inspectFuncGetReport   func(kind string)
	afterGetReportCounter  uint64
	beforeGetReportCounter uint64
	GetReportMock          mReportCacheMockGetReport

	funcCacheReport          func(kind string, report string) (err error)
	inspectFuncCacheReport   func(kind string, report string)
	afterCacheReportCounter  uint64
	beforeCacheReportCounter uint64
	CacheReportMock          mReportCacheMockCacheReport
}

// NewReportCacheMock returns a mock for reportCache
func NewReportCacheMock(t minimock.Tester) *ReportCacheMock {
	m := &ReportCacheMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GetReportMock = mReportCacheMockGetReport{mock: m}
	m.CacheReportMock = mReportCacheMockCacheReport{mock: m}

	return m
}

type mReportCacheMockGetReport struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockGetReportParams
	results *ReportCacheMockGetReportResults
}

// ReportCacheMockGetReportParams contains parameters of the ReportCache.GetReport
type ReportCacheMockGetReportParams struct {
	kind string
}

// Expect sets up expected params for ReportCache.GetReport
func (mmGetReport *mReportCacheMockGetReport) Expect(kind string) *mReportCacheMockGetReport {
	if mmGetReport.mock.funcGetReport != nil {
		mmGetReport.mock.t.Fatalf("ReportCacheMock.GetReport mock is already set by Set")
	}

	mmGetReport.params = &ReportCacheMockGetReportParams{kind}
	return mmGetReport
}

// ReportCacheMockGetReportResults contains results of the ReportCache.GetReport
type ReportCacheMockGetReportResults struct {
	report string
	err    error
}

// Inspect accepts an inspector function that has same arguments as the ReportCache.GetReport
func (mmGetReport *mReportCacheMockGetReport) Inspect(f func(kind string)) *mReportCacheMockGetReport {
	if mmGetReport.mock.inspectFuncGetReport != nil {
		mmGetReport.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.GetReport")
	}

	mmGetReport.mock.inspectFuncGetReport = f

	return mmGetReport
}

// Return sets up results that will be returned by ReportCache.GetReport
func (mmGetReport *mReportCacheMockGetReport) Return(report string, err error) *ReportCacheMock {
	if mmGetReport.mock.funcGetReport != nil {
		mmGetReport.mock.t.Fatalf("ReportCacheMock.GetReport mock is already set by Set")
	}

	mmGetReport.results = &ReportCacheMockGetReportResults{report, err}

	return mmGetReport.mock
}

// Set uses given function f to mock the ReportCache.GetReport method
func (mmGetReport *mReportCacheMockGetReport) Set(f func(kind string) (report string, err error)) *ReportCacheMock {
	if mmGetReport.isConfigured() {
		mmGetReport.mock.t.Fatalf("Default expectation is already set for the ReportCache.GetReport method")
	}

	mmGetReport.mock.funcGetReport = f
	return mmGetReport.mock
}

func (mmGetReport *mReportCacheMockGetReport) isConfigured() bool {
	return mmGetReport.results != nil
}

// GetReport implements reportCache
func (mmGetReport *ReportCacheMock) GetReport(kind string) (report string, err error) {
	mm_atomic.AddUint64(&mmGetReport.beforeGetReportCounter, 1)
	defer mm_atomic.AddUint64(&mmGetReport.afterGetReportCounter, 1)

	if mmGetReport.inspectFuncGetReport != nil {
		mmGetReport.inspectFuncGetReport(kind)
	}

	if mm_want := mmGetReport.GetReportMock.params; mm_want != nil {
		mm_got := ReportCacheMockGetReportParams{kind}
		if !minimock.Equal(*mm_want, mm_got) {
			mmGetReport.t.Errorf("ReportCacheMock.GetReport got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmGetReport.GetReportMock.results != nil {
		res := mmGetReport.GetReportMock.results
		return res.report, res.err
	}
	if mmGetReport.funcGetReport != nil {
		return mmGetReport.funcGetReport(kind)
	}
	mmGetReport.t.Fatalf("Unexpected call to ReportCacheMock.GetReport. %v", kind)
	return
}

// GetReportAfterCounter returns a count of finished ReportCacheMock.GetReport invocations
func (mmGetReport *ReportCacheMock) GetReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetReport.afterGetReportCounter)
}

// GetReportBeforeCounter returns a count of ReportCacheMock.GetReport invocations
func (mmGetReport *ReportCacheMock) GetReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetReport.beforeGetReportCounter)
}

// MinimockGetReportDone returns true if the configured method was invoked at least once
func (m *ReportCacheMock) MinimockGetReportDone() bool {
	if !m.GetReportMock.isConfigured() && m.funcGetReport == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterGetReportCounter) > 0
}

// MinimockGetReportInspect logs each unmet expectation
func (m *ReportCacheMock) MinimockGetReportInspect() {
	if !m.MinimockGetReportDone() {
		m.t.Errorf("Expected call to ReportCacheMock.GetReport")
	}
}

type mReportCacheMockCacheReport struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockCacheReportParams
	results *ReportCacheMockCacheReportResults
}

// ReportCacheMockCacheReportParams contains parameters of the ReportCache.CacheReport
type ReportCacheMockCacheReportParams struct {
	kind   string
	report string
}

// Expect sets up expected params for ReportCache.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Expect(kind string, report string) *mReportCacheMockCacheReport {
	if mmCacheReport.mock.funcCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("ReportCacheMock.CacheReport mock is already set by Set")
	}

	mmCacheReport.params = &ReportCacheMockCacheReportParams{kind, report}
	return mmCacheReport
}

// ReportCacheMockCacheReportResults contains results of the ReportCache.CacheReport
type ReportCacheMockCacheReportResults struct {
	err error
}

// Inspect accepts an inspector function that has same arguments as the ReportCache.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Inspect(f func(kind string, report string)) *mReportCacheMockCacheReport {
	if mmCacheReport.mock.inspectFuncCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.CacheReport")
	}

	mmCacheReport.mock.inspectFuncCacheReport = f

	return mmCacheReport
}

// Return sets up results that will be returned by ReportCache.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Return(err error) *ReportCacheMock {
	if mmCacheReport.mock.funcCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("ReportCacheMock.CacheReport mock is already set by Set")
	}

	mmCacheReport.results = &ReportCacheMockCacheReportResults{err}

	return mmCacheReport.mock
}

// Set uses given function f to mock the ReportCache.CacheReport method
func (mmCacheReport *mReportCacheMockCacheReport) Set(f func(kind string, report string) (err error)) *ReportCacheMock {
	if mmCacheReport.isConfigured() {
		mmCacheReport.mock.t.Fatalf("Default expectation is already set for the ReportCache.CacheReport method")
	}

	mmCacheReport.mock.funcCacheReport = f
	return mmCacheReport.mock
}

func (mmCacheReport *mReportCacheMockCacheReport) isConfigured() bool {
	return mmCacheReport.results != nil
}

// CacheReport implements reportCache
func (mmCacheReport *ReportCacheMock) CacheReport(kind string, report string) (err error) {
	mm_atomic.AddUint64(&mmCacheReport.beforeCacheReportCounter, 1)
	defer mm_atomic.AddUint64(&mmCacheReport.afterCacheReportCounter, 1)

	if mmCacheReport.inspectFuncCacheReport != nil {
		mmCacheReport.inspectFuncCacheReport(kind, report)
	}

	if mm_want := mmCacheReport.CacheReportMock.params; mm_want != nil {
		mm_got := ReportCacheMockCacheReportParams{kind, report}
		if !minimock.Equal(*mm_want, mm_got) {
			mmCacheReport.t.Errorf("ReportCacheMock.CacheReport got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmCacheReport.CacheReportMock.results != nil {
		res := mmCacheReport.CacheReportMock.results
		return res.err
	}
	if mmCacheReport.funcCacheReport != nil {
		return mmCacheReport.funcCacheReport(kind, report)
	}
	mmCacheReport.t.Fatalf("Unexpected call to ReportCacheMock.CacheReport. %v %v", kind, report)
	return
}

// CacheReportAfterCounter returns a count of finished ReportCacheMock.CacheReport invocations
func (mmCacheReport *ReportCacheMock) CacheReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCacheReport.afterCacheReportCounter)
}

// CacheReportBeforeCounter returns a count of ReportCacheMock.CacheReport invocations
func (mmCacheReport *ReportCacheMock) CacheReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCacheReport.beforeCacheReportCounter)
}

// MinimockCacheReportDone returns true if the configured method was invoked at least once
func (m *ReportCacheMock) MinimockCacheReportDone() bool {
	if !m.CacheReportMock.isConfigured() && m.funcCacheReport == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterCacheReportCounter) > 0
}

// MinimockCacheReportInspect logs each unmet expectation
func (m *ReportCacheMock) MinimockCacheReportInspect() {
	if !m.MinimockCacheReportDone() {
		m.t.Errorf("Expected call to ReportCacheMock.CacheReport")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ReportCacheMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockGetReportInspect()
		m.MinimockCacheReportInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ReportCacheMock) MinimockWait(timeout time.Duration) {
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

func (m *ReportCacheMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockGetReportDone() &&
		m.MinimockCacheReportDone()
}
