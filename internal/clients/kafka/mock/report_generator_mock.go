package mock

import (
	"context"
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportGeneratorMock implements reportGenerator
type ReportGeneratorMock struct {
	t minimock.Tester

	funcGenerateReport          func(ctx context.Context, kind string) (s1 string, err error)
	inspectFuncGenerateReport   func(ctx context.Context, kind string)
	afterGenerateReportCounter  uint64
	beforeGenerateReportCounter uint64
	GenerateReportMock          mReportGeneratorMockGenerateReport
}

// NewReportGeneratorMock returns a mock for reportGenerator
func NewReportGeneratorMock(t minimock.Tester) *ReportGeneratorMock {
	m := &ReportGeneratorMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.GenerateReportMock = mReportGeneratorMockGenerateReport{mock: m}

	return m
}

type mReportGeneratorMockGenerateReport struct {
	mock    *ReportGeneratorMock
	params  *ReportGeneratorMockGenerateReportParams
	results *ReportGeneratorMockGenerateReportResults
}

// ReportGeneratorMockGenerateReportParams contains parameters of the ReportGenerator.GenerateReport
type ReportGeneratorMockGenerateReportParams struct {
	ctx  context.Context
	kind string
}

// Expect sets up expected params for ReportGenerator.GenerateReport
func (mmGenerateReport *mReportGeneratorMockGenerateReport) Expect(ctx context.Context, kind string) *mReportGeneratorMockGenerateReport {
	if mmGenerateReport.mock.funcGenerateReport != nil {
		mmGenerateReport.mock.t.Fatalf("ReportGeneratorMock.GenerateReport mock is already set by Set")
	}

	mmGenerateReport.params = &ReportGeneratorMockGenerateReportParams{ctx, kind}
	return mmGenerateReport
}

// ReportGeneratorMockGenerateReportResults contains results of the ReportGenerator.GenerateReport
type ReportGeneratorMockGenerateReportResults struct {
	s1  string
	err error
}

// Inspect accepts an inspector function that has same arguments as the ReportGenerator.GenerateReport
func (mmGenerateReport *mReportGeneratorMockGenerateReport) Inspect(f func(ctx context.Context, kind string)) *mReportGeneratorMockGenerateReport {
	if mmGenerateReport.mock.inspectFuncGenerateReport != nil {
		mmGenerateReport.mock.t.Fatalf("Inspect function is already set for ReportGeneratorMock.GenerateReport")
	}

	mmGenerateReport.mock.inspectFuncGenerateReport = f

	return mmGenerateReport
}

// Return sets up results that will be returned by ReportGenerator.GenerateReport
func (mmGenerateReport *mReportGeneratorMockGenerateReport) Return(s1 string, err error) *ReportGeneratorMock {
	if mmGenerateReport.mock.funcGenerateReport != nil {
		mmGenerateReport.mock.t.Fatalf("ReportGeneratorMock.GenerateReport mock is already set by Set")
	}

	mmGenerateReport.results = &ReportGeneratorMockGenerateReportResults{s1, err}

	return mmGenerateReport.mock
}

// Set uses given function f to mock the ReportGenerator.GenerateReport method
func (mmGenerateReport *mReportGeneratorMockGenerateReport) Set(f func(ctx context.Context, kind string) (s1 string, err error)) *ReportGeneratorMock {
	if mmGenerateReport.isConfigured() {
		mmGenerateReport.mock.t.Fatalf("Default expectation is already set for the ReportGenerator.GenerateReport method")
	}

	mmGenerateReport.mock.funcGenerateReport = f
	return mmGenerateReport.mock
}

func (mmGenerateReport *mReportGeneratorMockGenerateReport) isConfigured() bool {
	return mmGenerateReport.results != nil
}

// GenerateReport implements reportGenerator
func (mmGenerateReport *ReportGeneratorMock) GenerateReport(ctx context.Context, kind string) (s1 string, err error) {
	mm_atomic.AddUint64(&mmGenerateReport.beforeGenerateReportCounter, 1)
	defer mm_atomic.AddUint64(&mmGenerateReport.afterGenerateReportCounter, 1)

	if mmGenerateReport.inspectFuncGenerateReport != nil {
		mmGenerateReport.inspectFuncGenerateReport(ctx, kind)
	}

	if mm_want := mmGenerateReport.GenerateReportMock.params; mm_want != nil {
		mm_got := ReportGeneratorMockGenerateReportParams{ctx, kind}
		if !minimock.Equal(*mm_want, mm_got) {
			mmGenerateReport.t.Errorf("ReportGeneratorMock.GenerateReport got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmGenerateReport.GenerateReportMock.results != nil {
		res := mmGenerateReport.GenerateReportMock.results
		return res.s1, res.err
	}
	if mmGenerateReport.funcGenerateReport != nil {
		return mmGenerateReport.funcGenerateReport(ctx, kind)
	}
	mmGenerateReport.t.Fatalf("Unexpected call to ReportGeneratorMock.GenerateReport. %v %v", ctx, kind)
	return
}

// GenerateReportAfterCounter returns a count of finished ReportGeneratorMock.GenerateReport invocations
func (mmGenerateReport *ReportGeneratorMock) GenerateReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGenerateReport.afterGenerateReportCounter)
}

// GenerateReportBeforeCounter returns a count of ReportGeneratorMock.GenerateReport invocations
func (mmGenerateReport *ReportGeneratorMock) GenerateReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGenerateReport.beforeGenerateReportCounter)
}

// MinimockGenerateReportDone returns true if the configured method was invoked at least once
func (m *ReportGeneratorMock) MinimockGenerateReportDone() bool {
	if !m.GenerateReportMock.isConfigured() && m.funcGenerateReport == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterGenerateReportCounter) > 0
}

// MinimockGenerateReportInspect logs each unmet expectation
func (m *ReportGeneratorMock) MinimockGenerateReportInspect() {
	if !m.MinimockGenerateReportDone() {
		m.t.Errorf("Expected call to ReportGeneratorMock.GenerateReport")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ReportGeneratorMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockGenerateReportInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ReportGeneratorMock) MinimockWait(timeout time.Duration) {
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

func (m *ReportGeneratorMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockGenerateReportDone()
}
