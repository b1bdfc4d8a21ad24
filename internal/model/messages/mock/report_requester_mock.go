package mock

import (
	"context"
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
)

// ReportRequesterMock implements reportRequester
type ReportRequesterMock struct {
	t minimock.Tester

	funcRequestReport          func(ctx context.Context, chatID int64, kind string) (u1 uuid.UUID, err error)
	inspectFuncRequestReport   func(ctx context.Context, chatID int64, kind string)
	afterRequestReportCounter  uint64
	beforeRequestReportCounter uint64
	RequestReportMock          mReportRequesterMockRequestReport
}

// NewReportRequesterMock returns a mock for reportRequester
func NewReportRequesterMock(t minimock.Tester) *ReportRequesterMock {
	m := &ReportRequesterMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.RequestReportMock = mReportRequesterMockRequestReport{mock: m}

	return m
}

type mReportRequesterMockRequestReport struct {
	mock    *ReportRequesterMock
	params  *ReportRequesterMockRequestReportParams
	results *ReportRequesterMockRequestReportResults
}

// ReportRequesterMockRequestReportParams contains parameters of the ReportRequester.RequestReport
type ReportRequesterMockRequestReportParams struct {
	ctx    context.Context
	chatID int64
	kind   string
}

// Expect sets up expected params for ReportRequester.RequestReport
func (mmRequestReport *mReportRequesterMockRequestReport) Expect(ctx context.Context, chatID int64, kind string) *mReportRequesterMockRequestReport {
	if mmRequestReport.mock.funcRequestReport != nil {
		mmRequestReport.mock.t.Fatalf("ReportRequesterMock.RequestReport mock is already set by Set")
	}

	mmRequestReport.params = &ReportRequesterMockRequestReportParams{ctx, chatID, kind}
	return mmRequestReport
}

// ReportRequesterMockRequestReportResults contains results of the ReportRequester.RequestReport
type ReportRequesterMockRequestReportResults struct {
	u1  uuid.UUID
	err error
}

// Inspect accepts an inspector function that has same arguments as the ReportRequester.RequestReport
func (mmRequestReport *mReportRequesterMockRequestReport) Inspect(f func(ctx context.Context, chatID int64, kind string)) *mReportRequesterMockRequestReport {
	if mmRequestReport.mock.inspectFuncRequestReport != nil {
		mmRequestReport.mock.t.Fatalf("Inspect function is already set for ReportRequesterMock.RequestReport")
	}

	mmRequestReport.mock.inspectFuncRequestReport = f

	return mmRequestReport
}

// Return sets up results that will be returned by ReportRequester.RequestReport
func (mmRequestReport *mReportRequesterMockRequestReport) Return(u1 uuid.UUID, err error) *ReportRequesterMock {
	if mmRequestReport.mock.funcRequestReport != nil {
		mmRequestReport.mock.t.Fatalf("ReportRequesterMock.RequestReport mock is already set by Set")
	}

	mmRequestReport.results = &ReportRequesterMockRequestReportResults{u1, err}

	return mmRequestReport.mock
}

// Set uses given function f to mock the ReportRequester.RequestReport method
func (mmRequestReport *mReportRequesterMockRequestReport) Set(f func(ctx context.Context, chatID int64, kind string) (u1 uuid.UUID, err error)) *ReportRequesterMock {
	if mmRequestReport.isConfigured() {
		mmRequestReport.mock.t.Fatalf("Default expectation is already set for the ReportRequester.RequestReport method")
	}

	mmRequestReport.mock.funcRequestReport = f
	return mmRequestReport.mock
}

func (mmRequestReport *mReportRequesterMockRequestReport) isConfigured() bool {
	return mmRequestReport.results != nil
}

// RequestReport implements reportRequester
func (mmRequestReport *ReportRequesterMock) RequestReport(ctx context.Context, chatID int64, kind string) (u1 uuid.UUID, err error) {
	mm_atomic.AddUint64(&mmRequestReport.beforeRequestReportCounter, 1)
	defer mm_atomic.AddUint64(&mmRequestReport.afterRequestReportCounter, 1)

	if mmRequestReport.inspectFuncRequestReport != nil {
		mmRequestReport.inspectFuncRequestReport(ctx, chatID, kind)
	}

	if mm_want := mmRequestReport.RequestReportMock.params; mm_want != nil {
		mm_got := ReportRequesterMockRequestReportParams{ctx, chatID, kind}
		if !minimock.Equal(*mm_want, mm_got) {
			mmRequestReport.t.Errorf("ReportRequesterMock.RequestReport got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmRequestReport.RequestReportMock.results != nil {
		res := mmRequestReport.RequestReportMock.results
		return res.u1, res.err
	}
	if mmRequestReport.funcRequestReport != nil {
		return mmRequestReport.funcRequestReport(ctx, chatID, kind)
	}
	mmRequestReport.t.Fatalf("Unexpected call to ReportRequesterMock.RequestReport. %v %v %v", ctx, chatID, kind)
	return
}

// RequestReportAfterCounter returns a count of finished ReportRequesterMock.RequestReport invocations
func (mmRequestReport *ReportRequesterMock) RequestReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequestReport.afterRequestReportCounter)
}

// RequestReportBeforeCounter returns a count of ReportRequesterMock.RequestReport invocations
func (mmRequestReport *ReportRequesterMock) RequestReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequestReport.beforeRequestReportCounter)
}

// MinimockRequestReportDone returns true if the configured method was invoked at least once
func (m *ReportRequesterMock) MinimockRequestReportDone() bool {
	if !m.RequestReportMock.isConfigured() && m.funcRequestReport == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterRequestReportCounter) > 0
}

// MinimockRequestReportInspect logs each unmet expectation
func (m *ReportRequesterMock) MinimockRequestReportInspect() {
	if !m.MinimockRequestReportDone() {
		m.t.Errorf("Expected call to ReportRequesterMock.RequestReport")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ReportRequesterMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockRequestReportInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ReportRequesterMock) MinimockWait(timeout time.Duration) {
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

func (m *ReportRequesterMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockRequestReportDone()
}
