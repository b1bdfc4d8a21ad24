package mock

import (
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportCacheMock implements reportCache
type ReportCacheMock struct {
	t minimock.Tester

	funcInvalidateCache          func(kinds []string) (err error)
	inspectFuncInvalidateCache   func(kinds []string)
	afterInvalidateCacheCounter  uint64
	beforeInvalidateCacheCounter uint64
	InvalidateCacheMock          mReportCacheMockInvalidateCache
}

// NewReportCacheMock returns a mock for reportCache
func NewReportCacheMock(t minimock.Tester) *ReportCacheMock {
	m := &ReportCacheMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.InvalidateCacheMock = mReportCacheMockInvalidateCache{mock: m}

	return m
}

type mReportCacheMockInvalidateCache struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockInvalidateCacheParams
	results *ReportCacheMockInvalidateCacheResults
}

// ReportCacheMockInvalidateCacheParams contains parameters of the ReportCache.InvalidateCache
type ReportCacheMockInvalidateCacheParams struct {
	kinds []string
}

// Expect sets up expected params for ReportCache.InvalidateCache
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Expect(kinds []string) *mReportCacheMockInvalidateCache {
	if mmInvalidateCache.mock.funcInvalidateCache != nil {
		mmInvalidateCache.mock.t.Fatalf("ReportCacheMock.InvalidateCache mock is already set by Set")
	}

	mmInvalidateCache.params = &ReportCacheMockInvalidateCacheParams{kinds}
	return mmInvalidateCache
}

// ReportCacheMockInvalidateCacheResults contains results of the ReportCache.InvalidateCache
type ReportCacheMockInvalidateCacheResults struct {
	err error
}

// Inspect accepts an inspector function that has same arguments as the ReportCache.InvalidateCache
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Inspect(f func(kinds []string)) *mReportCacheMockInvalidateCache {
	if mmInvalidateCache.mock.inspectFuncInvalidateCache != nil {
		mmInvalidateCache.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.InvalidateCache")
	}

	mmInvalidateCache.mock.inspectFuncInvalidateCache = f

	return mmInvalidateCache
}

// Return sets up results that will be returned by ReportCache.InvalidateCache
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Return(err error) *ReportCacheMock {
	if mmInvalidateCache.mock.funcInvalidateCache != nil {
		mmInvalidateCache.mock.t.Fatalf("ReportCacheMock.InvalidateCache mock is already set by Set")
	}

	mmInvalidateCache.results = &ReportCacheMockInvalidateCacheResults{err}

	return mmInvalidateCache.mock
}

// Set uses given function f to mock the ReportCache.InvalidateCache method
func (mmInvalidateCache *mReportCacheMockInvalidateCache) Set(f func(kinds []string) (err error)) *ReportCacheMock {
	if mmInvalidateCache.isConfigured() {
		mmInvalidateCache.mock.t.Fatalf("Default expectation is already set for the ReportCache.InvalidateCache method")
	}

	mmInvalidateCache.mock.funcInvalidateCache = f
	return mmInvalidateCache.mock
}

func (mmInvalidateCache *mReportCacheMockInvalidateCache) isConfigured() bool {
	return mmInvalidateCache.results != nil
}

// InvalidateCache implements reportCache
func (mmInvalidateCache *ReportCacheMock) InvalidateCache(kinds []string) (err error) {
	mm_atomic.AddUint64(&mmInvalidateCache.beforeInvalidateCacheCounter, 1)
	defer mm_atomic.AddUint64(&mmInvalidateCache.afterInvalidateCacheCounter, 1)

	if mmInvalidateCache.inspectFuncInvalidateCache != nil {
		mmInvalidateCache.inspectFuncInvalidateCache(kinds)
	}

	if mm_want := mmInvalidateCache.InvalidateCacheMock.params; mm_want != nil {
		mm_got := ReportCacheMockInvalidateCacheParams{kinds}
		if !minimock.Equal(*mm_want, mm_got) {
			mmInvalidateCache.t.Errorf("ReportCacheMock.InvalidateCache got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmInvalidateCache.InvalidateCacheMock.results != nil {
		res := mmInvalidateCache.InvalidateCacheMock.results
		return res.err
	}
	if mmInvalidateCache.funcInvalidateCache != nil {
		return mmInvalidateCache.funcInvalidateCache(kinds)
	}
	mmInvalidateCache.t.Fatalf("Unexpected call to ReportCacheMock.InvalidateCache. %v", kinds)
	return
}

// InvalidateCacheAfterCounter returns a count of finished ReportCacheMock.InvalidateCache invocations
func (mmInvalidateCache *ReportCacheMock) InvalidateCacheAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmInvalidateCache.afterInvalidateCacheCounter)
}

// InvalidateCacheBeforeCounter returns a count of ReportCacheMock.InvalidateCache invocations
func (mmInvalidateCache *ReportCacheMock) InvalidateCacheBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmInvalidateCache.beforeInvalidateCacheCounter)
}

// MinimockInvalidateCacheDone returns true if the configured method was invoked at least once
func (m *ReportCacheMock) MinimockInvalidateCacheDone() bool {
	if !m.InvalidateCacheMock.isConfigured() && m.funcInvalidateCache == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterInvalidateCacheCounter) > 0
}

// MinimockInvalidateCacheInspect logs each unmet expectation
func (m *ReportCacheMock) MinimockInvalidateCacheInspect() {
	if !m.MinimockInvalidateCacheDone() {
		m.t.Errorf("Expected call to ReportCacheMock.InvalidateCache")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ReportCacheMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockInvalidateCacheInspect()
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
		m.MinimockInvalidateCacheDone()
}
