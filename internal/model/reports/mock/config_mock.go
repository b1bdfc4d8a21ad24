package mock

import (
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ConfigMock implements config
type ConfigMock struct {
	t minimock.Tester

	funcCurrencySymbol          func() (s1 string)
	inspectFuncCurrencySymbol   func()
	afterCurrencySymbolCounter  uint64
	beforeCurrencySymbolCounter uint64
	CurrencySymbolMock          mConfigMockCurrencySymbol
}

// NewConfigMock returns a mock for config
func NewConfigMock(t minimock.Tester) *ConfigMock {
	m := &ConfigMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CurrencySymbolMock = mConfigMockCurrencySymbol{mock: m}

	return m
}

type mConfigMockCurrencySymbol struct {
	mock    *ConfigMock
	results *ConfigMockCurrencySymbolResults
}

// ConfigMockCurrencySymbolResults contains results of the Config.CurrencySymbol
type ConfigMockCurrencySymbolResults struct {
	s1 string
}

// Inspect accepts an inspector function that has same arguments as the Config.CurrencySymbol
func (mmCurrencySymbol *mConfigMockCurrencySymbol) Inspect(f func()) *mConfigMockCurrencySymbol {
	if mmCurrencySymbol.mock.inspectFuncCurrencySymbol != nil {
		mmCurrencySymbol.mock.t.Fatalf("Inspect function is already set for ConfigMock.CurrencySymbol")
	}

	mmCurrencySymbol.mock.inspectFuncCurrencySymbol = f

	return mmCurrencySymbol
}

// Return sets up results that will be returned by Config.CurrencySymbol
func (mmCurrencySymbol *mConfigMockCurrencySymbol) Return(s1 string) *ConfigMock {
	if mmCurrencySymbol.mock.funcCurrencySymbol != nil {
		mmCurrencySymbol.mock.t.Fatalf("ConfigMock.CurrencySymbol mock is already set by Set")
	}

	mmCurrencySymbol.results = &ConfigMockCurrencySymbolResults{s1}

	return mmCurrencySymbol.mock
}

// Set uses given function f to mock the Config.CurrencySymbol method
func (mmCurrencySymbol *mConfigMockCurrencySymbol) Set(f func() (s1 string)) *ConfigMock {
	if mmCurrencySymbol.isConfigured() {
		mmCurrencySymbol.mock.t.Fatalf("Default expectation is already set for the Config.CurrencySymbol method")
	}

	mmCurrencySymbol.mock.funcCurrencySymbol = f
	return mmCurrencySymbol.mock
}

func (mmCurrencySymbol *mConfigMockCurrencySymbol) isConfigured() bool {
	return mmCurrencySymbol.results != nil
}

// CurrencySymbol implements config
func (mmCurrencySymbol *ConfigMock) CurrencySymbol() (s1 string) {
	mm_atomic.AddUint64(&mmCurrencySymbol.beforeCurrencySymbolCounter, 1)
	defer mm_atomic.AddUint64(&mmCurrencySymbol.afterCurrencySymbolCounter, 1)

	if mmCurrencySymbol.inspectFuncCurrencySymbol != nil {
		mmCurrencySymbol.inspectFuncCurrencySymbol()
	}

	if mmCurrencySymbol.CurrencySymbolMock.results != nil {
		res := mmCurrencySymbol.CurrencySymbolMock.results
		return res.s1
	}
	if mmCurrencySymbol.funcCurrencySymbol != nil {
		return mmCurrencySymbol.funcCurrencySymbol()
	}
	mmCurrencySymbol.t.Fatalf("Unexpected call to ConfigMock.CurrencySymbol.")
	return
}

// CurrencySymbolAfterCounter returns a count of finished ConfigMock.CurrencySymbol invocations
func (mmCurrencySymbol *ConfigMock) CurrencySymbolAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCurrencySymbol.afterCurrencySymbolCounter)
}

// CurrencySymbolBeforeCounter returns a count of ConfigMock.CurrencySymbol invocations
func (mmCurrencySymbol *ConfigMock) CurrencySymbolBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCurrencySymbol.beforeCurrencySymbolCounter)
}

// MinimockCurrencySymbolDone returns true if the configured method was invoked at least once
func (m *ConfigMock) MinimockCurrencySymbolDone() bool {
	if !m.CurrencySymbolMock.isConfigured() && m.funcCurrencySymbol == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterCurrencySymbolCounter) > 0
}

// MinimockCurrencySymbolInspect logs each unmet expectation
func (m *ConfigMock) MinimockCurrencySymbolInspect() {
	if !m.MinimockCurrencySymbolDone() {
		m.t.Errorf("Expected call to ConfigMock.CurrencySymbol")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ConfigMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockCurrencySymbolInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ConfigMock) MinimockWait(timeout time.Duration) {
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

func (m *ConfigMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockCurrencySymbolDone()
}
