package mock

import (
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ConfigMock implements config
type ConfigMock struct {
	t minimock.Tester

	funcLocation          func() (lp1 *time.Location)
	inspectFuncLocation   func()
	afterLocationCounter  uint64
	beforeLocationCounter uint64
	LocationMock          mConfigMockLocation
}

// NewConfigMock returns a mock for config
func NewConfigMock(t minimock.Tester) *ConfigMock {
	m := &ConfigMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LocationMock = mConfigMockLocation{mock: m}

	return m
}

type mConfigMockLocation struct {
	mock    *ConfigMock
	results *ConfigMockLocationResults
}

// ConfigMockLocationResults contains results of the Config.Location
type ConfigMockLocationResults struct {
	lp1 *time.Location
}

// Inspect accepts an inspector function that has same arguments as the Config.Location
func (mmLocation *mConfigMockLocation) Inspect(f func()) *mConfigMockLocation {
	if mmLocation.mock.inspectFuncLocation != nil {
		mmLocation.mock.t.Fatalf("Inspect function is already set for ConfigMock.Location")
	}

	mmLocation.mock.inspectFuncLocation = f

	return mmLocation
}

// Return sets up results that will be returned by Config.Location
func (mmLocation *mConfigMockLocation) Return(lp1 *time.Location) *ConfigMock {
	if mmLocation.mock.funcLocation != nil {
		mmLocation.mock.t.Fatalf("ConfigMock.Location mock is already set by Set")
	}

	mmLocation.results = &ConfigMockLocationResults{lp1}

	return mmLocation.mock
}

// Set uses given function f to mock the Config.Location method
func (mmLocation *mConfigMockLocation) Set(f func() (lp1 *time.Location)) *ConfigMock {
	if mmLocation.isConfigured() {
		mmLocation.mock.t.Fatalf("Default expectation is already set for the Config.Location method")
	}

	mmLocation.mock.funcLocation = f
	return mmLocation.mock
}

func (mmLocation *mConfigMockLocation) isConfigured() bool {
	return mmLocation.results != nil
}

// Location implements config
func (mmLocation *ConfigMock) Location() (lp1 *time.Location) {
	mm_atomic.AddUint64(&mmLocation.beforeLocationCounter, 1)
	defer mm_atomic.AddUint64(&mmLocation.afterLocationCounter, 1)

	if mmLocation.inspectFuncLocation != nil {
		mmLocation.inspectFuncLocation()
	}

	if mmLocation.LocationMock.results != nil {
		res := mmLocation.LocationMock.results
		return res.lp1
	}
	if mmLocation.funcLocation != nil {
		return mmLocation.funcLocation()
	}
	mmLocation.t.Fatalf("Unexpected call to ConfigMock.Location.")
	return
}

// LocationAfterCounter returns a count of finished ConfigMock.Location invocations
func (mmLocation *ConfigMock) LocationAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLocation.afterLocationCounter)
}

// LocationBeforeCounter returns a count of ConfigMock.Location invocations
func (mmLocation *ConfigMock) LocationBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLocation.beforeLocationCounter)
}

// MinimockLocationDone returns true if the configured method was invoked at least once
func (m *ConfigMock) MinimockLocationDone() bool {
	if !m.LocationMock.isConfigured() && m.funcLocation == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterLocationCounter) > 0
}

// MinimockLocationInspect logs each unmet expectation
func (m *ConfigMock) MinimockLocationInspect() {
	if !m.MinimockLocationDone() {
		m.t.Errorf("Expected call to ConfigMock.Location")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ConfigMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockLocationInspect()
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
		m.MinimockLocationDone()
}
