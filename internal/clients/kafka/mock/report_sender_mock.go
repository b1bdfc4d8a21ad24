package mock

import (
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportSenderMock implements reportSender
type ReportSenderMock struct {
	t minimock.Tester

	funcSendMessage          func(text string, chatID int64) (err error)
	inspectFuncSendMessage   func(text string, chatID int64)
	afterSendMessageCounter  uint64
	beforeSendMessageCounter uint64
	SendMessageMock          mReportSenderMockSendMessage
}

// NewReportSenderMock returns a mock for reportSender
func NewReportSenderMock(t minimock.Tester) *ReportSenderMock {
	m := &ReportSenderMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.SendMessageMock = mReportSenderMockSendMessage{mock: m}

	return m
}

type mReportSenderMockSendMessage struct {
	mock    *ReportSenderMock
	params  *ReportSenderMockSendMessageParams
	results *ReportSenderMockSendMessageResults
}

// ReportSenderMockSendMessageParams contains parameters of the ReportSender.SendMessage
type ReportSenderMockSendMessageParams struct {
	text   string
	chatID int64
}

// Expect sets up expected params for ReportSender.SendMessage
func (mmSendMessage *mReportSenderMockSendMessage) Expect(text string, chatID int64) *mReportSenderMockSendMessage {
	if mmSendMessage.mock.funcSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("ReportSenderMock.SendMessage mock is already set by Set")
	}

	mmSendMessage.params = &ReportSenderMockSendMessageParams{text, chatID}
	return mmSendMessage
}

// ReportSenderMockSendMessageResults contains results of the ReportSender.SendMessage
type ReportSenderMockSendMessageResults struct {
	err error
}

// Inspect accepts an inspector function that has same arguments as the ReportSender.SendMessage
func (mmSendMessage *mReportSenderMockSendMessage) Inspect(f func(text string, chatID int64)) *mReportSenderMockSendMessage {
	if mmSendMessage.mock.inspectFuncSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("Inspect function is already set for ReportSenderMock.SendMessage")
	}

	mmSendMessage.mock.inspectFuncSendMessage = f

	return mmSendMessage
}

// Return sets up results that will be returned by ReportSender.SendMessage
func (mmSendMessage *mReportSenderMockSendMessage) Return(err error) *ReportSenderMock {
	if mmSendMessage.mock.funcSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("ReportSenderMock.SendMessage mock is already set by Set")
	}

	mmSendMessage.results = &ReportSenderMockSendMessageResults{err}

	return mmSendMessage.mock
}

// Set uses given function f to mock the ReportSender.SendMessage method
func (mmSendMessage *mReportSenderMockSendMessage) Set(f func(text string, chatID int64) (err error)) *ReportSenderMock {
	if mmSendMessage.isConfigured() {
		mmSendMessage.mock.t.Fatalf("Default expectation is already set for the ReportSender.SendMessage method")
	}

	mmSendMessage.mock.funcSendMessage = f
	return mmSendMessage.mock
}

func (mmSendMessage *mReportSenderMockSendMessage) isConfigured() bool {
	return mmSendMessage.results != nil
}

// SendMessage implements reportSender
func (mmSendMessage *ReportSenderMock) SendMessage(text string, chatID int64) (err error) {
	mm_atomic.AddUint64(&mmSendMessage.beforeSendMessageCounter, 1)
	defer mm_atomic.AddUint64(&mmSendMessage.afterSendMessageCounter, 1)

	if mmSendMessage.inspectFuncSendMessage != nil {
		mmSendMessage.inspectFuncSendMessage(text, chatID)
	}

	if mm_want := mmSendMessage.SendMessageMock.params; mm_want != nil {
		mm_got := ReportSenderMockSendMessageParams{text, chatID}
		if !minimock.Equal(*mm_want, mm_got) {
			mmSendMessage.t.Errorf("ReportSenderMock.SendMessage got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmSendMessage.SendMessageMock.results != nil {
		res := mmSendMessage.SendMessageMock.results
		return res.err
	}
	if mmSendMessage.funcSendMessage != nil {
		return mmSendMessage.funcSendMessage(text, chatID)
	}
	mmSendMessage.t.Fatalf("Unexpected call to ReportSenderMock.SendMessage. %v %v", text, chatID)
	return
}

// SendMessageAfterCounter returns a count of finished ReportSenderMock.SendMessage invocations
func (mmSendMessage *ReportSenderMock) SendMessageAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSendMessage.afterSendMessageCounter)
}

// SendMessageBeforeCounter returns a count of ReportSenderMock.SendMessage invocations
func (mmSendMessage *ReportSenderMock) SendMessageBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSendMessage.beforeSendMessageCounter)
}

// MinimockSendMessageDone returns true if the configured method was invoked at least once
func (m *ReportSenderMock) MinimockSendMessageDone() bool {
	if !m.SendMessageMock.isConfigured() && m.funcSendMessage == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterSendMessageCounter) > 0
}

// MinimockSendMessageInspect logs each unmet expectation
func (m *ReportSenderMock) MinimockSendMessageInspect() {
	if !m.MinimockSendMessageDone() {
		m.t.Errorf("Expected call to ReportSenderMock.SendMessage")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *ReportSenderMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockSendMessageInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *ReportSenderMock) MinimockWait(timeout time.Duration) {
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

func (m *ReportSenderMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockSendMessageDone()
}
