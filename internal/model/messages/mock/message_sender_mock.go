package mock

import (
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// MessageSenderMock implements messageSender
type MessageSenderMock struct {
	t minimock.Tester

	funcSendMessage          func(text string, chatID int64) (err error)
	inspectFuncSendMessage   func(text string, chatID int64)
	afterSendMessageCounter  uint64
	beforeSendMessageCounter uint64
	SendMessageMock          mMessageSenderMockSendMessage
}

// NewMessageSenderMock returns a mock for messageSender
func NewMessageSenderMock(t minimock.Tester) *MessageSenderMock {
	m := &MessageSenderMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.SendMessageMock = mMessageSenderMockSendMessage{mock: m}

	return m
}

type mMessageSenderMockSendMessage struct {
	mock    *MessageSenderMock
	params  *MessageSenderMockSendMessageParams
	results *MessageSenderMockSendMessageResults
}

// MessageSenderMockSendMessageParams contains parameters of the MessageSender.SendMessage
type MessageSenderMockSendMessageParams struct {
	text   string
	chatID int64
}

// Expect sets up expected params for MessageSender.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Expect(text string, chatID int64) *mMessageSenderMockSendMessage {
	if mmSendMessage.mock.funcSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("MessageSenderMock.SendMessage mock is already set by Set")
	}

	mmSendMessage.params = &MessageSenderMockSendMessageParams{text, chatID}
	return mmSendMessage
}

// MessageSenderMockSendMessageResults contains results of the MessageSender.SendMessage
type MessageSenderMockSendMessageResults struct {
	err error
}

// Inspect accepts an inspector function that has same arguments as the MessageSender.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Inspect(f func(text string, chatID int64)) *mMessageSenderMockSendMessage {
	if mmSendMessage.mock.inspectFuncSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("Inspect function is already set for MessageSenderMock.SendMessage")
	}

	mmSendMessage.mock.inspectFuncSendMessage = f

	return mmSendMessage
}

// Return sets up results that will be returned by MessageSender.SendMessage
func (mmSendMessage *mMessageSenderMockSendMessage) Return(err error) *MessageSenderMock {
	if mmSendMessage.mock.funcSendMessage != nil {
		mmSendMessage.mock.t.Fatalf("MessageSenderMock.SendMessage mock is already set by Set")
	}

	mmSendMessage.results = &MessageSenderMockSendMessageResults{err}

	return mmSendMessage.mock
}

// Set uses given function f to mock the MessageSender.SendMessage method
func (mmSendMessage *mMessageSenderMockSendMessage) Set(f func(text string, chatID int64) (err error)) *MessageSenderMock {
	if mmSendMessage.isConfigured() {
		mmSendMessage.mock.t.Fatalf("Default expectation is already set for the MessageSender.SendMessage method")
	}

	mmSendMessage.mock.funcSendMessage = f
	return mmSendMessage.mock
}

func (mmSendMessage *mMessageSenderMockSendMessage) isConfigured() bool {
	return mmSendMessage.results != nil
}

// SendMessage implements messageSender
func (mmSendMessage *MessageSenderMock) SendMessage(text string, chatID int64) (err error) {
	mm_atomic.AddUint64(&mmSendMessage.beforeSendMessageCounter, 1)
	defer mm_atomic.AddUint64(&mmSendMessage.afterSendMessageCounter, 1)

	if mmSendMessage.inspectFuncSendMessage != nil {
		mmSendMessage.inspectFuncSendMessage(text, chatID)
	}

	if mm_want := mmSendMessage.SendMessageMock.params; mm_want != nil {
		mm_got := MessageSenderMockSendMessageParams{text, chatID}
		if !minimock.Equal(*mm_want, mm_got) {
			mmSendMessage.t.Errorf("MessageSenderMock.SendMessage got unexpected parameters, want: %#v, got: %#v", *mm_want, mm_got)
		}
	}

	if mmSendMessage.SendMessageMock.results != nil {
		res := mmSendMessage.SendMessageMock.results
		return res.err
	}
	if mmSendMessage.funcSendMessage != nil {
		return mmSendMessage.funcSendMessage(text, chatID)
	}
	mmSendMessage.t.Fatalf("Unexpected call to MessageSenderMock.SendMessage. %v %v", text, chatID)
	return
}

// SendMessageAfterCounter returns a count of finished MessageSenderMock.SendMessage invocations
func (mmSendMessage *MessageSenderMock) SendMessageAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSendMessage.afterSendMessageCounter)
}

// SendMessageBeforeCounter returns a count of MessageSenderMock.SendMessage invocations
func (mmSendMessage *MessageSenderMock) SendMessageBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmSendMessage.beforeSendMessageCounter)
}

// MinimockSendMessageDone returns true if the configured method was invoked at least once
func (m *MessageSenderMock) MinimockSendMessageDone() bool {
	if !m.SendMessageMock.isConfigured() && m.funcSendMessage == nil {
		return true
	}
	return mm_atomic.LoadUint64(&m.afterSendMessageCounter) > 0
}

// MinimockSendMessageInspect logs each unmet expectation
func (m *MessageSenderMock) MinimockSendMessageInspect() {
	if !m.MinimockSendMessageDone() {
		m.t.Errorf("Expected call to MessageSenderMock.SendMessage")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times
func (m *MessageSenderMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockSendMessageInspect()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times
func (m *MessageSenderMock) MinimockWait(timeout time.Duration) {
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

func (m *MessageSenderMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockSendMessageDone()
}
