package kafka

import (
	"context"
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/gojuno/minimock/v3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-ledger/internal/clients/kafka/mock"
)

func Test_OnRequestReport_ShouldProduceDecodableMessage(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	var produced ReportRequest
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var err error
		produced, err = decodeRequest(val)
		return err
	})
	p := &Producer{producer: sp, topic: "reports"}

	id, err := p.RequestReport(context.Background(), 42, "months")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, ReportRequest{RequestID: id, ChatID: 42, Kind: "months"}, produced)
	p.Close()
}

func Test_OnProducerFailure_ShouldReturnError(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	p := &Producer{producer: sp, topic: "reports"}

	id, err := p.RequestReport(context.Background(), 42, "years")

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.Equal(t, uuid.Nil, id)
	p.Close()
}

func Test_OnReportRequest_ShouldSendGeneratedReport(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	generator.GenerateReportMock.Set(func(_ context.Context, kind string) (string, error) {
		assert.Equal(t, "summary", kind)
		return "Total: 10", nil
	})
	sender.SendMessageMock.Expect("Total: 10", int64(7)).Return(nil)

	raw, err := encodeRequest(ReportRequest{RequestID: uuid.New(), ChatID: 7, Kind: "summary"})
	require.NoError(t, err)

	c := &Consumer{generator: generator, sender: sender}
	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: raw})
}

func Test_OnGeneratorFailure_ShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	generator.GenerateReportMock.Return("", errors.New("unknown kind"))
	sender.SendMessageMock.Expect(failedReportMessage, int64(7)).Return(nil)

	raw, err := encodeRequest(ReportRequest{RequestID: uuid.New(), ChatID: 7, Kind: "weekly"})
	require.NoError(t, err)

	c := &Consumer{generator: generator, sender: sender}
	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: raw})
}

func Test_OnBrokenMessage_ShouldSkipIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	generator := mock.NewReportGeneratorMock(m)
	sender := mock.NewReportSenderMock(m)

	c := &Consumer{generator: generator, sender: sender}
	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("{not json")})
	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte(`{"chat_id": 1}`)})

	assert.Equal(t, uint64(0), sender.SendMessageBeforeCounter())
}
