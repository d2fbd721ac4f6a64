package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/expense-tracker/backend/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestAMQPPublish(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", "expenses", "topic", true, false, false, false, amqp.Table(nil)).Return(nil)

	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "expenses", "expense.created", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(5).(amqp.Publishing)
		}).
		Return(nil)

	p, err := newAMQP(ch, "expenses")
	require.Nil(t, err)

	event := Event{
		Kind:       ExpenseCreated,
		Owner:      "alice",
		Expense:    models.Expense{ID: "abc", Name: "Groceries", Category: models.CategoryFood},
		OccurredAt: time.Date(2023, 3, 10, 12, 0, 0, 0, time.UTC),
	}
	require.Nil(t, p.Publish(context.Background(), event))

	ch.AssertExpectations(t)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)

	var decoded Event
	require.Nil(t, json.Unmarshal(published.Body, &decoded))
	assert.Equal(t, ExpenseCreated, decoded.Kind)
	assert.Equal(t, models.ExpenseID("abc"), decoded.Expense.ID)
}

func TestAMQPDeclareFails(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access refused"))
	ch.On("Close").Return(nil)

	_, err := newAMQP(ch, "expenses")
	assert.ErrorContains(t, err, "declare exchange")
	ch.AssertCalled(t, "Close")
}

func TestAMQPPublishFails(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	ch.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	p, err := newAMQP(ch, "expenses")
	require.Nil(t, err)

	err = p.Publish(context.Background(), Event{Kind: ExpenseDeleted})
	assert.ErrorContains(t, err, "publish event")
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	assert.Nil(t, p.Publish(context.Background(), Event{}))
	assert.Nil(t, p.Close())
}
