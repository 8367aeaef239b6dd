package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
	"github.com/wickedsales/storefront/internal/dal/rabbitmq"
	outboxmodel "github.com/wickedsales/storefront/internal/service/models/outbox"
)

type fakePublisher struct {
	declared  []string
	published []amqp.Publishing
	keys      []string
	failWith  error
}

func (p *fakePublisher) DeclareQueue(cfg rabbitmq.DeclareQueueConfig) (amqp.Queue, error) {
	p.declared = append(p.declared, cfg.Name)
	return amqp.Queue{Name: cfg.Name}, nil
}

func (p *fakePublisher) Publish(exchange, key string, pub amqp.Publishing) error {
	if p.failWith != nil {
		return p.failWith
	}
	p.published = append(p.published, pub)
	p.keys = append(p.keys, key)
	return nil
}

type retryUpdate struct {
	id          int64
	retryCount  int
	lastError   string
	nextRetryAt time.Time
}

type fakeOutboxRepo struct {
	pending []outboxmodel.Message
	deleted []int64
	retries []retryUpdate
}

func (r *fakeOutboxRepo) Insert(ctx context.Context, msg outboxmodel.Message) error {
	r.pending = append(r.pending, msg)
	return nil
}

func (r *fakeOutboxRepo) GetPendingMessages(ctx context.Context, limit int) ([]outboxmodel.Message, error) {
	return r.pending, nil
}

func (r *fakeOutboxRepo) Delete(ctx context.Context, id int64) error {
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeOutboxRepo) UpdateRetry(ctx context.Context, id int64, retryCount int, lastError string, nextRetryAt time.Time) error {
	r.retries = append(r.retries, retryUpdate{id, retryCount, lastError, nextRetryAt})
	return nil
}

func pendingMessage(retryCount int) outboxmodel.Message {
	return outboxmodel.Message{
		ID:          7,
		QueueName:   "order_placed",
		RoutingKey:  "order_placed",
		Payload:     []byte(`{"orderId":1,"cartId":3}`),
		ContentType: "application/json",
		RetryCount:  retryCount,
		MaxRetries:  5,
	}
}

func TestProcessMessages(t *testing.T) {
	t.Run("published message is removed from the outbox", func(t *testing.T) {
		repo := &fakeOutboxRepo{pending: []outboxmodel.Message{pendingMessage(0)}}
		pub := &fakePublisher{}
		worker := NewWorker(repo, pub)

		worker.processMessages(context.Background())

		require.Len(t, pub.published, 1)
		require.Equal(t, "order_placed", pub.keys[0])
		require.Equal(t, "application/json", pub.published[0].ContentType)
		require.JSONEq(t, `{"orderId":1,"cartId":3}`, string(pub.published[0].Body))
		require.Equal(t, []int64{7}, repo.deleted)
		require.Empty(t, repo.retries)
	})

	t.Run("failed publish schedules a retry with exponential backoff", func(t *testing.T) {
		repo := &fakeOutboxRepo{pending: []outboxmodel.Message{pendingMessage(0)}}
		pub := &fakePublisher{failWith: errors.New("channel closed")}
		worker := NewWorker(repo, pub)

		worker.processMessages(context.Background())

		require.Empty(t, repo.deleted)
		require.Len(t, repo.retries, 1)

		upd := repo.retries[0]
		require.Equal(t, int64(7), upd.id)
		require.Equal(t, 1, upd.retryCount)
		require.Equal(t, "channel closed", upd.lastError)
		require.WithinDuration(t, time.Now().Add(60*time.Second), upd.nextRetryAt, 2*time.Second)
	})

	t.Run("backoff doubles with each failed attempt", func(t *testing.T) {
		repo := &fakeOutboxRepo{pending: []outboxmodel.Message{pendingMessage(2)}}
		pub := &fakePublisher{failWith: errors.New("channel closed")}
		worker := NewWorker(repo, pub)

		worker.processMessages(context.Background())

		require.Len(t, repo.retries, 1)
		require.Equal(t, 3, repo.retries[0].retryCount)
		require.WithinDuration(t, time.Now().Add(240*time.Second), repo.retries[0].nextRetryAt, 2*time.Second)
	})
}
