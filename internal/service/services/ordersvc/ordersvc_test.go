package ordersvc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wickedsales/storefront/internal/dal/interfaces/iorder"
	"github.com/wickedsales/storefront/internal/dal/interfaces/ioutbox"
	"github.com/wickedsales/storefront/internal/service/models/order"
	"github.com/wickedsales/storefront/internal/service/models/outbox"
)

type fakeUOW struct {
	orders     []order.Order
	events     []outbox.Message
	committed  bool
	rolledBack bool
}

func (u *fakeUOW) Begin(ctx context.Context) error { return nil }

func (u *fakeUOW) Commit(ctx context.Context) error {
	u.committed = true
	return nil
}

func (u *fakeUOW) Rollback(ctx context.Context) error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUOW) OrderRepository() iorder.PostgresRepository { return &fakeOrderRepo{u} }
func (u *fakeUOW) OutboxRepository() ioutbox.Repository       { return &fakeOutboxRepo{u} }

type fakeOrderRepo struct{ uow *fakeUOW }

func (r *fakeOrderRepo) Insert(ctx context.Context, o order.Order) (*order.Order, error) {
	o.ID = int64(len(r.uow.orders) + 1)
	o.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	r.uow.orders = append(r.uow.orders, o)
	return &o, nil
}

type fakeOutboxRepo struct{ uow *fakeUOW }

func (r *fakeOutboxRepo) Insert(ctx context.Context, msg outbox.Message) error {
	r.uow.events = append(r.uow.events, msg)
	return nil
}

func (r *fakeOutboxRepo) GetPendingMessages(ctx context.Context, limit int) ([]outbox.Message, error) {
	return r.uow.events, nil
}

func (r *fakeOutboxRepo) Delete(ctx context.Context, id int64) error { return nil }

func (r *fakeOutboxRepo) UpdateRetry(ctx context.Context, id int64, retryCount int, lastError string, nextRetryAt time.Time) error {
	return nil
}

func TestCreateOrder(t *testing.T) {
	work := &fakeUOW{}
	svc := MustNewOrderService(WithUnitOfWorkFactory(func() unitOfWork { return work }))

	created, err := svc.CreateOrder(context.Background(), order.Order{
		CartID:          3,
		Name:            "Ada Lovelace",
		CreditCard:      "4111111111111111",
		ShippingAddress: "12 Analytical Way",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, int64(3), created.CartID)
	require.True(t, work.committed)

	t.Run("order placed event written in same unit of work", func(t *testing.T) {
		require.Len(t, work.events, 1)

		var event order.PlacedEvent
		require.NoError(t, json.Unmarshal(work.events[0].Payload, &event))
		require.Equal(t, created.ID, event.OrderID)
		require.Equal(t, created.CartID, event.CartID)
	})

	t.Run("card number never leaks into the event payload", func(t *testing.T) {
		require.NotContains(t, string(work.events[0].Payload), "4111111111111111")
	})
}
