package messaging

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ecommerce-api/internal/application/ports"
)

type fakeConn struct {
	connected bool
	subject   string
	data      []byte
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	f.subject, f.data = subject, data
	return nil
}

func (f *fakeConn) IsConnected() bool { return f.connected }

func TestOrderPublisher_Publica(t *testing.T) {
	fc := &fakeConn{connected: true}
	p := newOrderPublisher(fc, "")
	ev := ports.OrderCreatedEvent{OrderID: "o1", UserID: "u1", TotalPrice: "500", ItemCount: 2, CreatedAt: time.Unix(0, 0).UTC()}

	require.NoError(t, p.PublishOrderCreated(context.Background(), ev))
	assert.Equal(t, "orders.created", fc.subject)

	var got map[string]any
	require.NoError(t, json.Unmarshal(fc.data, &got))
	assert.Equal(t, "o1", got["orderId"])
	assert.Equal(t, "500", got["totalPrice"])
	assert.EqualValues(t, 2, got["itemCount"])
}

func TestOrderPublisher_Desconectado(t *testing.T) {
	p := newOrderPublisher(&fakeConn{connected: false}, "shop.orders")
	err := p.PublishOrderCreated(context.Background(), ports.OrderCreatedEvent{OrderID: "o1"})
	assert.ErrorIs(t, err, nats.ErrConnectionClosed)
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NoopPublisher{}.PublishOrderCreated(context.Background(), ports.OrderCreatedEvent{}))
}
