// Package messaging publicación de eventos de pedidos en NATS.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/jhoicas/ecommerce-api/internal/application/ports"
	"github.com/jhoicas/ecommerce-api/pkg/logger"
)

// Connect abre la conexión NATS con reconexión automática.
func Connect(url, name string, log *logger.Logger) (*nats.Conn, error) {
	if log == nil {
		log = logger.Nop()
	}
	l := log.Component("nats")
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			l.Warn().Err(err).Msg("desconectado")
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			l.Info().Str("url", c.ConnectedUrl()).Msg("reconectado")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}

// conn lo que el publisher necesita de *nats.Conn.
type conn interface {
	Publish(subject string, data []byte) error
	IsConnected() bool
}

// OrderPublisher implementa ports.OrderEventPublisher sobre un subject NATS.
type OrderPublisher struct {
	nc      conn
	subject string
}

var _ ports.OrderEventPublisher = (*OrderPublisher)(nil)

// NewOrderPublisher construye el publisher. subject vacío usa orders.created.
func NewOrderPublisher(nc *nats.Conn, subject string) *OrderPublisher {
	if nc == nil {
		return newOrderPublisher(nil, subject)
	}
	return newOrderPublisher(nc, subject)
}

func newOrderPublisher(nc conn, subject string) *OrderPublisher {
	if subject == "" {
		subject = "orders.created"
	}
	return &OrderPublisher{nc: nc, subject: subject}
}

func (p *OrderPublisher) PublishOrderCreated(ctx context.Context, event ports.OrderCreatedEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p.subject, err)
	}
	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	return nil
}

// NoopPublisher descarta los eventos (NATS_URL vacío).
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderCreated(context.Context, ports.OrderCreatedEvent) error { return nil }
