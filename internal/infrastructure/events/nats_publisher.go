// Package events publica eventos de inventario en NATS.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/moganraj05/Inventory-Management-System/internal/application/stock"
)

// Subjects de publicación.
const (
	SubjectMovementApplied = "inventory.movement.applied"
	SubjectStockLow        = "inventory.stock.low"
)

var _ stock.EventPublisher = (*NATSPublisher)(nil)

// NATSPublisher publica los eventos del servicio de movimientos en NATS.
type NATSPublisher struct {
	conn *nats.Conn
}

// Connect abre la conexión NATS con reconexión automática.
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("conectar NATS: %w", err)
	}
	return conn, nil
}

// NewNATSPublisher construye el publicador sobre una conexión existente.
func NewNATSPublisher(conn *nats.Conn) *NATSPublisher {
	return &NATSPublisher{conn: conn}
}

// MovementApplied publica el evento de movimiento aplicado.
func (p *NATSPublisher) MovementApplied(_ context.Context, ev stock.MovementAppliedEvent) error {
	return p.publish(SubjectMovementApplied, ev)
}

// LowStock publica la alerta de stock bajo.
func (p *NATSPublisher) LowStock(_ context.Context, ev stock.LowStockEvent) error {
	return p.publish(SubjectStockLow, ev)
}

func (p *NATSPublisher) publish(subject string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal evento %s: %w", subject, err)
	}
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publicar %s: %w", subject, err)
	}
	return nil
}
