package checkout

import (
	"context"

	"go.uber.org/zap"
)

// Sink is the external order store. Save pushes the order and returns the
// store-generated reference for the written record.
type Sink interface {
	Save(ctx context.Context, order *Order) (string, error)
}

type noopSink struct{ log *zap.Logger }

// NewNoopSink returns a sink for dev mode: orders are logged, not stored.
func NewNoopSink(log *zap.Logger) Sink { return &noopSink{log: log} }

func (s *noopSink) Save(_ context.Context, order *Order) (string, error) {
	s.log.Info("dev mode: order not persisted",
		zap.String("order_id", order.ID.String()),
		zap.Int64("total", order.Total))
	return order.ID.String(), nil
}
