package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jastipid/storefront/internal/apperror"
	"github.com/jastipid/storefront/internal/modules/cart"
	"github.com/jastipid/storefront/internal/modules/profile"
)

// CartSource is the slice of the cart service checkout needs.
type CartSource interface {
	Summary(ctx context.Context) (*cart.Summary, error)
	Clear(ctx context.Context) error
}

// ProfileSource provides the current storefront profile.
type ProfileSource interface {
	Current(ctx context.Context) (*profile.Profile, error)
}

// Service coordinates checkout: validate, build the WhatsApp handoff, push
// the order to the sink.
type Service interface {
	Checkout(ctx context.Context) (*Result, error)
}

type service struct {
	carts    CartSource
	profiles ProfileSource
	sink     Sink
	log      *zap.Logger
}

// NewService creates a new checkout service.
func NewService(carts CartSource, profiles ProfileSource, sink Sink, log *zap.Logger) Service {
	return &service{carts: carts, profiles: profiles, sink: sink, log: log}
}

// Checkout rejects empty carts and missing profiles, then performs the
// two-step handoff: the WhatsApp deep link is always built, and the sink
// write is attempted afterwards. A sink failure keeps the cart and is
// reported in the result rather than rolling back the handoff. There is no
// idempotency key; retrying after a partial failure writes a second order.
func (s *service) Checkout(ctx context.Context) (*Result, error) {
	sum, err := s.carts.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if len(sum.Lines) == 0 {
		return nil, apperror.Validation("cart is empty")
	}

	prof, err := s.profiles.Current(ctx)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, apperror.Validation("no profile configured")
		}
		return nil, err
	}

	items := make([]OrderItem, 0, len(sum.Lines))
	for _, l := range sum.Lines {
		items = append(items, OrderItem{
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.UnitPrice * l.Quantity,
		})
	}

	order := &Order{
		ID:             uuid.New(),
		SheetID:        profile.SheetID(prof.SheetURL),
		ProfileName:    prof.Name,
		WhatsAppNumber: prof.WhatsAppNumber,
		Items:          items,
		Total:          sum.Total,
		CreatedAt:      time.Now().UTC(),
	}

	message := BuildMessage(items, sum.Total)
	result := &Result{
		Order:       order,
		Message:     message,
		WhatsAppURL: BuildLink(prof.WhatsAppNumber, message),
	}

	ref, err := s.sink.Save(ctx, order)
	if err != nil {
		s.log.Error("order sink save failed", zap.String("order_id", order.ID.String()), zap.Error(err))
		result.PersistErr = apperror.Persist("failed to save order", err).Error()
		return result, nil
	}

	result.Persisted = true
	result.SinkRef = ref
	if err := s.carts.Clear(ctx); err != nil {
		// The order is already persisted; a stale cart is the lesser harm.
		s.log.Warn("cart clear after checkout failed", zap.Error(err))
	}

	s.log.Info("checkout completed",
		zap.String("order_id", order.ID.String()),
		zap.String("sink_ref", ref),
		zap.Int64("total", order.Total),
		zap.Int("items", len(items)))
	return result, nil
}
