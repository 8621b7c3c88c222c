package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/flashmart/checkout-service/internal/domain"
	webhookdto "github.com/flashmart/checkout-service/internal/usecase/dto/webhook"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgAlreadyProcessed = "Webhook already processed"
	msgPaymentSuccess   = "Payment successful, order marked as paid"
	msgPaymentFailure   = "Payment failed, order cancelled and stock returned"
)

// ProcessWebhook settles one payment notification exactly once per
// idempotency key, however many times the provider retries it and however
// the retries interleave.
//
// The fast path looks the key up outside any transaction; a recorded
// delivery is replayed as already-processed without touching anything. Two
// concurrent deliveries can both miss that check, so the log insert inside
// the transaction is the real gate: its unique key admits exactly one of
// them and the loser is folded into the replay answer.
//
// A notification that beats its own order commits a log with a NULL order
// id and reports the miss; retries of that key are then suppressed, and
// reconciliation is an operator concern. Infrastructure errors roll the log
// back so the provider's next retry re-enters the full path.
func (uc *DefaultWebhookUsecase) ProcessWebhook(ctx context.Context, input *webhookdto.ProcessWebhookInput) (*webhookdto.WebhookOutput, error) {
	status := domain.PaymentStatus(input.PaymentStatus)
	if status != domain.PaymentStatusSuccess && status != domain.PaymentStatusFailure {
		// The edge validates the enum; reaching this is a bug upstream.
		return nil, fmt.Errorf("unexpected payment status %q", input.PaymentStatus)
	}

	existing, err := uc.WebhookRepo.GetWebhookLogByKey(ctx, input.IdempotencyKey)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		uc.Metrics.RecordWebhookProcessed("replayed")
		zap.L().Info("webhook replayed",
			zap.String("idempotency_key", input.IdempotencyKey))
		return &webhookdto.WebhookOutput{Message: msgAlreadyProcessed, AlreadyProcessed: true}, nil
	}

	var (
		orderMissing bool
		settled      bool
		order        *domain.Order
	)

	err = uc.TxManager.Do(ctx, func(ctx context.Context) error {
		orderMissing, settled, order = false, false, nil

		log := &domain.WebhookLog{
			ID:             uuid.New().String(),
			IdempotencyKey: input.IdempotencyKey,
			Status:         status,
			Payload:        string(input.RawPayload),
			ProcessedAt:    uc.Clock.Now(),
		}
		if err := uc.WebhookRepo.CreateWebhookLog(ctx, log); err != nil {
			return err
		}

		loaded, err := uc.OrderRepo.GetOrderByID(ctx, input.OrderID)
		if errors.Is(err, domain.ErrOrderNotFound) {
			// Arrived before the order. Commit the log as-is so retries of
			// this key stop here.
			orderMissing = true
			return nil
		}
		if err != nil {
			return err
		}
		order = loaded

		if err := uc.WebhookRepo.SetWebhookLogOrder(ctx, log.ID, order.ID); err != nil {
			return err
		}

		switch status {
		case domain.PaymentStatusSuccess:
			ok, err := uc.OrderRepo.MarkOrderPaid(ctx, order.ID, uc.Clock.Now())
			if err != nil {
				return err
			}
			settled = ok
		case domain.PaymentStatusFailure:
			ok, err := uc.Orders.CancelOrder(ctx, order)
			if err != nil {
				return err
			}
			settled = ok
		}
		// A terminal order leaves settled false; the log still commits so
		// the delivery is not retried forever against a finished order.
		return nil
	})
	if errors.Is(err, domain.ErrDuplicateWebhook) {
		uc.Metrics.RecordWebhookProcessed("replayed")
		zap.L().Info("webhook replayed",
			zap.String("idempotency_key", input.IdempotencyKey))
		return &webhookdto.WebhookOutput{Message: msgAlreadyProcessed, AlreadyProcessed: true}, nil
	}
	if err != nil {
		return nil, err
	}

	if orderMissing {
		uc.Metrics.RecordWebhookProcessed("early")
		zap.L().Warn("webhook arrived before its order",
			zap.String("idempotency_key", input.IdempotencyKey),
			zap.Int64("order_id", input.OrderID))
		return nil, domain.ErrOrderNotFoundForWebhook
	}

	switch status {
	case domain.PaymentStatusSuccess:
		if settled {
			uc.Metrics.RecordWebhookProcessed("paid")
			uc.Metrics.RecordOrderPaid()
			zap.L().Info("order paid",
				zap.Int64("order_id", order.ID),
				zap.String("idempotency_key", input.IdempotencyKey))
			go func(event domain.OrderEvent) {
				if err := uc.Publisher.PublishOrderEvent(event); err != nil {
					zap.L().Error("failed to publish order event",
						zap.String("event_type", event.EventType), zap.Error(err))
				}
			}(domain.OrderEvent{
				EventType:  domain.OrderEventPaid,
				OrderID:    order.ID,
				HoldID:     order.HoldID,
				ProductID:  order.ProductID,
				Quantity:   order.Quantity,
				TotalPrice: order.TotalPrice.StringFixed(2),
				Status:     string(domain.OrderStatusPaid),
				OccurredAt: uc.Clock.Now(),
			})
		} else {
			uc.Metrics.RecordWebhookProcessed("ignored")
			zap.L().Warn("success webhook for order no longer pending",
				zap.Int64("order_id", order.ID), zap.String("status", string(order.Status)))
		}
		return &webhookdto.WebhookOutput{Message: msgPaymentSuccess}, nil
	default:
		if settled {
			// CancelOrder already records metrics and publishes the event.
			uc.Metrics.RecordWebhookProcessed("cancelled")
		} else {
			uc.Metrics.RecordWebhookProcessed("ignored")
			zap.L().Warn("failure webhook for order no longer pending",
				zap.Int64("order_id", order.ID), zap.String("status", string(order.Status)))
		}
		return &webhookdto.WebhookOutput{Message: msgPaymentFailure}, nil
	}
}
