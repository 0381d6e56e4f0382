package usecase

import (
	"context"
	"time"

	"MarketPing/internal/domain/models"
	"MarketPing/internal/domain/repository"
	"MarketPing/pkg/logger"
)

// Broadcaster delivers one message to every subscriber. A failure for
// one recipient never blocks the rest; each attempt is recorded on the
// alert sink and counted.
type Broadcaster struct {
	subscribers repository.SubscriberStore
	messenger   repository.Messenger
	sink        repository.AlertSink
	events      repository.EventStream
	metrics     repository.Metrics
	log         *logger.Logger
}

func NewBroadcaster(
	subscribers repository.SubscriberStore,
	messenger repository.Messenger,
	sink repository.AlertSink,
	events repository.EventStream,
	metrics repository.Metrics,
	log *logger.Logger,
) *Broadcaster {
	return &Broadcaster{
		subscribers: subscribers,
		messenger:   messenger,
		sink:        sink,
		events:      events,
		metrics:     metrics,
		log:         log,
	}
}

// BroadcastResult summarizes one fan-out.
type BroadcastResult struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Broadcast sends body to every current subscriber. The subscriber set
// is read once up front; joins and leaves during the fan-out take
// effect on the next broadcast. trigger and mode are recorded for the
// delivery history only.
func (b *Broadcaster) Broadcast(ctx context.Context, body, trigger string, mode Mode) (BroadcastResult, error) {
	addresses, err := b.subscribers.ListAll(ctx)
	if err != nil {
		b.metrics.RecordError("list_subscribers")
		return BroadcastResult{}, err
	}
	if len(addresses) == 0 {
		b.log.Warn("broadcast skipped, no subscribers", logger.String("trigger", trigger))
		return BroadcastResult{}, nil
	}

	b.metrics.RecordBroadcastSize(len(addresses))
	result := BroadcastResult{Total: len(addresses)}

	for _, addr := range addresses {
		event := &models.AlertEvent{
			Timestamp: time.Now().UTC(),
			Address:   addr,
			Trigger:   trigger,
			Mode:      string(mode),
		}

		sid, err := b.messenger.Send(ctx, addr, body)
		if err != nil {
			result.Failed++
			event.Status = models.DeliveryFailed
			event.Error = err.Error()
			b.metrics.RecordDelivery(models.DeliveryFailed)
			b.events.Publish("delivery_failed", event)
			b.log.Error("delivery failed",
				logger.String("to", addr),
				logger.String("trigger", trigger),
				logger.Error(err))
		} else {
			result.Sent++
			event.Status = models.DeliverySent
			event.MessageID = sid
			b.metrics.RecordDelivery(models.DeliverySent)
		}

		if err := b.sink.Record(ctx, event); err != nil {
			b.log.Warn("alert history record failed", logger.Error(err))
		}
	}

	b.events.Publish("broadcast", map[string]interface{}{
		"trigger": trigger,
		"mode":    string(mode),
		"result":  result,
	})
	b.log.Info("broadcast complete",
		logger.String("trigger", trigger),
		logger.Int("sent", result.Sent),
		logger.Int("failed", result.Failed))

	return result, nil
}

// SendOne delivers a single direct reply outside a broadcast, recording
// it the same way.
func (b *Broadcaster) SendOne(ctx context.Context, to, body, trigger string, mode Mode) error {
	event := &models.AlertEvent{
		Timestamp: time.Now().UTC(),
		Address:   to,
		Trigger:   trigger,
		Mode:      string(mode),
	}

	sid, err := b.messenger.Send(ctx, to, body)
	if err != nil {
		event.Status = models.DeliveryFailed
		event.Error = err.Error()
		b.metrics.RecordDelivery(models.DeliveryFailed)
	} else {
		event.Status = models.DeliverySent
		event.MessageID = sid
		b.metrics.RecordDelivery(models.DeliverySent)
	}

	if recErr := b.sink.Record(ctx, event); recErr != nil {
		b.log.Warn("alert history record failed", logger.Error(recErr))
	}
	return err
}
