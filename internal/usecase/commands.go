package usecase

import (
	"context"
	"strings"
	"time"

	"MarketPing/internal/domain/repository"
	"MarketPing/internal/market"
	"MarketPing/pkg/logger"
	"MarketPing/pkg/queue"
)

// AdhocPayload is the queue message behind a subscriber-initiated
// report request.
type AdhocPayload struct {
	Address     string    `json:"address"`
	RequestedAt time.Time `json:"requested_at"`
}

// CommandRouter interprets inbound chat messages. Known keywords manage
// the subscription; anything else is treated as a request for instant
// picks, acknowledged immediately and served from the queue. Every
// reply is delivered over the messaging transport, not just echoed to
// the webhook caller.
type CommandRouter struct {
	subscribers repository.SubscriberStore
	queue       queue.QueueService
	replies     *Broadcaster
	metrics     repository.Metrics
	log         *logger.Logger
	location    *time.Location
}

func NewCommandRouter(
	subscribers repository.SubscriberStore,
	q queue.QueueService,
	replies *Broadcaster,
	metrics repository.Metrics,
	log *logger.Logger,
	location *time.Location,
) *CommandRouter {
	return &CommandRouter{
		subscribers: subscribers,
		queue:       q,
		replies:     replies,
		metrics:     metrics,
		log:         log,
		location:    location,
	}
}

// Handle routes one inbound message, sends the synchronous reply to the
// sender and returns its text for the webhook response.
func (r *CommandRouter) Handle(ctx context.Context, from, body string, now time.Time) (string, error) {
	address := NormalizeAddress(from)
	command := strings.ToLower(strings.TrimSpace(body))

	switch command {
	case "start", "subscribe", "hi", "hello", "hey":
		if err := r.subscribers.Add(ctx, address); err != nil {
			r.metrics.RecordError("subscribe")
			return "", err
		}
		r.log.Info("subscriber added", logger.String("address", address))
		return r.reply(ctx, address, onboardingText), nil

	case "stop", "unsubscribe":
		if err := r.subscribers.Remove(ctx, address); err != nil {
			r.metrics.RecordError("unsubscribe")
			return "", err
		}
		r.log.Info("subscriber removed", logger.String("address", address))
		return r.reply(ctx, address, unsubscribeText), nil

	case "help":
		return r.reply(ctx, address, helpText), nil
	}

	// Any other text is an instant-picks request. It also subscribes the
	// sender so follow-up scheduled alerts reach them.
	if err := r.subscribers.Add(ctx, address); err != nil {
		r.metrics.RecordError("subscribe")
		return "", err
	}

	payload := AdhocPayload{Address: address, RequestedAt: now.UTC()}
	if err := r.queue.PublishMessage(ctx, AdhocMessageType, payload); err != nil {
		r.metrics.RecordError("enqueue_adhoc")
		return "", err
	}
	r.log.Info("adhoc report queued", logger.String("address", address))

	return r.reply(ctx, address, waitText(market.Classify(now.In(r.location)))), nil
}

// reply delivers one immediate reply to the sender. The command itself
// already succeeded, so a transport failure is logged and recorded but
// does not fail the inbound request.
func (r *CommandRouter) reply(ctx context.Context, address, text string) string {
	if err := r.replies.SendOne(ctx, address, text, "inbound", ModeAdhoc); err != nil {
		r.metrics.RecordError("reply_delivery")
		r.log.Error("reply delivery failed",
			logger.String("address", address),
			logger.Error(err))
	}
	return text
}

// NormalizeAddress strips the channel prefix so the subscriber set is
// keyed by bare number regardless of transport.
func NormalizeAddress(from string) string {
	return strings.TrimSpace(strings.TrimPrefix(from, "whatsapp:"))
}
