package di

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domrepo "MarketPing/internal/domain/repository"
	"MarketPing/internal/handler/api"
	"MarketPing/internal/realtime"
	internalrepo "MarketPing/internal/repository"
	"MarketPing/internal/scheduler"
	anthropicsvc "MarketPing/internal/service/anthropic"
	"MarketPing/internal/service/cache"
	"MarketPing/internal/service/twilio"
	"MarketPing/internal/usecase"
	pkgch "MarketPing/pkg/clickhouse"
	"MarketPing/pkg/config"
	xhttp "MarketPing/pkg/http"
	pkgkafka "MarketPing/pkg/kafka"
	"MarketPing/pkg/logger"
	"MarketPing/pkg/metrics"
	"MarketPing/pkg/queue"
	"MarketPing/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stdout",
	})
}

// ProvideLocation returns the configured market timezone.
func ProvideLocation(cfg *config.Config) *time.Location {
	return cfg.Location()
}

// ProvideRedisClient creates the shared redis client.
func ProvideRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideSubscriberStore creates the redis-backed subscriber set.
func ProvideSubscriberStore(client *redis.Client, cfg *config.Config) domrepo.SubscriberStore {
	return internalrepo.NewRedisSubscriberStore(client, cfg.Redis.SubscriberKey)
}

// ProvideGenerator creates the Claude report generator.
func ProvideGenerator(cfg *config.Config, log *logger.Logger) domrepo.ReportGenerator {
	return anthropicsvc.NewService(cfg.Anthropic.APIKey, log,
		anthropicsvc.WithModel(cfg.Anthropic.Model),
		anthropicsvc.WithMaxTokens(cfg.Anthropic.MaxTokens),
	)
}

// ProvideMessenger creates the Twilio WhatsApp client.
func ProvideMessenger(cfg *config.Config, log *logger.Logger) domrepo.Messenger {
	return twilio.NewClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.FromNumber,
		log,
		twilio.WithBaseURL(cfg.Twilio.BaseURL),
		twilio.WithTimeout(cfg.Twilio.Timeout),
	)
}

// ProvideHub creates the ops websocket event hub.
func ProvideHub(log *logger.Logger) *realtime.Hub {
	return realtime.NewHub(log)
}

// ProvideEventStream exposes the hub as the event stream port.
func ProvideEventStream(hub *realtime.Hub) domrepo.EventStream {
	return hub
}

// ProvideAlertSink selects the delivery history backend.
func ProvideAlertSink(cfg *config.Config) (domrepo.AlertSink, error) {
	switch cfg.History.Backend {
	case "clickhouse":
		client, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.InitSchema(ctx, internalrepo.AlertHistorySchema(cfg.ClickHouse.Table)); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("clickhouse schema: %w", err)
		}
		return internalrepo.NewClickHouseAlertSink(client.DB(), cfg.ClickHouse.Table, client.Close), nil

	case "kafka":
		producer, err := pkgkafka.NewProducer(
			pkgkafka.WithBrokers(cfg.Kafka.Brokers),
			pkgkafka.WithCompression(cfg.Kafka.Compression),
			pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
			pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
			pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
			pkgkafka.WithHashByKey(true),
		)
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		return internalrepo.NewKafkaAlertSink(producer, cfg.Kafka.Topic), nil

	default:
		return internalrepo.NopAlertSink{}, nil
	}
}

// ProvideReportCache creates the short-lived report cache.
func ProvideReportCache(cfg *config.Config) *cache.ReportCache {
	return cache.NewReportCache(cfg.Cache.AdhocTTL)
}

// ProvideFormatter creates the message formatter.
func ProvideFormatter() *usecase.Formatter {
	return usecase.NewFormatter()
}

// ProvideDispatcher creates the report dispatcher.
func ProvideDispatcher(
	generator domrepo.ReportGenerator,
	formatter *usecase.Formatter,
	reportCache *cache.ReportCache,
	m domrepo.Metrics,
	log *logger.Logger,
	location *time.Location,
) *usecase.Dispatcher {
	return usecase.NewDispatcher(generator, formatter, reportCache, m, log, location)
}

// ProvideBroadcaster creates the subscriber fan-out.
func ProvideBroadcaster(
	subscribers domrepo.SubscriberStore,
	messenger domrepo.Messenger,
	sink domrepo.AlertSink,
	events domrepo.EventStream,
	m domrepo.Metrics,
	log *logger.Logger,
) *usecase.Broadcaster {
	return usecase.NewBroadcaster(subscribers, messenger, sink, events, m, log)
}

// ProvideAdhocQueue creates the redis queue that serves inbound
// instant-picks requests.
func ProvideAdhocQueue(
	cfg *config.Config,
	log *logger.Logger,
	client *redis.Client,
	dispatcher *usecase.Dispatcher,
	broadcaster *usecase.Broadcaster,
	location *time.Location,
) *queue.RedisQueue {
	q := queue.NewRedisQueue(log,
		&queue.QueueConfig{
			Workers:    cfg.Queue.Workers,
			RetryLimit: cfg.Queue.RetryLimit,
			RetryDelay: cfg.Queue.RetryDelay,
		},
		client,
		queue.ModeProducerConsumer,
		queue.WithKeyPrefix(cfg.Queue.KeyPrefix),
	)
	q.RegisterJob(usecase.NewAdhocReportJob(dispatcher, broadcaster, log, location))
	return q
}

// ProvideQueueService narrows the queue for publishers.
func ProvideQueueService(q *queue.RedisQueue) queue.QueueService {
	return q
}

// ProvideCommandRouter creates the inbound command router.
func ProvideCommandRouter(
	subscribers domrepo.SubscriberStore,
	q queue.QueueService,
	broadcaster *usecase.Broadcaster,
	m domrepo.Metrics,
	log *logger.Logger,
	location *time.Location,
) *usecase.CommandRouter {
	return usecase.NewCommandRouter(subscribers, q, broadcaster, m, log, location)
}

// ProvideScheduler creates the cron alert scheduler.
func ProvideScheduler(
	dispatcher *usecase.Dispatcher,
	broadcaster *usecase.Broadcaster,
	location *time.Location,
	log *logger.Logger,
) *scheduler.Scheduler {
	return scheduler.New(dispatcher, broadcaster, location, log)
}

// ProvideHTTPHandler creates the webhook and ops HTTP handler.
func ProvideHTTPHandler(
	log *logger.Logger,
	router *usecase.CommandRouter,
	subscribers domrepo.SubscriberStore,
	sched *scheduler.Scheduler,
	hub *realtime.Hub,
	location *time.Location,
) xhttp.Handler {
	return api.NewAlertsEchoHandler(log, router, subscribers, sched, hub, location)
}

// ProvideApp assembles the application.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	sched *scheduler.Scheduler,
	q *queue.RedisQueue,
	hub *realtime.Hub,
	sink domrepo.AlertSink,
	handler xhttp.Handler,
) *server.App {
	return server.New(cfg, log, sched, q, hub, sink, handler)
}
