package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MarketPing/internal/domain/repository"
	"MarketPing/internal/realtime"
	"MarketPing/internal/scheduler"
	"MarketPing/pkg/config"
	xhttp "MarketPing/pkg/http"
	"MarketPing/pkg/logger"
	"MarketPing/pkg/queue"
)

// App encapsulates the application lifecycle: the alert schedule, the
// inbound request queue, the HTTP surface and the ops event hub.
type App struct {
	cfg        *config.Config
	log        *logger.Logger
	sched      *scheduler.Scheduler
	queue      *queue.RedisQueue
	hub        *realtime.Hub
	sink       repository.AlertSink
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *logger.Logger,
	sched *scheduler.Scheduler,
	q *queue.RedisQueue,
	hub *realtime.Hub,
	sink repository.AlertSink,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		sched:   sched,
		queue:   q,
		hub:     hub,
		sink:    sink,
		handler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	if err := a.queue.Start(); err != nil {
		return err
	}
	a.queue.StartRetryProcessor()
	a.log.Info("queue workers started", logger.Int("workers", a.cfg.Queue.Workers))

	if err := a.sched.Start(); err != nil {
		return err
	}

	opts := []xhttp.ServerOption{
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	}
	if a.cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithRequestMetrics(a.log, time.Second))
		if a.cfg.Metrics.Path != "" {
			opts = append(opts, xhttp.WithMetricsPath(a.cfg.Metrics.Path))
		}
	}
	a.httpServer = xhttp.NewServer(a.handler, opts...)
	if err := a.httpServer.Start(); err != nil {
		return err
	}
	a.log.Info("application started",
		logger.Int("port", a.cfg.Server.Port),
		logger.String("environment", a.cfg.Environment),
		logger.String("timezone", a.cfg.Timezone))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown stops services in reverse dependency order: no new triggers,
// drain the queue, close the HTTP surface, then release infrastructure.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	a.sched.Stop(ctx)

	if err := a.queue.Stop(ctx); err != nil {
		a.log.Warn("queue stop error", logger.Error(err))
	}

	if err := a.httpServer.Stop(ctx); err != nil {
		a.log.Error("http shutdown error", logger.Error(err))
	}

	a.hub.Close()

	if err := a.sink.Close(); err != nil {
		a.log.Warn("alert sink close error", logger.Error(err))
	}

	a.log.Info("shutdown complete")
	return nil
}
