package api

import (
	"time"

	"github.com/labstack/echo/v4"

	"MarketPing/internal/domain/models"
	domrepo "MarketPing/internal/domain/repository"
	"MarketPing/internal/market"
	"MarketPing/internal/realtime"
	"MarketPing/internal/scheduler"
	"MarketPing/internal/usecase"
	xhttp "MarketPing/pkg/http"
	xlogger "MarketPing/pkg/logger"
)

// AlertsEchoHandler exposes the inbound webhook and the ops surface.
type AlertsEchoHandler struct {
	logger      *xlogger.Logger
	router      *usecase.CommandRouter
	subscribers domrepo.SubscriberStore
	scheduler   *scheduler.Scheduler
	hub         *realtime.Hub
	location    *time.Location
}

func NewAlertsEchoHandler(
	logger *xlogger.Logger,
	router *usecase.CommandRouter,
	subscribers domrepo.SubscriberStore,
	sched *scheduler.Scheduler,
	hub *realtime.Hub,
	location *time.Location,
) *AlertsEchoHandler {
	return &AlertsEchoHandler{
		logger:      logger,
		router:      router,
		subscribers: subscribers,
		scheduler:   sched,
		hub:         hub,
		location:    location,
	}
}

func (h *AlertsEchoHandler) RegisterRoutes(e *echo.Echo) {
	// The webhook is registered on both verbs; the provider can be
	// configured either way.
	e.GET("/webhook/whatsapp", h.Webhook)
	e.POST("/webhook/whatsapp", h.Webhook)

	e.GET("/health", h.Health)
	e.GET("/subscribers", h.Subscribers)
	e.GET("/trigger/:slot", h.Trigger)
	e.POST("/trigger/:slot", h.Trigger)
	e.GET("/ws/events", h.hub.Handle)
}

// Webhook handles an inbound message from the messaging provider.
func (h *AlertsEchoHandler) Webhook(c echo.Context) error {
	req := &models.InboundMessage{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	reply, err := h.router.Handle(c.Request().Context(), req.From, req.Body, time.Now().In(h.location))
	if err != nil {
		h.logger.Error("inbound handling failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	h.hub.Publish("inbound", map[string]string{
		"from": usecase.NormalizeAddress(req.From),
		"body": req.Body,
	})
	return xhttp.SuccessResponse(c, map[string]string{
		"status": "ok",
		"reply":  reply,
	})
}

func (h *AlertsEchoHandler) Health(c echo.Context) error {
	now := time.Now().In(h.location)
	count, err := h.subscribers.Count(c.Request().Context())
	if err != nil {
		h.logger.Error("subscriber count failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, map[string]interface{}{
		"status":      "healthy",
		"time":        now.Format(time.RFC3339),
		"session":     string(market.Classify(now)),
		"subscribers": count,
		"next_runs":   h.scheduler.NextRuns(),
	})
}

func (h *AlertsEchoHandler) Subscribers(c echo.Context) error {
	addresses, err := h.subscribers.ListAll(c.Request().Context())
	if err != nil {
		h.logger.Error("subscriber list failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.ListResponse(c, addresses, int64(len(addresses)))
}

// Trigger fires one named alert immediately. Meant for manual testing
// and ops, not for the provider.
func (h *AlertsEchoHandler) Trigger(c echo.Context) error {
	name := c.Param("slot")

	result, err := h.scheduler.Trigger(c.Request().Context(), name)
	if err != nil {
		h.logger.Error("manual trigger failed", xlogger.String("trigger", name), xlogger.Error(err))
		return xhttp.BadRequestResponse(c, map[string]interface{}{
			"error":    err.Error(),
			"triggers": market.TriggerNames(),
		})
	}
	return xhttp.SuccessResponse(c, result)
}
