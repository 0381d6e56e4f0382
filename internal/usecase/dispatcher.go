package usecase

import (
	"context"
	"fmt"
	"time"

	"MarketPing/internal/domain/models"
	"MarketPing/internal/domain/repository"
	"MarketPing/internal/market"
	"MarketPing/internal/service/cache"
	"MarketPing/pkg/logger"
)

// Dispatcher turns a trigger (a scheduled slot or a market phase) into a
// rendered message: it picks the report mode, calls the generator, and
// hands the result to the formatter.
type Dispatcher struct {
	generator repository.ReportGenerator
	formatter *Formatter
	cache     *cache.ReportCache
	metrics   repository.Metrics
	log       *logger.Logger
	location  *time.Location
}

func NewDispatcher(
	generator repository.ReportGenerator,
	formatter *Formatter,
	reportCache *cache.ReportCache,
	metrics repository.Metrics,
	log *logger.Logger,
	location *time.Location,
) *Dispatcher {
	return &Dispatcher{
		generator: generator,
		formatter: formatter,
		cache:     reportCache,
		metrics:   metrics,
		log:       log,
		location:  location,
	}
}

// DispatchSlot produces the message for a fixed schedule slot. Slot
// sends are never cached: each one is a fresh market read.
func (d *Dispatcher) DispatchSlot(ctx context.Context, hour, minute int) (string, Mode, error) {
	mode := slotMode(hour, minute)
	started := time.Now()

	report, err := d.generate(ctx, mode, hour)
	d.metrics.RecordLatency("generate_report", time.Since(started).Seconds())
	if err != nil {
		d.metrics.RecordError("generate_report")
		return "", mode, fmt.Errorf("generate %s report: %w", mode, err)
	}
	d.metrics.RecordReport(string(mode))

	now := time.Now().In(d.location)
	return d.formatter.Format(report, mode, market.SlotLabel(hour, minute), now), mode, nil
}

// DispatchPhase produces the message for a subscriber-initiated request
// given the current market phase. Results are cached briefly so a burst
// of requests does not fan out into a burst of generator calls.
func (d *Dispatcher) DispatchPhase(ctx context.Context, phase market.Phase, now time.Time) (string, Mode, error) {
	mode := phaseMode(phase)
	hour := now.In(d.location).Hour()
	key := fmt.Sprintf("%s:%02d", mode, hour)

	if report, ok := d.cache.Get(key); ok {
		d.log.Debug("report cache hit", logger.String("key", key))
		return d.formatter.Format(report, mode, "", now.In(d.location)), mode, nil
	}

	started := time.Now()
	report, err := d.generate(ctx, mode, hour)
	d.metrics.RecordLatency("generate_report", time.Since(started).Seconds())
	if err != nil {
		d.metrics.RecordError("generate_report")
		return "", mode, fmt.Errorf("generate %s report: %w", mode, err)
	}
	d.metrics.RecordReport(string(mode))
	d.cache.Set(key, report)

	return d.formatter.Format(report, mode, "", now.In(d.location)), mode, nil
}

func (d *Dispatcher) generate(ctx context.Context, mode Mode, hour int) (*models.Report, error) {
	switch mode {
	case ModeOpen:
		return d.generator.MarketOpen(ctx)
	case ModeClosing:
		return d.generator.Closing(ctx)
	case ModeAdhoc:
		return d.generator.Adhoc(ctx, hour)
	case ModePreOpen:
		return d.generator.PreOpen(ctx)
	case ModeNight:
		return d.generator.NextDay(ctx)
	case ModeWeekend:
		return d.generator.Weekend(ctx)
	default:
		return d.generator.Intraday(ctx, hour)
	}
}

func slotMode(hour, minute int) Mode {
	switch {
	case hour == 9 && minute == 20:
		return ModeOpen
	case hour == 15 && minute == 0:
		return ModeClosing
	default:
		return ModeIntraday
	}
}

func phaseMode(phase market.Phase) Mode {
	switch phase {
	case market.PhaseMarket:
		return ModeAdhoc
	case market.PhasePreOpen:
		return ModePreOpen
	case market.PhaseWeekend:
		return ModeWeekend
	default:
		return ModeNight
	}
}
