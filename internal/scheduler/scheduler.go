package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"MarketPing/internal/market"
	"MarketPing/internal/usecase"
	"MarketPing/pkg/logger"
)

// Scheduler fires the fixed alert slots on trading days. Each slot runs
// a dispatch and a broadcast; a failed dispatch is logged and skipped,
// the next slot is unaffected.
type Scheduler struct {
	cron        *cron.Cron
	dispatcher  *usecase.Dispatcher
	broadcaster *usecase.Broadcaster
	location    *time.Location
	log         *logger.Logger
}

func New(
	dispatcher *usecase.Dispatcher,
	broadcaster *usecase.Broadcaster,
	location *time.Location,
	log *logger.Logger,
) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(location)),
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		location:    location,
		log:         log,
	}
}

// Start registers every slot and starts the cron loop. Slots fire
// Monday to Friday only; exchange holidays are not tracked, those runs
// simply report a quiet market.
func (s *Scheduler) Start() error {
	for _, slot := range market.Slots {
		slot := slot
		spec := fmt.Sprintf("%d %d * * 1-5", slot.Minute, slot.Hour)
		if _, err := s.cron.AddFunc(spec, func() { s.runSlot(slot) }); err != nil {
			return fmt.Errorf("register slot %s: %w", slot.ID(), err)
		}
	}

	s.cron.Start()
	s.log.Info("scheduler started",
		logger.Int("slots", len(market.Slots)),
		logger.String("timezone", s.location.String()))
	return nil
}

func (s *Scheduler) runSlot(slot market.Slot) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	s.log.Info("slot fired", logger.String("slot", slot.ID()), logger.String("label", slot.Label))

	body, mode, err := s.dispatcher.DispatchSlot(ctx, slot.Hour, slot.Minute)
	if err != nil {
		s.log.Error("slot dispatch failed", logger.String("slot", slot.ID()), logger.Error(err))
		return
	}
	if _, err := s.broadcaster.Broadcast(ctx, body, slot.ID(), mode); err != nil {
		s.log.Error("slot broadcast failed", logger.String("slot", slot.ID()), logger.Error(err))
	}
}

// Trigger runs one named trigger immediately, outside the schedule.
// Fixed slot names dispatch that slot; "night" and "weekend" dispatch
// the corresponding phase report.
func (s *Scheduler) Trigger(ctx context.Context, name string) (usecase.BroadcastResult, error) {
	var (
		body    string
		mode    usecase.Mode
		trigger string
		err     error
	)

	switch name {
	case "night":
		body, mode, err = s.dispatcher.DispatchPhase(ctx, market.PhaseNight, time.Now().In(s.location))
		trigger = "night"
	case "weekend":
		body, mode, err = s.dispatcher.DispatchPhase(ctx, market.PhaseWeekend, time.Now().In(s.location))
		trigger = "weekend"
	default:
		slot, ok := market.LookupTrigger(name)
		if !ok {
			return usecase.BroadcastResult{}, fmt.Errorf("unknown trigger %q", name)
		}
		body, mode, err = s.dispatcher.DispatchSlot(ctx, slot.Hour, slot.Minute)
		trigger = slot.ID()
	}
	if err != nil {
		return usecase.BroadcastResult{}, err
	}

	return s.broadcaster.Broadcast(ctx, body, trigger, mode)
}

// NextRuns reports the upcoming firing time of each registered slot.
func (s *Scheduler) NextRuns() []time.Time {
	entries := s.cron.Entries()
	out := make([]time.Time, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Next)
	}
	return out
}

// Stop halts the cron loop and waits for in-flight slot runs, bounded
// by ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()
	select {
	case <-done:
	case <-ctx.Done():
		s.log.Warn("scheduler stop timed out")
	}
}
