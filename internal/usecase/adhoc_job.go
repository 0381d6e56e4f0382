package usecase

import (
	"context"
	"time"

	"MarketPing/internal/market"
	"MarketPing/pkg/logger"
	"MarketPing/pkg/queue"
)

// AdhocMessageType is the queue message type for instant-picks requests.
const AdhocMessageType = "adhoc_report"

// AdhocReportJob generates an instant report off the request queue and
// delivers it to the single requester. Generation can take tens of
// seconds, which is exactly why it is not done on the webhook path.
type AdhocReportJob struct {
	dispatcher  *Dispatcher
	broadcaster *Broadcaster
	log         *logger.Logger
	location    *time.Location
}

func NewAdhocReportJob(
	dispatcher *Dispatcher,
	broadcaster *Broadcaster,
	log *logger.Logger,
	location *time.Location,
) *AdhocReportJob {
	return &AdhocReportJob{
		dispatcher:  dispatcher,
		broadcaster: broadcaster,
		log:         log,
		location:    location,
	}
}

func (j *AdhocReportJob) Name() string { return "adhoc-report" }

func (j *AdhocReportJob) Type() string { return AdhocMessageType }

// Handle always returns nil: a failed generation is answered with a
// degraded reply instead of being retried, because a retried report
// minutes later would answer a question nobody is still asking.
func (j *AdhocReportJob) Handle(ctx context.Context, payload interface{}) error {
	req, err := queue.ParsePayload[AdhocPayload](payload)
	if err != nil {
		j.log.Error("bad adhoc payload", logger.Error(err))
		return nil
	}

	now := time.Now().In(j.location)
	phase := market.Classify(now)

	body, mode, err := j.dispatcher.DispatchPhase(ctx, phase, now)
	if err != nil {
		j.log.Error("adhoc report failed",
			logger.String("address", req.Address),
			logger.String("phase", string(phase)),
			logger.Error(err))
		if sendErr := j.broadcaster.SendOne(ctx, req.Address, degradedText(err), "inbound", ModeAdhoc); sendErr != nil {
			j.log.Error("degraded reply failed", logger.Error(sendErr))
		}
		return nil
	}

	if err := j.broadcaster.SendOne(ctx, req.Address, body, "inbound", mode); err != nil {
		j.log.Error("adhoc delivery failed",
			logger.String("address", req.Address),
			logger.Error(err))
	}
	return nil
}
