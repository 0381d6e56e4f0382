package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"MarketPing/internal/domain/models"
)

func newTestJob(g *fakeGenerator, msgr *fakeMessenger) *AdhocReportJob {
	d := newTestDispatcher(g, 0)
	b := NewBroadcaster(newFakeStore(), msgr, &fakeSink{}, &fakeEvents{}, fakeMetrics{}, testLogger())
	return NewAdhocReportJob(d, b, testLogger(), time.UTC)
}

func TestAdhocJobDeliversReport(t *testing.T) {
	msgr := &fakeMessenger{}
	job := newTestJob(&fakeGenerator{report: &models.Report{Sentiment: "Bullish"}}, msgr)

	payload := AdhocPayload{Address: "+911234", RequestedAt: time.Now().UTC()}
	if err := job.Handle(context.Background(), payload); err != nil {
		t.Fatal(err)
	}
	if len(msgr.bodies) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(msgr.bodies))
	}
	if !strings.Contains(msgr.bodies[0], "Bullish") {
		t.Fatalf("report body not delivered: %q", msgr.bodies[0])
	}
}

func TestAdhocJobDegradedReplyOnFailure(t *testing.T) {
	msgr := &fakeMessenger{}
	job := newTestJob(&fakeGenerator{err: errors.New("upstream timeout")}, msgr)

	// Returning nil keeps the message out of the retry loop.
	if err := job.Handle(context.Background(), AdhocPayload{Address: "+911234"}); err != nil {
		t.Fatal(err)
	}
	if len(msgr.bodies) != 1 {
		t.Fatalf("expected degraded reply, got %d deliveries", len(msgr.bodies))
	}
	if !strings.Contains(msgr.bodies[0], "Could not generate picks") {
		t.Fatalf("unexpected degraded reply %q", msgr.bodies[0])
	}
}

func TestAdhocJobParsesMapPayload(t *testing.T) {
	msgr := &fakeMessenger{}
	job := newTestJob(&fakeGenerator{report: &models.Report{}}, msgr)

	payload := map[string]interface{}{"address": "+911234"}
	if err := job.Handle(context.Background(), payload); err != nil {
		t.Fatal(err)
	}
	if len(msgr.bodies) != 1 {
		t.Fatal("map payload not handled")
	}
}

func TestAdhocJobBadPayloadIsDropped(t *testing.T) {
	msgr := &fakeMessenger{}
	job := newTestJob(&fakeGenerator{report: &models.Report{}}, msgr)

	if err := job.Handle(context.Background(), 42); err != nil {
		t.Fatal("bad payload must be dropped, not retried")
	}
	if len(msgr.bodies) != 0 {
		t.Fatal("bad payload must not send anything")
	}
}
