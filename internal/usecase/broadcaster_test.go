package usecase

import (
	"context"
	"testing"

	"MarketPing/internal/domain/models"
)

func newTestBroadcaster(store *fakeStore, msgr *fakeMessenger) (*Broadcaster, *fakeSink, *fakeEvents) {
	sink := &fakeSink{}
	events := &fakeEvents{}
	b := NewBroadcaster(store, msgr, sink, events, fakeMetrics{}, testLogger())
	return b, sink, events
}

func TestBroadcastEmptySetIsNoop(t *testing.T) {
	msgr := &fakeMessenger{}
	b, sink, _ := newTestBroadcaster(newFakeStore(), msgr)

	result, err := b.Broadcast(context.Background(), "body", "10:00", ModeIntraday)
	if err != nil {
		t.Fatal(err)
	}
	if result.Total != 0 || len(msgr.sent) != 0 || len(sink.events) != 0 {
		t.Fatalf("empty subscriber set must be a no-op, got %+v", result)
	}
}

func TestBroadcastIsolatesFailures(t *testing.T) {
	store := newFakeStore("+1", "+2", "+3")
	msgr := &fakeMessenger{failTo: map[string]bool{"+2": true}}
	b, sink, events := newTestBroadcaster(store, msgr)

	result, err := b.Broadcast(context.Background(), "body", "closing", ModeClosing)
	if err != nil {
		t.Fatal(err)
	}
	if result.Sent != 2 || result.Failed != 1 {
		t.Fatalf("expected 2 sent / 1 failed, got %+v", result)
	}
	if len(sink.events) != 3 {
		t.Fatalf("every attempt must be recorded, got %d events", len(sink.events))
	}

	var failed int
	for _, e := range sink.events {
		if e.Status == models.DeliveryFailed {
			failed++
			if e.Error == "" {
				t.Fatal("failed event must carry the error")
			}
		} else if e.MessageID == "" {
			t.Fatal("sent event must carry the message id")
		}
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed event, got %d", failed)
	}
	if len(events.published) != 2 || events.published[0] != "delivery_failed" || events.published[1] != "broadcast" {
		t.Fatalf("expected delivery_failed then broadcast events, got %v", events.published)
	}
}

func TestSendOneRecordsAttempt(t *testing.T) {
	msgr := &fakeMessenger{failTo: map[string]bool{"+9": true}}
	b, sink, _ := newTestBroadcaster(newFakeStore(), msgr)

	if err := b.SendOne(context.Background(), "+1", "body", "inbound", ModeAdhoc); err != nil {
		t.Fatal(err)
	}
	if err := b.SendOne(context.Background(), "+9", "body", "inbound", ModeAdhoc); err == nil {
		t.Fatal("expected transport error")
	}
	if len(sink.events) != 2 {
		t.Fatalf("expected 2 recorded attempts, got %d", len(sink.events))
	}
}
