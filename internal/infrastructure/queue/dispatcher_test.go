package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/multixy/storefront/internal/core/domain"
)

type captureService struct {
	events chan domain.AuditEvent
}

func (s *captureService) Process(_ context.Context, event domain.AuditEvent) error {
	s.events <- event
	return nil
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &captureService{events: make(chan domain.AuditEvent, 4)}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	sent := domain.AuditEvent{
		Email:   "a@b.com",
		Action:  domain.AuditLogin,
		Success: true,
	}
	d.Record(sent)

	select {
	case got := <-svc.events:
		if got.Email != sent.Email || got.Action != sent.Action || !got.Success {
			t.Fatalf("unexpected event: %+v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event was not processed")
	}
}

func TestDispatcher_SameAccountSameShard(t *testing.T) {
	d := NewDispatcher(8, &captureService{events: make(chan domain.AuditEvent, 1)}, zerolog.Nop())

	first := d.shardIndex("a@b.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("a@b.com"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	// No workers started: channels fill up and Record must not block.
	d := NewDispatcher(1, &captureService{events: make(chan domain.AuditEvent)}, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(domain.AuditEvent{Email: "a@b.com", Action: domain.AuditLogin})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full buffer")
	}
}
