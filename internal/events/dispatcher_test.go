package events

import (
	"context"
	"errors"
	"testing"
)

func TestPublishInvokesMatchingHandlers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var created, assigned []Event
	d.Subscribe(EventTicketCreated, func(_ context.Context, e Event) error {
		created = append(created, e)
		return nil
	})
	d.Subscribe(EventTicketAssigned, func(_ context.Context, e Event) error {
		assigned = append(assigned, e)
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCreated, TicketID: 7}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(created) != 1 {
		t.Fatalf("created handler calls = %d, want 1", len(created))
	}
	if len(assigned) != 0 {
		t.Fatalf("assigned handler calls = %d, want 0", len(assigned))
	}
	if created[0].TicketID != 7 {
		t.Fatalf("TicketID = %d, want 7", created[0].TicketID)
	}
}

func TestPublishFillsIDAndTimestamp(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got Event
	d.Subscribe(EventTicketDeleted, func(_ context.Context, e Event) error {
		got = e
		return nil
	})
	if err := d.Publish(context.Background(), Event{Type: EventTicketDeleted, TicketID: 1}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if got.ID == "" {
		t.Fatal("event ID was not filled in")
	}
	if got.Timestamp.IsZero() {
		t.Fatal("event timestamp was not filled in")
	}
}

func TestPublishSwallowsHandlerErrors(t *testing.T) {
	d := NewInMemoryDispatcher()

	var secondRan bool
	d.Subscribe(EventTicketCommentAdded, func(_ context.Context, _ Event) error {
		return errors.New("notifier down")
	})
	d.Subscribe(EventTicketCommentAdded, func(_ context.Context, _ Event) error {
		secondRan = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventTicketCommentAdded, TicketID: 2}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !secondRan {
		t.Fatal("second handler did not run after the first one failed")
	}
}
