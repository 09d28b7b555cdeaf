package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/wsuwp/colorpalette/internal/models"
)

type fakeRepo struct {
	last *models.Event
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	r.last = event
	return nil
}

func TestLogPaletteAssigned(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogPaletteAssigned(context.Background(), repo, "item-1", "green", "blue"); err != nil {
		t.Fatalf("LogPaletteAssigned failed: %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected event to be created")
	}
	if repo.last.Type != models.EventTypePaletteAssigned {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.EntityID != "item-1" {
		t.Fatalf("unexpected entity id: %q", repo.last.EntityID)
	}

	var payload models.PaletteAssignedPayload
	if err := json.Unmarshal(repo.last.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Palette != "green" || payload.Previous != "blue" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLogPaletteRejected(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogPaletteRejected(context.Background(), repo, "item-1", "invalid"); err != nil {
		t.Fatalf("LogPaletteRejected failed: %v", err)
	}
	if repo.last.Type != models.EventTypePaletteRejected {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
}

func TestLogRequiresRepoAndItem(t *testing.T) {
	if err := LogPaletteAssigned(context.Background(), nil, "item-1", "green", ""); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogPaletteAssigned(context.Background(), &fakeRepo{}, "", "green", ""); err == nil {
		t.Fatal("expected error for empty item id")
	}
	if err := LogItemCreated(context.Background(), &fakeRepo{}, nil); err == nil {
		t.Fatal("expected error for nil item")
	}
}
