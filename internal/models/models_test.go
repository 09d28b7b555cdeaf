package models

import (
	"errors"
	"strings"
	"testing"
)

func TestEventValidate(t *testing.T) {
	event := &Event{}
	err := event.Validate()
	if err == nil {
		t.Fatal("expected validation error for empty event")
	}

	var validation *ValidationErrors
	if !errors.As(err, &validation) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(validation.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %d", len(validation.Errors))
	}

	event = &Event{Type: EventTypePaletteAssigned, EntityType: EntityTypeItem, EntityID: "item-1"}
	if err := event.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestItemValidate(t *testing.T) {
	item := &Item{Type: ItemTypePage}
	err := item.Validate()
	if err == nil {
		t.Fatal("expected error for missing status")
	}
	if !strings.Contains(err.Error(), "status") {
		t.Fatalf("error should name status field: %v", err)
	}

	item.Status = ItemStatusDraft
	if err := item.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
