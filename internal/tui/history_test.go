package tui

import "testing"

func TestHistoryPushDropsOldestPastCapacity(t *testing.T) {
	h := NewHistory(3)
	h.Push(1)
	h.Push(2)
	h.Push(3)
	h.Push(4)

	if len(h.values) != 3 {
		t.Fatalf("expected capacity to cap length at 3, got %d", len(h.values))
	}
	if h.values[0] != 2 {
		t.Errorf("expected oldest sample to be dropped, got %v", h.values)
	}
}

func TestHistoryRenderBeforeEnoughData(t *testing.T) {
	h := NewHistory(10)
	h.Push(1)

	if got := h.Render("x"); got == "" {
		t.Error("expected a placeholder render with fewer than 2 samples")
	}
}
