package analysis

import "testing"

func TestHistoryWrap(t *testing.T) {
	h := newHistory[int](3)
	for i := 0; i < 5; i++ {
		h.push(i)
	}
	if h.len() != 3 {
		t.Errorf("expected len 3, got %d", h.len())
	}
	items := h.snapshot()
	if items[0] != 2 || items[2] != 4 {
		t.Errorf("expected [2 3 4], got %v", items)
	}
	last, ok := h.latest()
	if !ok || last != 4 {
		t.Errorf("expected latest 4, got %d", last)
	}
}

func TestHistoryEmpty(t *testing.T) {
	h := newHistory[int](4)
	if h.len() != 0 || len(h.snapshot()) != 0 {
		t.Error("new history should be empty")
	}
	if _, ok := h.latest(); ok {
		t.Error("latest() on empty history should report false")
	}
}

func TestHistoryExactlyFull(t *testing.T) {
	h := newHistory[string](2)
	h.push("a")
	h.push("b")
	items := h.snapshot()
	if len(items) != 2 || items[0] != "a" || items[1] != "b" {
		t.Errorf("expected [a b], got %v", items)
	}
	if last, _ := h.latest(); last != "b" {
		t.Errorf("expected latest b, got %q", last)
	}
}
