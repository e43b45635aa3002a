package status

import "testing"

func TestEmitterDrainReturnsAndClears(t *testing.T) {
	var e Emitter
	e.Emit(NotEnoughGold, 0, 10)
	e.Emit(GarrisonFull, 1, 11)

	events := e.Drain()
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	if events[0].ID != NotEnoughGold || events[0].Player != 0 || events[0].Tick != 10 {
		t.Fatalf("events[0] = %+v", events[0])
	}

	if got := e.Drain(); len(got) != 0 {
		t.Fatalf("expected drain to clear the buffer, got %v", got)
	}
}

func TestLocalizeFallsBackToIDWithoutCatalog(t *testing.T) {
	if got := Localize(NotEnoughGold); got != string(NotEnoughGold) {
		t.Fatalf("Localize() = %q, want the bare id with no catalog loaded", got)
	}
}
