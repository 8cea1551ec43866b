package storage

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "flights.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "flights.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open with nested path failed: %v", err)
	}
	store.Close()
}

func TestSaveAndTopFlights(t *testing.T) {
	store := newTestStore(t)

	flights := []FlightRecord{
		{Outcome: "landed", Score: 300, FuelLeft: 200, Duration: 900},
		{Outcome: "crashed_off_pad", FuelLeft: 50, Duration: 400},
		{Outcome: "landed", Score: 520, FuelLeft: 420, Duration: 700},
		{Outcome: "crashed_too_fast", FuelLeft: 0, Duration: 1200},
		{Outcome: "landed", Score: 150, FuelLeft: 50, Duration: 1500},
	}
	for _, f := range flights {
		if _, err := store.SaveFlight(f); err != nil {
			t.Fatalf("SaveFlight failed: %v", err)
		}
	}

	top, err := store.TopFlights(10)
	if err != nil {
		t.Fatalf("TopFlights failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d top flights, want 3 landings only", len(top))
	}
	if top[0].Score != 520 || top[1].Score != 300 || top[2].Score != 150 {
		t.Errorf("wrong order: %d, %d, %d", top[0].Score, top[1].Score, top[2].Score)
	}
	if top[0].FuelLeft != 420 || top[0].Duration != 700 {
		t.Errorf("record fields lost: %+v", top[0])
	}
}

func TestTopFlightsLimit(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveFlight(FlightRecord{Outcome: "landed", Score: i * 10}); err != nil {
			t.Fatalf("SaveFlight failed: %v", err)
		}
	}

	top, err := store.TopFlights(5)
	if err != nil {
		t.Fatalf("TopFlights failed: %v", err)
	}
	if len(top) != 5 {
		t.Errorf("got %d flights, want 5", len(top))
	}

	// Non-positive limit falls back to the default of 10.
	top, err = store.TopFlights(0)
	if err != nil {
		t.Fatalf("TopFlights(0) failed: %v", err)
	}
	if len(top) != 10 {
		t.Errorf("got %d flights with default limit, want 10", len(top))
	}
}

func TestRecentFlights(t *testing.T) {
	store := newTestStore(t)

	outcomes := []string{"crashed_off_pad", "landed", "crashed_tilted"}
	for i, o := range outcomes {
		if _, err := store.SaveFlight(FlightRecord{Outcome: o, Score: i}); err != nil {
			t.Fatalf("SaveFlight failed: %v", err)
		}
	}

	recent, err := store.RecentFlights(10)
	if err != nil {
		t.Fatalf("RecentFlights failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d recent flights, want 3", len(recent))
	}
	// Most recent first.
	if recent[0].Outcome != "crashed_tilted" || recent[2].Outcome != "crashed_off_pad" {
		t.Errorf("wrong order: %s ... %s", recent[0].Outcome, recent[2].Outcome)
	}
}

func TestHighScore(t *testing.T) {
	store := newTestStore(t)

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore on empty log failed: %v", err)
	}
	if score != 0 {
		t.Errorf("empty log high score = %d, want 0", score)
	}

	store.SaveFlight(FlightRecord{Outcome: "landed", Score: 410})
	store.SaveFlight(FlightRecord{Outcome: "crashed_too_fast", Score: 0})
	store.SaveFlight(FlightRecord{Outcome: "landed", Score: 390})

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if score != 410 {
		t.Errorf("high score = %d, want 410", score)
	}
}

func TestStats(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats on empty log failed: %v", err)
	}
	if stats.Flights != 0 || stats.Landings != 0 || stats.HighScore != 0 {
		t.Errorf("empty stats: %+v", stats)
	}

	store.SaveFlight(FlightRecord{Outcome: "landed", Score: 200})
	store.SaveFlight(FlightRecord{Outcome: "landed", Score: 400})
	store.SaveFlight(FlightRecord{Outcome: "crashed_off_pad"})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Flights != 3 {
		t.Errorf("flights = %d, want 3", stats.Flights)
	}
	if stats.Landings != 2 {
		t.Errorf("landings = %d, want 2", stats.Landings)
	}
	if stats.HighScore != 400 {
		t.Errorf("high score = %d, want 400", stats.HighScore)
	}
	if stats.AvgScore != 300 {
		t.Errorf("avg score = %v, want 300", stats.AvgScore)
	}
}

func TestClearFlights(t *testing.T) {
	store := newTestStore(t)

	store.SaveFlight(FlightRecord{Outcome: "landed", Score: 100})
	if err := store.ClearFlights(); err != nil {
		t.Fatalf("ClearFlights failed: %v", err)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Flights != 0 {
		t.Errorf("flights = %d after clear, want 0", stats.Flights)
	}
}
