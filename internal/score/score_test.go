package score

import (
	"fmt"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// testStore opens a store over a throwaway home directory.
func testStore(t *testing.T) *Store {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: "astroid_test"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}
	return NewStore(m)
}

// The board keeps only the best TopSize entries, in descending order.
func TestSubmit_OrdersAndTrims(t *testing.T) {
	s := testStore(t)

	for i := 1; i <= TopSize+2; i++ {
		if _, err := s.Submit(Entry{Name: fmt.Sprintf("p%d", i), Score: i * 100, Wave: i}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	top := s.Top()
	if len(top) != TopSize {
		t.Fatalf("board size = %d, want %d", len(top), TopSize)
	}
	if top[0].Score != (TopSize+2)*100 {
		t.Errorf("best score = %d, want %d", top[0].Score, (TopSize+2)*100)
	}
	for i := 1; i < len(top); i++ {
		if top[i].Score > top[i-1].Score {
			t.Fatalf("board out of order at %d: %d above %d", i, top[i-1].Score, top[i].Score)
		}
	}
	if top[len(top)-1].Score != 300 {
		t.Errorf("worst kept score = %d, want 300 after trimming", top[len(top)-1].Score)
	}
}

// Submit reports the 1-based rank the entry landed at.
func TestSubmit_ReturnsRank(t *testing.T) {
	s := testStore(t)

	if rank, _ := s.Submit(Entry{Name: "mid", Score: 500}); rank != 1 {
		t.Errorf("first submit rank = %d, want 1", rank)
	}
	if rank, _ := s.Submit(Entry{Name: "top", Score: 900}); rank != 1 {
		t.Errorf("better score rank = %d, want 1", rank)
	}
	if rank, _ := s.Submit(Entry{Name: "low", Score: 100}); rank != 3 {
		t.Errorf("worse score rank = %d, want 3", rank)
	}
}

// A saved board survives reopening the store.
func TestStore_PersistsAcrossOpens(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: "astroid_test"})
	if err != nil {
		t.Fatalf("open gdata: %v", err)
	}

	s := NewStore(m)
	if _, err := s.Submit(Entry{Name: "ace", Score: 4200, Wave: 7}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	reopened := NewStore(m)
	top := reopened.Top()
	if len(top) != 1 || top[0] != (Entry{Name: "ace", Score: 4200, Wave: 7}) {
		t.Errorf("reloaded board = %v, want the submitted entry", top)
	}
}

// A nil manager runs the board in memory without errors.
func TestStore_DegradedModeKeepsWorking(t *testing.T) {
	s := NewStore(nil)

	rank, err := s.Submit(Entry{Name: "solo", Score: 250, Wave: 2})
	if err != nil {
		t.Fatalf("degraded submit: %v", err)
	}
	if rank != 1 {
		t.Errorf("rank = %d, want 1", rank)
	}
	if got := s.Top(); len(got) != 1 {
		t.Errorf("board size = %d, want 1", len(got))
	}
}

// Qualifies gates the name prompt: always with room on the board, and only
// beating the worst entry once full.
func TestQualifies_FullBoardNeedsBeatingTheWorst(t *testing.T) {
	s := NewStore(nil)

	if s.Qualifies(0) {
		t.Error("zero never qualifies")
	}
	if !s.Qualifies(1) {
		t.Error("any positive score qualifies on an empty board")
	}

	for i := 1; i <= TopSize; i++ {
		s.Submit(Entry{Name: "p", Score: i * 100})
	}
	if s.Qualifies(100) {
		t.Error("matching the worst entry does not qualify")
	}
	if !s.Qualifies(101) {
		t.Error("beating the worst entry qualifies")
	}
}
