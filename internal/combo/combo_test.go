package combo

import (
	"math"
	"testing"
)

// rapidKills lands n kills 0.5s apart starting at t0 and returns the time of
// the last one.
func rapidKills(t *Tracker, n int, t0 float64) float64 {
	now := t0
	for i := 0; i < n; i++ {
		t.OnKill(now)
		now += 0.5
	}
	return now - 0.5
}

// TestMultiplier_StepsAndCap tests the 0.5-per-5-kills staircase with its
// cap.
func TestMultiplier_StepsAndCap(t *testing.T) {
	cases := []struct {
		kills int
		want  float64
	}{
		{0, 1.0},
		{4, 1.0},
		{5, 1.5},
		{9, 1.5},
		{10, 2.0},
		{15, 2.5},
		{20, 3.0},
		{30, 3.0}, // Capped
	}
	for _, c := range cases {
		tr := NewTracker()
		rapidKills(tr, c.kills, 0)
		if got := tr.Multiplier(); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("multiplier after %d kills = %v, want %v", c.kills, got, c.want)
		}
	}
}

// TestOnKill_ComboMilestoneExactlyOnce tests the exact-equality milestone at
// 10 fires on the tenth kill and never again until 25. Kills are spaced past
// the streak timeout so streak milestones stay quiet.
func TestOnKill_ComboMilestoneExactlyOnce(t *testing.T) {
	tr := NewTracker()
	now := 0.0

	for i := 1; i <= 14; i++ {
		got := tr.OnKill(now)
		switch i {
		case 10:
			if len(got) != 1 {
				t.Fatalf("kill %d returned %d achievements, want 1", i, len(got))
			}
			if got[0].Label != "COMBO x10" {
				t.Errorf("kill %d label = %q", i, got[0].Label)
			}
		default:
			if len(got) != 0 {
				t.Errorf("kill %d returned %v, want none", i, got)
			}
		}
		now += 3.5 // Past the streak timeout, inside the decay grace
	}
}

// TestOnKill_StreakResetsAfterTimeout tests the kill-streak gap rule.
func TestOnKill_StreakResetsAfterTimeout(t *testing.T) {
	tr := NewTracker()
	tr.OnKill(0)
	tr.OnKill(1)
	tr.OnKill(2)

	if tr.Streak() != 3 {
		t.Fatalf("streak = %d after three quick kills, want 3", tr.Streak())
	}

	tr.OnKill(6) // 4s gap
	if tr.Streak() != 1 {
		t.Errorf("streak = %d after the timeout, want 1", tr.Streak())
	}
}

// TestOnKill_StreakMilestoneAtFive tests the first streak threshold.
func TestOnKill_StreakMilestoneAtFive(t *testing.T) {
	tr := NewTracker()
	var got []Achievement
	for i := 0; i < 5; i++ {
		got = tr.OnKill(float64(i) * 0.5)
	}

	if len(got) != 1 {
		t.Fatalf("fifth quick kill returned %d achievements, want 1", len(got))
	}
	if got[0].Label != "5 KILL STREAK" {
		t.Errorf("label = %q, want streak milestone", got[0].Label)
	}
}

// TestTick_DecayAfterGrace tests the combo holds through the grace window
// and then bleeds one point per interval.
func TestTick_DecayAfterGrace(t *testing.T) {
	tr := NewTracker()
	last := rapidKills(tr, 6, 0)

	// Still inside the grace window: nothing decays
	tr.Tick(1.0, last+3.9)
	if tr.Count() != 6 {
		t.Fatalf("combo decayed inside the grace window: %d", tr.Count())
	}

	// Two intervals beyond the grace
	tr.Tick(2.0, last+6.0)
	if tr.Count() != 4 {
		t.Errorf("combo = %d after two decay intervals, want 4", tr.Count())
	}

	// Decay floors at zero and the multiplier returns to base
	tr.Tick(30.0, last+36.0)
	if tr.Count() != 0 {
		t.Errorf("combo = %d after a long idle, want 0", tr.Count())
	}
	if tr.Multiplier() != 1.0 {
		t.Errorf("multiplier = %v at zero combo, want 1.0", tr.Multiplier())
	}
}

// TestOnKill_ResetsDecayClock tests that a kill during decay stops the bleed.
func TestOnKill_ResetsDecayClock(t *testing.T) {
	tr := NewTracker()
	last := rapidKills(tr, 6, 0)

	tr.Tick(1.0, last+5.0) // One point gone
	if tr.Count() != 5 {
		t.Fatalf("combo = %d, want 5", tr.Count())
	}

	tr.OnKill(last + 5.1)
	tr.Tick(1.0, last+6.0) // Inside the fresh grace window
	if tr.Count() != 6 {
		t.Errorf("combo = %d after a kill reset the clock, want 6", tr.Count())
	}
}

// TestOnBreak_ForgivesSmallCombos tests the significance threshold.
func TestOnBreak_ForgivesSmallCombos(t *testing.T) {
	tr := NewTracker()
	rapidKills(tr, 3, 0)

	tr.OnBreak()
	if tr.Count() != 3 {
		t.Errorf("small combo was not forgiven: %d", tr.Count())
	}
	if tr.Streak() != 0 {
		t.Errorf("streak = %d after a break, want 0", tr.Streak())
	}

	rapidKills(tr, 3, 10) // Now at 6 total
	tr.OnBreak()
	if tr.Count() != 0 {
		t.Errorf("significant combo survived the break: %d", tr.Count())
	}
}

// TestOnPickup_WindowAndMilestone tests the pickup streak window and its
// first threshold.
func TestOnPickup_WindowAndMilestone(t *testing.T) {
	tr := NewTracker()

	if got := tr.OnPickup(0); len(got) != 0 {
		t.Errorf("first pickup returned %v", got)
	}
	tr.OnPickup(5)
	got := tr.OnPickup(9)
	if len(got) != 1 {
		t.Fatalf("third pickup in the window returned %d achievements, want 1", len(got))
	}
	if got[0].Label != "COLLECTOR x3" {
		t.Errorf("label = %q", got[0].Label)
	}

	// A long gap restarts the pickup streak
	tr.OnPickup(25)
	if got := tr.OnPickup(26); len(got) != 0 {
		t.Errorf("restarted streak reported a milestone: %v", got)
	}
}
