// Package combo tracks the consecutive-kill counter that drives the score
// multiplier, plus the kill-streak and pickup-streak milestones.
package combo

import "fmt"

// Tuning.
const (
	capMultiplier  = 3.0
	decayGrace     = 4.0 // Idle seconds before the combo starts decaying
	decayEvery     = 1.0 // One combo point lost per interval after the grace
	breakThreshold = 5   // Combos below this survive a ship hit
	streakTimeout  = 3.0 // Max gap between kills that keeps a streak alive
	pickupWindow   = 10.0
)

// Milestone thresholds, matched by exact equality so each crossing reports
// once. The combo only ever moves by single steps, so none can be skipped.
var (
	comboMilestones  = []int{10, 25, 50, 100}
	streakMilestones = []int{5, 10, 20, 40}
	pickupMilestones = []int{3, 5, 8}
)

// Achievement marks a milestone crossing, with the flat bonus score it pays.
type Achievement struct {
	Label string
	Bonus int
}

// Tracker holds the combo, kill-streak and pickup-streak state.
type Tracker struct {
	count     int
	lastKill  float64
	decayTick float64

	streak int

	pickups    int
	lastPickup float64
}

// NewTracker returns a tracker with everything at zero.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Count returns the current combo count.
func (t *Tracker) Count() int {
	return t.count
}

// Streak returns the current kill streak.
func (t *Tracker) Streak() int {
	return t.streak
}

// Multiplier returns the score multiplier for the current combo: a step
// function of the count, capped.
func (t *Tracker) Multiplier() float64 {
	m := 1.0 + float64(t.count/5)*0.5
	if m > capMultiplier {
		return capMultiplier
	}
	return m
}

// OnKill credits one kill at sim time now and returns any milestones crossed.
func (t *Tracker) OnKill(now float64) []Achievement {
	if now-t.lastKill > streakTimeout {
		t.streak = 0
	}
	t.streak++
	t.count++
	t.lastKill = now
	t.decayTick = 0

	var got []Achievement
	if onMilestone(comboMilestones, t.count) {
		got = append(got, Achievement{
			Label: fmt.Sprintf("COMBO x%d", t.count),
			Bonus: t.count * 10,
		})
	}
	if onMilestone(streakMilestones, t.streak) {
		got = append(got, Achievement{
			Label: fmt.Sprintf("%d KILL STREAK", t.streak),
			Bonus: t.streak * 20,
		})
	}
	return got
}

// OnPickup credits one power-up collection and returns any milestone crossed.
// A gap beyond the window restarts the pickup streak.
func (t *Tracker) OnPickup(now float64) []Achievement {
	if now-t.lastPickup > pickupWindow {
		t.pickups = 0
	}
	t.pickups++
	t.lastPickup = now

	if onMilestone(pickupMilestones, t.pickups) {
		return []Achievement{{
			Label: fmt.Sprintf("COLLECTOR x%d", t.pickups),
			Bonus: t.pickups * 50,
		}}
	}
	return nil
}

// OnBreak is called when the ship takes a hit. The kill streak always ends;
// the combo is zeroed only when it was significant, small combos are
// forgiven.
func (t *Tracker) OnBreak() {
	t.streak = 0
	if t.count >= breakThreshold {
		t.count = 0
		t.decayTick = 0
	}
}

// Tick decays the combo by one point per interval once the idle time has
// passed the grace window.
func (t *Tracker) Tick(dt, now float64) {
	if t.count == 0 || now-t.lastKill <= decayGrace {
		t.decayTick = 0
		return
	}
	t.decayTick += dt
	for t.decayTick >= decayEvery && t.count > 0 {
		t.count--
		t.decayTick -= decayEvery
	}
}

func onMilestone(list []int, v int) bool {
	for _, m := range list {
		if v == m {
			return true
		}
	}
	return false
}
