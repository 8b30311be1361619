package object

import (
	"math/rand"
	"testing"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

func testBoss(level int) *Boss {
	return NewBoss(level, geom.Size{W: 120, H: 80}, rand.New(rand.NewSource(1)))
}

// TestBossTakeDamage_PhaseEscalatesAtThresholds tests the 50%/25% ratchet.
func TestBossTakeDamage_PhaseEscalatesAtThresholds(t *testing.T) {
	b := testBoss(1) // 60 HP

	if b.Phase() != 0 {
		t.Fatalf("fresh boss phase = %d, want 0", b.Phase())
	}

	b.TakeDamage(25) // 35/60, still above half
	if b.Phase() != 0 {
		t.Errorf("phase escalated above the 50%% threshold: %d", b.Phase())
	}

	b.TakeDamage(10) // 25/60
	if b.Phase() != 1 {
		t.Errorf("phase = %d below 50%% health, want 1", b.Phase())
	}

	b.TakeDamage(11) // 14/60
	if b.Phase() != 2 {
		t.Errorf("phase = %d below 25%% health, want 2", b.Phase())
	}
}

// TestBossTakeDamage_BigHitSkipsToFinalPhase tests one large hit can jump
// phases without visiting the middle one.
func TestBossTakeDamage_BigHitSkipsToFinalPhase(t *testing.T) {
	b := testBoss(1) // 60 HP

	if b.TakeDamage(50) { // 10/60
		t.Error("destruction signalled with health remaining")
	}
	if b.Phase() != 2 {
		t.Errorf("phase = %d, want 2 after dropping below 25%%", b.Phase())
	}

	if !b.TakeDamage(10) {
		t.Error("health exhausted but no destruction signal")
	}
}

// TestBossAttack_PatternGrowsWithPhase tests shot counts per phase: single,
// three-way spread, radial ring.
func TestBossAttack_PatternGrowsWithPhase(t *testing.T) {
	b := testBoss(1)
	player := geom.V(60, 70)

	if got := len(b.Attack(player)); got != 1 {
		t.Errorf("phase 0 fired %d shots, want 1", got)
	}

	b.TakeDamage(35)
	if got := len(b.Attack(player)); got != 3 {
		t.Errorf("phase 1 fired %d shots, want 3", got)
	}

	b.TakeDamage(15)
	if got := len(b.Attack(player)); got != 8 {
		t.Errorf("phase 2 fired %d shots, want 8", got)
	}
}

// TestBossAttack_CooldownShrinksPerPhase tests the attack rate speeds up as
// the boss escalates.
func TestBossAttack_CooldownShrinksPerPhase(t *testing.T) {
	b := testBoss(1)
	player := geom.V(60, 70)

	b.Attack(player)
	if b.attackIn != bossAttackCD {
		t.Errorf("phase 0 cooldown = %v, want %v", b.attackIn, bossAttackCD)
	}

	b.TakeDamage(50) // Straight to phase 2
	b.Attack(player)
	if want := bossAttackCD * bossPhaseRate[2]; b.attackIn != want {
		t.Errorf("phase 2 cooldown = %v, want %v", b.attackIn, want)
	}
}

// TestNewBoss_HealthScalesWithLevel tests the per-level health formula.
func TestNewBoss_HealthScalesWithLevel(t *testing.T) {
	if got := testBoss(1).MaxHP; got != 60 {
		t.Errorf("level 1 boss has %d HP, want 60", got)
	}
	if got := testBoss(3).MaxHP; got != 100 {
		t.Errorf("level 3 boss has %d HP, want 100", got)
	}
}
