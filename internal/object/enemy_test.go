package object

import (
	"math/rand"
	"testing"

	"github.com/bdamage/Astroid-Classic/internal/geom"
)

// TestEnemyTakeDamage_BomberSoaksThreeHits tests hull strength per kind.
func TestEnemyTakeDamage_BomberSoaksThreeHits(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	b := NewEnemy(geom.V(10, 10), EnemyBomber, 1.0, rng)

	if b.TakeDamage(1) || b.TakeDamage(1) {
		t.Fatal("bomber died before its third hit")
	}
	if !b.TakeDamage(1) {
		t.Error("bomber survived its third hit")
	}

	s := NewEnemy(geom.V(10, 10), EnemyScout, 1.0, rng)
	if !s.TakeDamage(1) {
		t.Error("scout survived a hit")
	}
}

// TestEnemyUpdate_ClosesOnPlayer tests the steering moves an enemy toward
// the player over time.
func TestEnemyUpdate_ClosesOnPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	e := NewEnemy(geom.V(10, 10), EnemyBomber, 1.0, rng)
	player := geom.V(60, 40)
	e.Heading = player.Sub(e.Pos).Angle() // Already facing the player

	ctx := &Context{
		DT:          0.05,
		Bounds:      geom.Size{W: 120, H: 80},
		PlayerPos:   player,
		PlayerAlive: true,
	}

	start := e.Pos.DistTo(player)
	for i := 0; i < 100; i++ {
		ctx.Now += ctx.DT
		e.Update(ctx)
	}

	if got := e.Pos.DistTo(player); got >= start {
		t.Errorf("enemy distance grew from %v to %v", start, got)
	}
}

// TestEnemyScore_PerKind tests the kill values.
func TestEnemyScore_PerKind(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	if got := NewEnemy(geom.Vec{}, EnemyScout, 1.0, rng).Score(); got != 150 {
		t.Errorf("scout score = %d, want 150", got)
	}
	if got := NewEnemy(geom.Vec{}, EnemyBomber, 1.0, rng).Score(); got != 250 {
		t.Errorf("bomber score = %d, want 250", got)
	}
}
