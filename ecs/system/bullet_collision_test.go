package system

import (
	"testing"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

func TestHandleBulletCollision(t *testing.T) {
	tests := []struct {
		name            string
		bulletFirst     bool
		other           string
		wantApplied     bool
		wantBullet      bool
		wantOther       bool
		wantEnemyHealth int
	}{
		{name: "bullet then enemy", bulletFirst: true, other: "enemy", wantApplied: true, wantOther: true, wantEnemyHealth: 90},
		{name: "enemy then bullet", bulletFirst: false, other: "enemy", wantApplied: true, wantOther: true, wantEnemyHealth: 90},
		{name: "bullet then wall", bulletFirst: true, other: "wall", wantApplied: true, wantOther: true},
		{name: "wall then bullet", bulletFirst: false, other: "wall", wantApplied: true, wantOther: true},
		{name: "bullet then player", bulletFirst: true, other: "player", wantBullet: true, wantOther: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			bullet := spawnBullet(t, w, 10)
			var other ecs.Entity
			switch tt.other {
			case "enemy":
				other = spawnEnemy(t, w, 0, 0, 100)
			case "wall":
				other = spawnWall(t, w)
			default:
				other = spawnPlayer(t, w, 0, 0)
			}

			a, b := bullet, other
			if !tt.bulletFirst {
				a, b = other, bullet
			}
			if got := HandleBulletCollision(w, a, b); got != tt.wantApplied {
				t.Fatalf("applied = %v, want %v", got, tt.wantApplied)
			}
			if got := w.IsAlive(bullet); got != tt.wantBullet {
				t.Fatalf("bullet alive = %v, want %v", got, tt.wantBullet)
			}
			if got := w.IsAlive(other); got != tt.wantOther {
				t.Fatalf("other alive = %v, want %v", got, tt.wantOther)
			}
			if tt.other == "enemy" {
				enemy, _ := ecs.Get(w, other, component.EnemyComponent.Kind())
				if enemy.Health.Current != tt.wantEnemyHealth {
					t.Fatalf("enemy health = %d, want %d", enemy.Health.Current, tt.wantEnemyHealth)
				}
			}
		})
	}
}

func TestBulletCollisionEnemyRuleWins(t *testing.T) {
	w := ecs.NewWorld()
	bullet := spawnBullet(t, w, 10)
	enemy := spawnEnemy(t, w, 0, 0, 100)
	add(t, w, enemy, component.WallTagComponent.Kind(), &component.WallTag{})

	HandleBulletCollision(w, bullet, enemy)

	e, _ := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	if e.Health.Current != 90 {
		t.Fatalf("enemy health = %d, want 90", e.Health.Current)
	}
	if w.IsAlive(bullet) {
		t.Fatalf("bullet should be destroyed")
	}
}

func TestBulletCollisionOnlyChecksOtherForWall(t *testing.T) {
	w := ecs.NewWorld()
	bullet := spawnBullet(t, w, 10)
	add(t, w, bullet, component.WallTagComponent.Kind(), &component.WallTag{})
	player := spawnPlayer(t, w, 0, 0)

	for _, order := range [][2]ecs.Entity{{bullet, player}, {player, bullet}} {
		if HandleBulletCollision(w, order[0], order[1]) {
			t.Fatalf("a wall tag on the bullet itself must not consume it")
		}
	}
	if !w.IsAlive(bullet) || !w.IsAlive(player) {
		t.Fatalf("nothing should be destroyed")
	}
}

func TestBulletCollisionKillsEnemy(t *testing.T) {
	w := ecs.NewWorld()
	enemy := spawnEnemy(t, w, 0, 0, 100)
	sys := NewBulletCollisionSystem()

	for i := 0; i < 10; i++ {
		if !w.IsAlive(enemy) {
			t.Fatalf("enemy died after %d hits", i)
		}
		bullet := spawnBullet(t, w, 0)
		w.Events().Reset()
		w.Events().Push(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: enemy, B: bullet})
		sys.Update(w)
	}

	if w.IsAlive(enemy) {
		t.Fatalf("enemy should die after ten default-damage hits")
	}
}

func TestBulletCollisionHealthNeverNegative(t *testing.T) {
	w := ecs.NewWorld()
	enemy := spawnEnemy(t, w, 0, 0, 15)
	bullet := spawnBullet(t, w, 10)
	HandleBulletCollision(w, bullet, enemy)

	e, _ := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	bullet = spawnBullet(t, w, 10)
	HandleBulletCollision(w, bullet, enemy)

	if e.Health.Current != 0 {
		t.Fatalf("health = %d, want 0", e.Health.Current)
	}
	if w.IsAlive(enemy) {
		t.Fatalf("enemy should be destroyed at zero health")
	}
}

func TestBulletCollisionIgnoresStaleEvents(t *testing.T) {
	w := ecs.NewWorld()
	enemy := spawnEnemy(t, w, 0, 0, 100)
	first := spawnBullet(t, w, 10)
	second := spawnBullet(t, w, 10)

	// Two events for the same bullet in one tick: only the first may land.
	w.Events().Push(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: first, B: enemy})
	w.Events().Push(ecs.CollisionEvent{Kind: ecs.CollisionStarted, A: first, B: enemy})
	w.Events().Push(ecs.CollisionEvent{Kind: ecs.CollisionStopped, A: second, B: enemy})
	NewBulletCollisionSystem().Update(w)

	e, _ := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	if e.Health.Current != 90 {
		t.Fatalf("health = %d, want 90", e.Health.Current)
	}
	if !w.IsAlive(second) {
		t.Fatalf("stopped events must not consume bullets")
	}
}
