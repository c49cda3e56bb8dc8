package systems

import (
	"testing"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/sprites"
)

// TestLifetimeSystem 测试生命周期到期标记
func TestLifetimeSystem(t *testing.T) {
	sp := testSprites()
	short := object(components.EnemyBulletKind{}, sp[sprites.EnemyBullet], 0.5, 0.5)
	short.MaxLifetime = 1
	long := object(components.EnemyBulletKind{}, sp[sprites.EnemyBullet], 0.5, 0.5)
	long.MaxLifetime = 3
	forever := object(components.PlayerKind{}, sp[sprites.Player], 0.5, 0.5)

	w := &World{
		Player:       components.Objects{forever},
		EnemyBullets: components.Objects{short, long},
	}
	s := NewLifetimeSystem()

	if n := s.Update(w, 0.6); n != 0 {
		t.Errorf("first update expired %d, want 0", n)
	}
	if n := s.Update(w, 0.6); n != 1 {
		t.Errorf("second update expired %d, want 1", n)
	}
	// 已标记的对象不重复计数
	if n := s.Update(w, 0.6); n != 0 {
		t.Errorf("third update expired %d, want 0", n)
	}

	if !w.EnemyBullets[0].Marked || w.EnemyBullets[1].Marked {
		t.Errorf("marks: got %v %v, want true false", w.EnemyBullets[0].Marked, w.EnemyBullets[1].Marked)
	}
	if w.Player[0].Marked {
		t.Error("object without MaxLifetime should never expire")
	}
	if w.Player[0].Age < 1.79 {
		t.Errorf("Age not accumulated: %v", w.Player[0].Age)
	}

	if removed := w.Sweep(); removed != 1 || len(w.EnemyBullets) != 1 {
		t.Errorf("Sweep() removed %d, left %d bullets", removed, len(w.EnemyBullets))
	}
}

// TestAnimationSystemFlicker 测试子弹帧号随存活时间切换
func TestAnimationSystemFlicker(t *testing.T) {
	sp := testSprites()
	b := object(components.EnemyBulletKind{}, sp[sprites.EnemyBullet], 0.5, 0.5)
	w := &World{EnemyBullets: components.Objects{b}}
	s := NewAnimationSystem(0.1)

	tests := []struct {
		age   float64
		frame int
	}{
		{0, 0},
		{0.05, 0},
		{0.15, 1},
		{0.25, 0}, // 两帧循环
	}

	for _, tt := range tests {
		w.EnemyBullets[0].Age = tt.age
		s.Update(w)
		if got := w.EnemyBullets[0].Kind.Frame(); got != tt.frame {
			t.Errorf("age %v: frame %d, want %d", tt.age, got, tt.frame)
		}
	}
}
