package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

// stubSprites 测试用精灵源
type stubSprites map[sprites.Kind]*sprites.Descriptor

func (s stubSprites) Get(kind sprites.Kind) (*sprites.Descriptor, bool) {
	d, ok := s[kind]
	return d, ok
}

func square(kind sprites.Kind, half float64) *sprites.Descriptor {
	return &sprites.Descriptor{
		Kind: kind,
		Hull: []geom.FPoint{{X: half, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}, {X: -half, Y: -half}},
	}
}

func allSprites() stubSprites {
	return stubSprites{
		sprites.Player:       square(sprites.Player, 0.02),
		sprites.PlayerBullet: square(sprites.PlayerBullet, 0.005),
		sprites.EnemyBullet:  square(sprites.EnemyBullet, 0.01),
	}
}

// TestNewPlayer 测试玩家创建
func TestNewPlayer(t *testing.T) {
	cfg := config.DefaultGameConfig()

	p, err := NewPlayer(allSprites(), cfg)
	if err != nil {
		t.Fatalf("NewPlayer() error: %v", err)
	}

	if _, ok := p.Kind.(components.PlayerKind); !ok {
		t.Errorf("Kind: got %T, want PlayerKind", p.Kind)
	}
	if p.Pos != geom.Pt(cfg.Player.StartX, cfg.Player.StartY) {
		t.Errorf("Pos: got %+v", p.Pos)
	}
	if p.CollisionData().Empty() {
		t.Error("player should have collision data")
	}
}

// TestNewPlayerBullet 测试玩家子弹向上飞行
func TestNewPlayerBullet(t *testing.T) {
	cfg := config.DefaultGameConfig()

	b, err := NewPlayerBullet(allSprites(), cfg, geom.Pt(0.5, 0.8))
	if err != nil {
		t.Fatalf("NewPlayerBullet() error: %v", err)
	}

	if b.Velocity.X != 0 || b.Velocity.Y != -cfg.Speeds.PlayerBullet {
		t.Errorf("Velocity: got %+v", b.Velocity)
	}
	if b.MaxLifetime != cfg.Bullets.Lifetime {
		t.Errorf("MaxLifetime: got %v", b.MaxLifetime)
	}
}

// TestNewEnemyBullet 测试敌方子弹的方向与朝向
func TestNewEnemyBullet(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name    string
		heading float64
		wantVX  float64
		wantVY  float64
	}{
		{"向右", 0, cfg.Speeds.EnemyBullet, 0},
		{"向下", 90, 0, cfg.Speeds.EnemyBullet},
		{"向左", 180, -cfg.Speeds.EnemyBullet, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewEnemyBullet(allSprites(), cfg, geom.Pt(0.5, 0.5), geom.FromDeg(tt.heading))
			if err != nil {
				t.Fatalf("NewEnemyBullet() error: %v", err)
			}
			if math.Abs(b.Velocity.X-tt.wantVX) > 1e-9 || math.Abs(b.Velocity.Y-tt.wantVY) > 1e-9 {
				t.Errorf("Velocity: got %+v, want (%v, %v)", b.Velocity, tt.wantVX, tt.wantVY)
			}
			if b.Angle() != geom.FromDeg(tt.heading) {
				t.Errorf("Angle: got %v deg", b.Angle().Deg())
			}
			if b.Spin != cfg.Bullets.SpinDegreesPerSecond {
				t.Errorf("Spin: got %v", b.Spin)
			}
		})
	}
}

// TestFactoryErrors 测试缺少精灵时的错误
func TestFactoryErrors(t *testing.T) {
	cfg := config.DefaultGameConfig()

	if _, err := NewPlayer(nil, cfg); !errors.Is(err, ErrNoSprites) {
		t.Errorf("nil source error = %v, want ErrNoSprites", err)
	}

	if _, err := NewEnemyBullet(stubSprites{}, cfg, geom.Pt(0.5, 0.5), geom.FromDeg(0)); !errors.Is(err, sprites.ErrMissingSprite) {
		t.Errorf("missing sprite error = %v, want ErrMissingSprite", err)
	}
}
