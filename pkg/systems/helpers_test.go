package systems

import (
	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

// stubSprites 测试用精灵源
type stubSprites map[sprites.Kind]*sprites.Descriptor

func (s stubSprites) Get(kind sprites.Kind) (*sprites.Descriptor, bool) {
	d, ok := s[kind]
	return d, ok
}

func squareSprite(kind sprites.Kind, half float64, frames int) *sprites.Descriptor {
	return &sprites.Descriptor{
		Kind:        kind,
		Frames:      frames,
		VirtualSize: geom.Pt(2*half, 2*half),
		Hull:        []geom.FPoint{{X: half, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}, {X: -half, Y: -half}},
	}
}

func testSprites() stubSprites {
	return stubSprites{
		sprites.Player:       squareSprite(sprites.Player, 0.02, 3),
		sprites.PlayerBullet: squareSprite(sprites.PlayerBullet, 0.005, 2),
		sprites.EnemyBullet:  squareSprite(sprites.EnemyBullet, 0.01, 2),
	}
}

func object(kind components.Kind, d *sprites.Descriptor, x, y float64) components.Object {
	return components.NewObject(kind, d, geom.Pt(x, y), geom.FromDeg(0), geom.Pt(1.0, 1.0))
}
