package entities

import (
	"errors"
	"fmt"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

// ErrNoSprites 未提供精灵表
var ErrNoSprites = errors.New("sprite table cannot be nil")

// SpriteSource 按种类查询精灵描述
type SpriteSource interface {
	Get(kind sprites.Kind) (*sprites.Descriptor, bool)
}

var unitScale = geom.Pt(1.0, 1.0)

func lookup(src SpriteSource, kind sprites.Kind) (*sprites.Descriptor, error) {
	if src == nil {
		return nil, ErrNoSprites
	}
	d, ok := src.Get(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %s", sprites.ErrMissingSprite, kind)
	}
	return d, nil
}

// NewPlayer 在配置的出生点创建玩家
func NewPlayer(src SpriteSource, cfg *config.GameConfig) (components.Object, error) {
	d, err := lookup(src, sprites.Player)
	if err != nil {
		return components.Object{}, err
	}

	pos := geom.Pt(cfg.Player.StartX, cfg.Player.StartY)
	return components.NewObject(components.PlayerKind{}, d, pos, geom.FromDeg(0), unitScale), nil
}

// NewPlayerBullet 创建玩家子弹，从 pos 处竖直向上飞行
func NewPlayerBullet(src SpriteSource, cfg *config.GameConfig, pos geom.FPoint) (components.Object, error) {
	d, err := lookup(src, sprites.PlayerBullet)
	if err != nil {
		return components.Object{}, err
	}

	o := components.NewObject(components.PlayerBulletKind{}, d, pos, geom.FromDeg(0), unitScale)
	o.Velocity = geom.Pt(0, -cfg.Speeds.PlayerBullet)
	o.MaxLifetime = cfg.Bullets.Lifetime
	return o, nil
}

// NewEnemyBullet 创建敌方子弹
//
// heading 为飞行方向（0° 指向 +x，y 轴向下时角度顺时针增大），
// 子弹朝向与飞行方向一致并按配置自转。
func NewEnemyBullet(src SpriteSource, cfg *config.GameConfig, pos geom.FPoint, heading geom.Angle) (components.Object, error) {
	d, err := lookup(src, sprites.EnemyBullet)
	if err != nil {
		return components.Object{}, err
	}

	o := components.NewObject(components.EnemyBulletKind{}, d, pos, heading, unitScale)
	o.Velocity = geom.FromVec2(heading.Dir().Mul(cfg.Speeds.EnemyBullet))
	o.Spin = cfg.Bullets.SpinDegreesPerSecond
	o.MaxLifetime = cfg.Bullets.Lifetime
	return o, nil
}
