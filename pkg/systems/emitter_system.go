package systems

import (
	"fmt"

	"github.com/gonewx/shmup/pkg/config"
	"github.com/gonewx/shmup/pkg/entities"
	"github.com/gonewx/shmup/pkg/geom"
)

// EmitterSystem 敌方弹幕发射器
//
// 每隔 Interval 秒从发射点向整圆均匀发射一轮子弹，
// 每轮的起始角在上一轮基础上增加 SpinDegrees，形成旋转的螺旋弹幕。
type EmitterSystem struct {
	sprites entities.SpriteSource
	cfg     *config.GameConfig

	timer float64
	phase geom.Angle
}

// NewEmitterSystem 创建发射器系统
func NewEmitterSystem(src entities.SpriteSource, cfg *config.GameConfig) *EmitterSystem {
	return &EmitterSystem{sprites: src, cfg: cfg, timer: cfg.Emitter.Interval}
}

// Update 推进计时器，到时发射一轮或多轮子弹，返回本帧发射的子弹数
func (s *EmitterSystem) Update(w *World, dt float64) (int, error) {
	e := s.cfg.Emitter
	origin := geom.Pt(e.OriginX, e.OriginY)
	step := 360 / float64(e.BulletsPerVolley)

	fired := 0
	s.timer -= dt
	for s.timer <= 0 {
		s.timer += e.Interval
		for k := range e.BulletsPerVolley {
			heading := s.phase.AddDeg(float64(k) * step)
			b, err := entities.NewEnemyBullet(s.sprites, s.cfg, origin, heading)
			if err != nil {
				return fired, fmt.Errorf("failed to emit bullet: %w", err)
			}
			w.EnemyBullets = append(w.EnemyBullets, b)
			fired++
		}
		s.phase = s.phase.AddDeg(e.SpinDegrees)
	}
	return fired, nil
}

// Reset 重置计时器和相位
func (s *EmitterSystem) Reset() {
	s.timer = s.cfg.Emitter.Interval
	s.phase = geom.FromDeg(0)
}
