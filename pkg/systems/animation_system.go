package systems

import (
	"github.com/gonewx/shmup/pkg/components"
)

// DefaultFlickerPeriod 子弹闪烁帧的切换间隔（秒）
const DefaultFlickerPeriod = 0.1

// AnimationSystem 根据对象存活时间切换子弹的闪烁帧
type AnimationSystem struct {
	period float64
}

// NewAnimationSystem 创建动画系统，period <= 0 时使用默认间隔
func NewAnimationSystem(period float64) *AnimationSystem {
	if period <= 0 {
		period = DefaultFlickerPeriod
	}
	return &AnimationSystem{period: period}
}

// Update 更新子弹帧号
func (s *AnimationSystem) Update(w *World) {
	for i := range w.PlayerBullets {
		b := &w.PlayerBullets[i]
		b.Kind = components.PlayerBulletKind{Flicker: s.frame(b)}
	}
	for i := range w.EnemyBullets {
		b := &w.EnemyBullets[i]
		b.Kind = components.EnemyBulletKind{Flicker: s.frame(b)}
	}
}

func (s *AnimationSystem) frame(o *components.Object) int {
	d := o.Sprite()
	if d == nil || d.Frames <= 1 {
		return 0
	}
	return int(o.Age/s.period) % d.Frames
}
