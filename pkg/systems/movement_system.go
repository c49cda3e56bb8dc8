package systems

import (
	"math"

	"github.com/gonewx/shmup/pkg/components"
	"github.com/gonewx/shmup/pkg/geom"
)

// MovementSystem 积分速度和自转，并处理越界
//
// 玩家被限制在 [0,1]² 内；子弹完全离开可视区域后被标记删除。
type MovementSystem struct {
	backgroundSpeed float64
}

// NewMovementSystem 创建移动系统
//
// 参数:
//   - backgroundSpeed: 背景滚动速度（世界单位/秒）
func NewMovementSystem(backgroundSpeed float64) *MovementSystem {
	return &MovementSystem{backgroundSpeed: backgroundSpeed}
}

// Update 推进一帧
func (s *MovementSystem) Update(w *World, dt float64) {
	for i := range w.Player {
		p := &w.Player[i]
		integrate(p, dt)
		p.Pos = geom.Pt(clamp01(p.Pos.X), clamp01(p.Pos.Y))
	}

	for _, group := range []components.Objects{w.PlayerBullets, w.EnemyBullets} {
		for i := range group {
			b := &group[i]
			integrate(b, dt)
			if offscreen(b) {
				b.MarkForRemoval()
			}
		}
	}

	w.BackgroundOffset = math.Mod(w.BackgroundOffset+s.backgroundSpeed*dt, 1)
	if w.BackgroundOffset < 0 {
		w.BackgroundOffset++
	}
}

func integrate(o *components.Object, dt float64) {
	o.Pos = o.Pos.Add(geom.Pt(o.Velocity.X*dt, o.Velocity.Y*dt))
	o.Rotate(o.Spin * dt)
}

// offscreen 对象的包围范围完全位于 [0,1]² 之外
func offscreen(o *components.Object) bool {
	var r geom.FPoint
	if data := o.CollisionData(); data != nil {
		r = data.Range()
	}
	return o.Pos.X+r.X < 0 || o.Pos.X-r.X > 1 ||
		o.Pos.Y+r.Y < 0 || o.Pos.Y-r.Y > 1
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
