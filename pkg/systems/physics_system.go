package systems

import (
	"log"

	"github.com/gonewx/shmup/pkg/collision"
	"github.com/gonewx/shmup/pkg/config"
)

// PhysicsSystem 处理游戏物理逻辑
//
// 每帧进行两组碰撞检测：
//   - 玩家子弹 × 敌方子弹：双方都被标记删除，每颗被击落的敌方子弹计 1 分
//   - 玩家 × 敌方子弹：敌方子弹被标记删除，玩家在无敌时间之外损失一条命
type PhysicsSystem struct {
	detector         *collision.Detector
	invulnerableTime float64
}

// CollisionReport 一帧的碰撞统计
type CollisionReport struct {
	BulletsDestroyed int  // 被击落的敌方子弹数
	PlayerHit        bool // 玩家本帧是否损失了生命
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - cfg: 游戏配置，提供碰撞容差、去重选项和无敌时间
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(cfg *config.GameConfig) *PhysicsSystem {
	d := collision.NewDetector(cfg.Collision.Allowance)
	d.UniquePairs = cfg.Collision.DedupePairs
	return &PhysicsSystem{
		detector:         d,
		invulnerableTime: cfg.Player.InvulnerableTime,
	}
}

// Detector 返回使用的碰撞检测器
func (ps *PhysicsSystem) Detector() *collision.Detector {
	return ps.detector
}

// Update 执行碰撞检测，回调中只打删除标记，不修改对象数组
func (ps *PhysicsSystem) Update(w *World) CollisionReport {
	var report CollisionReport

	ps.detector.Detect(w.PlayerBullets, w.EnemyBullets, func(i, j int) {
		// 同一对可能因跨越多个格子被重复回调，已标记的子弹不重复计分
		if !w.EnemyBullets[j].Marked {
			report.BulletsDestroyed++
		}
		w.PlayerBullets[i].MarkForRemoval()
		w.EnemyBullets[j].MarkForRemoval()
	})
	w.Status.Score += report.BulletsDestroyed

	ps.detector.Detect(w.Player, w.EnemyBullets, func(i, j int) {
		w.EnemyBullets[j].MarkForRemoval()
		if w.Status.Hit(ps.invulnerableTime) {
			report.PlayerHit = true
			log.Printf("[PhysicsSystem] Player hit, lives left: %d", w.Status.Lives)
			if !w.Status.Alive() {
				w.Player[i].MarkForRemoval()
			}
		}
	})

	return report
}
