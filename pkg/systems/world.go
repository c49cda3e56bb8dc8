package systems

import (
	"github.com/gonewx/shmup/pkg/components"
)

// World 一局游戏中的全部场景对象
//
// 三组对象分别存放，碰撞检测按组两两进行。
// 对象在帧内只打删除标记，由场景在帧末调用 Sweep 统一清理。
type World struct {
	Player        components.Objects // 至多一个元素，玩家死亡后为空
	PlayerBullets components.Objects
	EnemyBullets  components.Objects

	Status components.PlayerStatus

	// BackgroundOffset 背景滚动偏移（世界单位，[0,1)）
	BackgroundOffset float64
}

// Sweep 移除所有被标记的对象，返回移除数量
func (w *World) Sweep() int {
	var n, total int
	w.Player, n = w.Player.RemoveMarked()
	total += n
	w.PlayerBullets, n = w.PlayerBullets.RemoveMarked()
	total += n
	w.EnemyBullets, n = w.EnemyBullets.RemoveMarked()
	total += n
	return total
}

// Groups 返回所有对象组，便于统一遍历
func (w *World) Groups() []components.Objects {
	return []components.Objects{w.Player, w.PlayerBullets, w.EnemyBullets}
}

// Count 返回对象总数
func (w *World) Count() int {
	return len(w.Player) + len(w.PlayerBullets) + len(w.EnemyBullets)
}
