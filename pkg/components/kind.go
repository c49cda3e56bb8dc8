package components

import "github.com/gonewx/shmup/pkg/sprites"

// Kind 场景对象的种类（封闭的带标签变体）
//
// 每个变体只携带自身需要的数据，例如玩家的倾斜状态、子弹的闪烁帧。
// 只有本包内的类型可以实现 Kind。
type Kind interface {
	// Sprite 返回渲染和碰撞使用的精灵种类
	Sprite() sprites.Kind
	// Frame 返回当前应绘制的帧号
	Frame() int

	isKind()
}

// PlayerState 玩家飞机的姿态
type PlayerState int

const (
	PlayerNormal PlayerState = iota
	PlayerTiltedLeft
	PlayerTiltedRight
)

// PlayerKind 玩家
type PlayerKind struct {
	State PlayerState
}

// PlayerBulletKind 玩家子弹
type PlayerBulletKind struct {
	Flicker int // 闪烁帧计数
}

// EnemyBulletKind 敌方子弹
type EnemyBulletKind struct {
	Flicker int
}

func (PlayerKind) Sprite() sprites.Kind       { return sprites.Player }
func (PlayerBulletKind) Sprite() sprites.Kind { return sprites.PlayerBullet }
func (EnemyBulletKind) Sprite() sprites.Kind  { return sprites.EnemyBullet }

func (k PlayerKind) Frame() int       { return int(k.State) }
func (k PlayerBulletKind) Frame() int { return k.Flicker }
func (k EnemyBulletKind) Frame() int  { return k.Flicker }

func (PlayerKind) isKind()       {}
func (PlayerBulletKind) isKind() {}
func (EnemyBulletKind) isKind()  {}
