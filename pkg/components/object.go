package components

import (
	"github.com/gonewx/shmup/pkg/collision"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

// Object 场景对象（玩家或子弹）
//
// 位置使用世界坐标 [0,1]²。碰撞数据由精灵描述、旋转角和缩放派生，
// 只在旋转角或缩放改变时重新构建。
type Object struct {
	Kind     Kind
	Pos      geom.FPoint
	Velocity geom.FPoint // 世界单位/秒
	Spin     float64     // 自转速度（度/秒）

	// 生命周期（秒），MaxLifetime 为 0 表示不限
	Age         float64
	MaxLifetime float64

	// Marked 标记待删除，由场景在本帧末尾统一清理
	Marked bool

	angle     geom.Angle
	scale     geom.FPoint
	sprite    *sprites.Descriptor
	collision *collision.Data
}

// NewObject 创建场景对象并构建初始碰撞数据
func NewObject(kind Kind, sprite *sprites.Descriptor, pos geom.FPoint, angle geom.Angle, scale geom.FPoint) Object {
	o := Object{
		Kind:   kind,
		Pos:    pos,
		angle:  angle,
		scale:  scale,
		sprite: sprite,
	}
	o.rebuild()
	return o
}

// Angle 返回当前旋转角
func (o *Object) Angle() geom.Angle {
	return o.angle
}

// SetAngle 设置旋转角，角度变化时重建碰撞数据
func (o *Object) SetAngle(angle geom.Angle) {
	if angle == o.angle {
		return
	}
	o.angle = angle
	o.rebuild()
}

// Rotate 在当前角度上增加 deg 度
func (o *Object) Rotate(deg float64) {
	if deg == 0 {
		return
	}
	o.SetAngle(o.angle.AddDeg(deg))
}

// Scale 返回当前缩放
func (o *Object) Scale() geom.FPoint {
	return o.scale
}

// SetScale 设置缩放，缩放变化时重建碰撞数据
func (o *Object) SetScale(scale geom.FPoint) {
	if scale == o.scale {
		return
	}
	o.scale = scale
	o.rebuild()
}

// Sprite 返回精灵描述
func (o *Object) Sprite() *sprites.Descriptor {
	return o.sprite
}

// CollisionData 返回当前碰撞数据
func (o *Object) CollisionData() *collision.Data {
	return o.collision
}

// Body 返回供碰撞检测使用的视图
func (o *Object) Body() collision.Body {
	return collision.Body{Pos: o.Pos, Data: o.collision}
}

// MarkForRemoval 标记待删除（可重复调用）
func (o *Object) MarkForRemoval() {
	o.Marked = true
}

func (o *Object) rebuild() {
	if o.sprite == nil {
		o.collision = nil
		return
	}
	o.collision = collision.Build(o.sprite, o.angle, o.scale)
}

// Objects 场景对象数组
//
// 碰撞检测按下标访问并回调下标，调用方通过 objs[i] 修改对象。
type Objects []Object

// Len 实现 collision.Set
func (objs Objects) Len() int {
	return len(objs)
}

// Body 实现 collision.Set
func (objs Objects) Body(i int) collision.Body {
	return objs[i].Body()
}

// RemoveMarked 原地移除所有被标记的对象，返回剩余对象和移除数量
func (objs Objects) RemoveMarked() (Objects, int) {
	kept := objs[:0]
	for _, o := range objs {
		if !o.Marked {
			kept = append(kept, o)
		}
	}
	removed := len(objs) - len(kept)
	// 清空尾部，释放对碰撞数据的引用
	clear(objs[len(kept):])
	return kept, removed
}
