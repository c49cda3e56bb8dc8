// Package collision 实现基于凸包的碰撞检测
//
// 每个实体持有一份 Data（旋转、缩放后的凸包及其派生数据），
// Detector 每帧对两组实体执行两阶段检测：
// 均匀网格粗筛，然后依次进行 Range、Hitbox 与分离轴（SAT）测试。
package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/sprites"
)

// Hitbox 相对实体原点的轴对齐包围盒
// 四个值均为非负距离（世界单位），y 轴向下：Top 在原点上方，Bottom 在原点下方
type Hitbox struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width 返回包围盒宽度
func (h Hitbox) Width() float64 {
	return h.Left + h.Right
}

// Height 返回包围盒高度
func (h Hitbox) Height() float64 {
	return h.Top + h.Bottom
}

// Data 实体的碰撞数据
//
// 由精灵描述、当前旋转角和缩放构建；相同输入总是得到完全相同的结果。
// 实体的朝向或缩放变化时需要重新构建。
type Data struct {
	hitbox  Hitbox
	hull    []geom.FPoint
	normals []geom.Angle
	axes    []mgl64.Vec2 // normals 对应的单位向量，避免每帧重复计算三角函数
	rng     geom.FPoint
}

// Build 构建碰撞数据
//
// 凸包顶点先按 scale 逐分量缩放，再按 angle 旋转。
// 顶点少于两个的凸包没有法线，只能通过包围盒参与检测。
func Build(d *sprites.Descriptor, angle geom.Angle, scale geom.FPoint) *Data {
	rotation := mgl64.Rotate2D(angle.Rad())

	data := &Data{
		hull: make([]geom.FPoint, len(d.Hull)),
	}

	var lo, hi geom.FPoint
	for i, p := range d.Hull {
		v := rotation.Mul2x1(p.Mul(scale).Vec2())
		rotated := geom.FromVec2(v)
		data.hull[i] = rotated

		lo = geom.Pt(math.Min(lo.X, rotated.X), math.Min(lo.Y, rotated.Y))
		hi = geom.Pt(math.Max(hi.X, rotated.X), math.Max(hi.Y, rotated.Y))
	}

	data.hitbox = Hitbox{
		Left:   -lo.X,
		Top:    -lo.Y,
		Right:  hi.X,
		Bottom: hi.Y,
	}
	data.rng = geom.Pt(
		math.Max(data.hitbox.Left, data.hitbox.Right),
		math.Max(data.hitbox.Top, data.hitbox.Bottom),
	)

	if len(data.hull) >= 2 {
		data.normals = make([]geom.Angle, 0, len(data.hull))
		data.axes = make([]mgl64.Vec2, 0, len(data.hull))
		for i, p := range data.hull {
			next := data.hull[(i+1)%len(data.hull)]
			edge := next.Sub(p)
			if edge.X == 0 && edge.Y == 0 {
				continue
			}
			// 顺时针（y 向下）环绕时，边方向旋转 -90° 指向外侧
			normal := geom.FromRad(math.Atan2(edge.Y, edge.X) - math.Pi/2)
			data.normals = append(data.normals, normal)
			data.axes = append(data.axes, normal.Dir())
		}
	}

	return data
}

// Hitbox 返回旋转后凸包的轴对齐包围盒
func (d *Data) Hitbox() Hitbox {
	return d.hitbox
}

// Hull 返回旋转、缩放后的凸包顶点（相对实体原点）
func (d *Data) Hull() []geom.FPoint {
	return d.hull
}

// Normals 返回每条边的外法线方向
func (d *Data) Normals() []geom.Angle {
	return d.normals
}

// Range 返回各轴上的最大投影绝对值，用于最廉价的预筛
func (d *Data) Range() geom.FPoint {
	return d.rng
}

// Empty 凸包为空（完全透明的精灵）时返回 true，此类实体永远不会发生碰撞
func (d *Data) Empty() bool {
	return d == nil || len(d.hull) == 0
}
