package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angle 角度值
//
// 内部以弧度保存，对外接口使用角度（度）。
// 零值表示 0°。
type Angle struct {
	rad float64
}

// FromDeg 由角度（度）构造
func FromDeg(deg float64) Angle {
	return Angle{rad: mgl64.DegToRad(deg)}
}

// FromRad 由弧度构造
func FromRad(rad float64) Angle {
	return Angle{rad: rad}
}

// Rad 返回弧度值
func (a Angle) Rad() float64 {
	return a.rad
}

// Deg 返回角度值，结果落在 (-360, 360) 内（保留符号，与取余语义一致）
func (a Angle) Deg() float64 {
	return math.Mod(mgl64.RadToDeg(a.rad), 360)
}

// AddDeg 返回加上 deg 度之后的角度
// 和先换算为度再相加，再重新回绕
func (a Angle) AddDeg(deg float64) Angle {
	return FromDeg(a.Deg() + deg)
}

// Add 两个角度相加（按度相加后回绕）
func (a Angle) Add(b Angle) Angle {
	return a.AddDeg(b.Deg())
}

// Dir 返回该角度对应的单位方向向量
func (a Angle) Dir() mgl64.Vec2 {
	return mgl64.Vec2{math.Cos(a.rad), math.Sin(a.rad)}
}
