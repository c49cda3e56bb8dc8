// Package geom 提供碰撞几何使用的基础类型
//
// 坐标系约定：
//   - 像素坐标：整数，原点为子图左上角，y 轴向下
//   - 世界坐标：浮点，范围 [0,1]×[0,1]，y 轴向下（与屏幕一致）
//
// 两种坐标之间不做隐式换算，调用方需要显式转换。
package geom

import "github.com/go-gl/mathgl/mgl64"

// Number 是 Point 支持的坐标数值类型
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Point 二维点（或二维尺寸）
type Point[T Number] struct {
	X T
	Y T
}

// IPoint 像素空间的整数点
type IPoint = Point[int]

// FPoint 世界空间的浮点点
type FPoint = Point[float64]

// Pt 构造一个点
func Pt[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add 逐分量相加
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub 逐分量相减
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Div 逐分量相除（整数类型为截断除法）
func (p Point[T]) Div(q Point[T]) Point[T] {
	return Point[T]{X: p.X / q.X, Y: p.Y / q.Y}
}

// Mul 逐分量相乘，用于缩放
func (p Point[T]) Mul(q Point[T]) Point[T] {
	return Point[T]{X: p.X * q.X, Y: p.Y * q.Y}
}

// ToFloat 将整数点转换为浮点点
func ToFloat(p IPoint) FPoint {
	return FPoint{X: float64(p.X), Y: float64(p.Y)}
}

// Vec2 转换为 mathgl 向量，用于矩阵运算
func (p Point[T]) Vec2() mgl64.Vec2 {
	return mgl64.Vec2{float64(p.X), float64(p.Y)}
}

// FromVec2 由 mathgl 向量构造浮点点
func FromVec2(v mgl64.Vec2) FPoint {
	return FPoint{X: v[0], Y: v[1]}
}
