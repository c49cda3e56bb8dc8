package sprites

import (
	"fmt"
	"image"

	"github.com/gonewx/shmup/pkg/geom"
	"github.com/gonewx/shmup/pkg/hull"
)

// Descriptor 单种精灵的静态描述（构建后只读）
type Descriptor struct {
	Kind   Kind
	Rect   image.Rectangle // 第 0 帧在精灵图中的像素矩形
	Frames int

	// ImageOffset / ImageSize 第 0 帧在精灵图中的归一化（UV）位置和尺寸，原点为左上角
	ImageOffset geom.FPoint
	ImageSize   geom.FPoint

	// VirtualSize 精灵在世界坐标中的尺寸（像素尺寸 / 虚拟分辨率）
	VirtualSize geom.FPoint

	// PixelHull 第 0 帧局部像素坐标下的凸包
	PixelHull hull.Hull

	// Hull 以精灵中心为原点、世界单位表示的凸包，供碰撞数据构建使用
	Hull []geom.FPoint
}

// FrameRect 返回第 frame 帧的像素矩形（帧号按帧数取模）
func (d *Descriptor) FrameRect(frame int) image.Rectangle {
	if d.Frames <= 1 {
		return d.Rect
	}
	frame %= d.Frames
	if frame < 0 {
		frame += d.Frames
	}
	return d.Rect.Add(image.Pt(frame*d.Rect.Dx(), 0))
}

// Table 精灵描述表
type Table struct {
	imageSize   image.Point
	virtualDims geom.IPoint
	descriptors map[Kind]*Descriptor
}

// NewTable 根据精灵图像素和描述条目构建描述表
//
// 参数:
//   - mask: 解码后的精灵图（只读取 alpha 通道）
//   - imageSize: 精灵图像素尺寸
//   - entries: ParseDescription 的结果
//   - virtualDims: 虚拟分辨率，世界坐标 [0,1] 对应的像素数
//
// 每种精灵的凸包在此处提取一次。
func NewTable(mask hull.AlphaMask, imageSize image.Point, entries []Entry, virtualDims geom.IPoint) (*Table, error) {
	if virtualDims.X <= 0 || virtualDims.Y <= 0 {
		return nil, fmt.Errorf("invalid virtual dimensions %dx%d", virtualDims.X, virtualDims.Y)
	}

	bounds := image.Rectangle{Max: imageSize}
	t := &Table{
		imageSize:   imageSize,
		virtualDims: virtualDims,
		descriptors: make(map[Kind]*Descriptor, len(entries)),
	}

	for _, e := range entries {
		rect := image.Rect(e.OffsetX, e.OffsetY, e.OffsetX+e.Width, e.OffsetY+e.Height)
		strip := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+e.Width*e.Frames, rect.Max.Y)
		if !strip.In(bounds) {
			return nil, fmt.Errorf("%w: %s %v (%d frames) not inside %v", ErrOutOfBounds, e.Kind, rect, e.Frames, bounds)
		}

		pixelHull := hull.Extract(mask, geom.Pt(e.OffsetX, e.OffsetY), geom.Pt(e.Width, e.Height))
		t.descriptors[e.Kind] = &Descriptor{
			Kind:        e.Kind,
			Rect:        rect,
			Frames:      e.Frames,
			ImageOffset: geom.Pt(float64(e.OffsetX), float64(e.OffsetY)).Div(geom.ToFloat(geom.Pt(imageSize.X, imageSize.Y))),
			ImageSize:   geom.Pt(float64(e.Width), float64(e.Height)).Div(geom.ToFloat(geom.Pt(imageSize.X, imageSize.Y))),
			VirtualSize: geom.Pt(float64(e.Width), float64(e.Height)).Div(geom.ToFloat(virtualDims)),
			PixelHull:   pixelHull,
			Hull:        localHull(pixelHull, geom.Pt(e.Width, e.Height), virtualDims),
		}
	}

	return t, nil
}

// localHull 将像素凸包转换为以精灵中心为原点的世界单位坐标
// 每个顶点取像素中心
func localHull(h hull.Hull, size, virtualDims geom.IPoint) []geom.FPoint {
	if len(h) == 0 {
		return nil
	}
	center := geom.ToFloat(size).Div(geom.Pt(2.0, 2.0))
	dims := geom.ToFloat(virtualDims)

	result := make([]geom.FPoint, len(h))
	for i, p := range h {
		px := geom.ToFloat(p).Add(geom.Pt(0.5, 0.5))
		result[i] = px.Sub(center).Div(dims)
	}
	return result
}

// Get 返回指定种类的描述
func (t *Table) Get(kind Kind) (*Descriptor, bool) {
	d, ok := t.descriptors[kind]
	return d, ok
}

// MustGet 返回指定种类的描述，不存在时 panic
// 仅用于启动阶段已确认描述表完整之后
func (t *Table) MustGet(kind Kind) *Descriptor {
	d, ok := t.descriptors[kind]
	if !ok {
		panic(fmt.Sprintf("sprite %s not described", kind))
	}
	return d
}

// Require 检查描述表是否包含全部指定种类
func (t *Table) Require(kinds ...Kind) error {
	for _, k := range kinds {
		if _, ok := t.descriptors[k]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingSprite, k)
		}
	}
	return nil
}

// ImageSize 返回精灵图像素尺寸
func (t *Table) ImageSize() image.Point {
	return t.imageSize
}

// VirtualDimensions 返回虚拟分辨率
func (t *Table) VirtualDimensions() geom.IPoint {
	return t.virtualDims
}

// Len 返回描述条目数量
func (t *Table) Len() int {
	return len(t.descriptors)
}
